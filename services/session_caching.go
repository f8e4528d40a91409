package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ideaboard/model"

	"github.com/redis/go-redis/v9"
)

// SessionCache is a read-through cache in front of the sessions collection.
// A nil *SessionCache is valid and caches nothing.
type SessionCache struct {
	client *redis.Client
}

func NewSessionCache(client *redis.Client) *SessionCache {
	return &SessionCache{client: client}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

// SetSession caches a session until it expires.
func (sc *SessionCache) SetSession(ctx context.Context, session *model.Session) error {
	if sc == nil {
		return nil
	}
	if session == nil {
		return fmt.Errorf("cannot cache nil session")
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session has already expired")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := sc.client.Set(ctx, sessionKey(session.SessionID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache session: %w", err)
	}
	return nil
}

// GetSession returns (nil, nil) on a cache miss.
func (sc *SessionCache) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	if sc == nil {
		return nil, nil
	}
	if sessionID == "" {
		return nil, fmt.Errorf("sessionID cannot be empty")
	}

	data, err := sc.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session from cache: %w", err)
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		_ = sc.DeleteSession(ctx, sessionID)
		return nil, nil
	}
	return &session, nil
}

func (sc *SessionCache) DeleteSession(ctx context.Context, sessionID string) error {
	if sc == nil {
		return nil
	}
	if err := sc.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session from cache: %w", err)
	}
	return nil
}
