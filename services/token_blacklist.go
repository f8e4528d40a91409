package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type TokenBlacklist struct {
	client *redis.Client
}

func NewTokenBlacklist(client *redis.Client) *TokenBlacklist {
	return &TokenBlacklist{client: client}
}

func blacklistKey(token string) string {
	return fmt.Sprintf("blacklist:access:%s", token)
}

// Add keeps token on the blacklist until it would have expired anyway.
func (tb *TokenBlacklist) Add(ctx context.Context, token string, expiresAt time.Time) error {
	if tb == nil {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := tb.client.Set(ctx, blacklistKey(token), "true", ttl).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token in Redis: %w", err)
	}
	return nil
}

// IsBlacklisted fails open: when Redis is unreachable the token is accepted
// and the error is logged.
func (tb *TokenBlacklist) IsBlacklisted(ctx context.Context, token string) bool {
	if tb == nil {
		return false
	}
	n, err := tb.client.Exists(ctx, blacklistKey(token)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		log.Printf("Error checking token blacklist: %v", err)
		return false
	}
	return n > 0
}
