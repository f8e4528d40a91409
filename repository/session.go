package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"ideaboard/config"
	"ideaboard/model"
	"ideaboard/services"
	"ideaboard/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SessionRepo struct {
	MongoCollection *mongo.Collection
	Cache           *services.SessionCache
}

func GetSessionRepo(client *mongo.Client, cfg config.DatabaseConfig, cache *services.SessionCache) *SessionRepo {
	return &SessionRepo{
		MongoCollection: client.Database(cfg.DatabaseName).Collection(cfg.SessionsCollection),
		Cache:           cache,
	}
}

func (r *SessionRepo) CreateSession(ctx context.Context, session *model.Session) error {
	timer := utils.TrackDBOperation("insert", "sessions")
	defer timer.ObserveDuration()

	if session == nil {
		return fmt.Errorf("session cannot be nil")
	}
	if session.SessionID == "" || session.UserID == "" {
		utils.TrackError("database", "invalid_session_data")
		return fmt.Errorf("invalid session data: missing required fields")
	}

	dbCtx, cancel := withTimeout(ctx)
	defer cancel()

	if _, err := r.MongoCollection.InsertOne(dbCtx, session); err != nil {
		utils.TrackError("database", "session_creation_failed")
		return fmt.Errorf("failed to create session in database: %w", err)
	}

	if err := r.Cache.SetSession(ctx, session); err != nil {
		utils.TrackError("cache", "session_cache_set_failed")
		log.Printf("Warning: Failed to cache session: %v", err)
	}
	return nil
}

// GetSession returns an active, unexpired session or ErrSessionNotFound.
func (r *SessionRepo) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	if sessionID == "" {
		return nil, ErrSessionNotFound
	}

	if cached, err := r.Cache.GetSession(ctx, sessionID); err == nil && cached != nil {
		utils.TrackCacheOperation("session", true)
		if !cached.IsActive {
			return nil, ErrSessionNotFound
		}
		return cached, nil
	} else if err != nil {
		log.Printf("Warning: session cache lookup failed: %v", err)
	}
	utils.TrackCacheOperation("session", false)

	timer := utils.TrackDBOperation("find", "sessions")
	defer timer.ObserveDuration()

	dbCtx, cancel := withTimeout(ctx)
	defer cancel()

	var session model.Session
	err := r.MongoCollection.FindOne(dbCtx, bson.M{"session_id": sessionID}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSessionNotFound
		}
		utils.TrackError("database", "session_fetch_failed")
		return nil, fmt.Errorf("failed to fetch session from database: %w", err)
	}

	if !session.IsActive || time.Now().After(session.ExpiresAt) {
		return nil, ErrSessionNotFound
	}

	if err := r.Cache.SetSession(ctx, &session); err != nil {
		log.Printf("Warning: Failed to cache session: %v", err)
	}
	return &session, nil
}

// TouchSession records activity on the session.
func (r *SessionRepo) TouchSession(ctx context.Context, session *model.Session) error {
	session.LastActivityAt = time.Now().UTC()

	dbCtx, cancel := withTimeout(ctx)
	defer cancel()

	result, err := r.MongoCollection.UpdateOne(dbCtx,
		bson.M{"session_id": session.SessionID},
		bson.M{"$set": bson.M{"last_activity_at": session.LastActivityAt}})
	if err != nil {
		return fmt.Errorf("failed to update session in database: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrSessionNotFound
	}

	if err := r.Cache.SetSession(ctx, session); err != nil {
		log.Printf("Warning: Failed to update session cache: %v", err)
	}
	return nil
}

func (r *SessionRepo) EndSession(ctx context.Context, sessionID string) error {
	timer := utils.TrackDBOperation("update", "sessions")
	defer timer.ObserveDuration()

	if err := r.Cache.DeleteSession(ctx, sessionID); err != nil {
		utils.TrackError("cache", "session_cache_delete_failed")
		log.Printf("Warning: Failed to delete session from cache: %v", err)
	}

	dbCtx, cancel := withTimeout(ctx)
	defer cancel()

	result, err := r.MongoCollection.UpdateOne(dbCtx,
		bson.M{"session_id": sessionID, "is_active": true},
		bson.M{"$set": bson.M{"is_active": false, "last_activity_at": time.Now().UTC()}})
	if err != nil {
		utils.TrackError("database", "session_end_failed")
		return fmt.Errorf("failed to end session: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func activeSessionsFilter(userID string) bson.M {
	return bson.M{
		"user_id":    userID,
		"is_active":  true,
		"expires_at": bson.M{"$gt": time.Now().UTC()},
	}
}

func (r *SessionRepo) CountActiveSessions(ctx context.Context, userID string) (int, error) {
	timer := utils.TrackDBOperation("count", "sessions")
	defer timer.ObserveDuration()

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	count, err := r.MongoCollection.CountDocuments(ctx, activeSessionsFilter(userID))
	if err != nil {
		return 0, fmt.Errorf("failed to count active sessions: %w", err)
	}
	return int(count), nil
}

// EndLeastActiveSession ends the session that has been idle the longest.
func (r *SessionRepo) EndLeastActiveSession(ctx context.Context, userID string) error {
	findCtx, cancel := withTimeout(ctx)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "last_activity_at", Value: 1}})

	var oldest model.Session
	err := r.MongoCollection.FindOne(findCtx, activeSessionsFilter(userID), opts).Decode(&oldest)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("failed to find least active session: %w", err)
	}

	return r.EndSession(ctx, oldest.SessionID)
}
