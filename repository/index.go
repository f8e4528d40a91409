package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"ideaboard/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func SetupIndexes(ctx context.Context, db *mongo.Database, cfg config.DatabaseConfig) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	boardIndexes := []mongo.IndexModel{
		// Board codes are the join key, the unique index is what makes them unique
		{
			Keys: bson.D{{Key: "boardId", Value: 1}},
			Options: options.Index().
				SetName("board_code").
				SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "moderator", Value: 1},
				{Key: "date", Value: -1},
			},
			Options: options.Index().
				SetName("moderator_boards_date"),
		},
	}

	ideaIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "boardId", Value: 1},
				{Key: "date", Value: -1},
			},
			Options: options.Index().
				SetName("board_ideas_date"),
		},
	}

	userIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "username", Value: 1}},
			Options: options.Index().
				SetName("username").
				SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().
				SetName("user_id").
				SetUnique(true),
		},
	}

	sessionIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "session_id", Value: 1}},
			Options: options.Index().
				SetName("session_id").
				SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "is_active", Value: 1},
			},
			Options: options.Index().
				SetName("user_active_sessions"),
		},
		// Mongo drops sessions on its own once expires_at has passed
		{
			Keys: bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().
				SetName("session_expiry").
				SetExpireAfterSeconds(0),
		},
	}

	plan := []struct {
		collection string
		indexes    []mongo.IndexModel
	}{
		{cfg.BoardsCollection, boardIndexes},
		{cfg.IdeasCollection, ideaIndexes},
		{cfg.UsersCollection, userIndexes},
		{cfg.SessionsCollection, sessionIndexes},
	}

	for _, p := range plan {
		if _, err := db.Collection(p.collection).Indexes().CreateMany(ctx, p.indexes); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", p.collection, err)
		}
	}

	log.Println("Successfully created all indexes")
	return nil
}
