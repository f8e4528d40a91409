package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ideaboard/config"
	"ideaboard/model"
	"ideaboard/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func GetUserRepo(client *mongo.Client, cfg config.DatabaseConfig) *UserRepo {
	return &UserRepo{
		MongoCollection: client.Database(cfg.DatabaseName).Collection(cfg.UsersCollection),
	}
}

type UserRepo struct {
	MongoCollection *mongo.Collection
}

func (r *UserRepo) AddUser(ctx context.Context, user *model.User) error {
	timer := utils.TrackDBOperation("insert", "users")
	defer timer.ObserveDuration()

	if err := utils.Validate.Struct(user); err != nil {
		utils.TrackError("database", "invalid_user_data")
		return fmt.Errorf("%w: %v", ErrInvalidUser, err)
	}
	if user.Boards == nil {
		user.Boards = []string{}
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if _, err := r.MongoCollection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrUsernameTaken
		}
		utils.TrackError("database", "user_creation_failed")
		return fmt.Errorf("failed to add user to database: %w", err)
	}
	return nil
}

func (r *UserRepo) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findOne(ctx, bson.D{{Key: "username", Value: username}})
}

func (r *UserRepo) FindUser(ctx context.Context, userID string) (*model.User, error) {
	return r.findOne(ctx, bson.D{{Key: "user_id", Value: userID}})
}

func (r *UserRepo) findOne(ctx context.Context, filter bson.D) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var user model.User
	err := r.MongoCollection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		utils.TrackError("database", "user_lookup_error")
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// GetBoardsFromUser returns the codes of the boards the user saved.
func (r *UserRepo) GetBoardsFromUser(ctx context.Context, userID string) ([]string, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{"boards": 1})

	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		utils.TrackError("database", "user_lookup_error")
		return nil, fmt.Errorf("failed to get saved boards: %w", err)
	}
	if user.Boards == nil {
		return []string{}, nil
	}
	return user.Boards, nil
}

func (r *UserRepo) AddBoardToUser(ctx context.Context, userID, boardID string) error {
	return r.updateBoards(ctx, userID, bson.M{"$addToSet": bson.M{"boards": boardID}})
}

func (r *UserRepo) RemoveBoardFromUser(ctx context.Context, userID, boardID string) error {
	return r.updateBoards(ctx, userID, bson.M{"$pull": bson.M{"boards": boardID}})
}

func (r *UserRepo) updateBoards(ctx context.Context, userID string, update bson.M) error {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"user_id": userID}, update)
	if err != nil {
		utils.TrackError("database", "saved_boards_update_failed")
		return fmt.Errorf("failed to update saved boards: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}
