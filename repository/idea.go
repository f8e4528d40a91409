package repository

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"ideaboard/config"
	"ideaboard/model"
	"ideaboard/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type IdeaRepo struct {
	MongoCollection *mongo.Collection
}

func GetIdeaRepo(client *mongo.Client, cfg config.DatabaseConfig) *IdeaRepo {
	return &IdeaRepo{
		MongoCollection: client.Database(cfg.DatabaseName).Collection(cfg.IdeasCollection),
	}
}

// AddIdea stores a new idea with a zero upvote count and no flag. Only the
// board code, creator and content of the argument are used.
func (r *IdeaRepo) AddIdea(ctx context.Context, idea *model.Idea) (*model.Idea, error) {
	timer := utils.TrackDBOperation("insert", "ideas")
	defer timer.ObserveDuration()

	if utf8.RuneCountInString(idea.Content) > utils.MaxContentLen {
		utils.TrackError("validation", "idea_too_long")
		return nil, ErrContentTooLong
	}

	newIdea := &model.Idea{
		ID:        primitive.NewObjectID(),
		BoardID:   idea.BoardID,
		CreatorID: idea.CreatorID,
		Content:   idea.Content,
		Date:      time.Now().UTC().Truncate(time.Millisecond),
	}
	if err := utils.Validate.Struct(newIdea); err != nil {
		utils.TrackError("validation", "invalid_idea")
		return nil, fmt.Errorf("%w: %v", ErrInvalidIdea, err)
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if _, err := r.MongoCollection.InsertOne(ctx, newIdea); err != nil {
		utils.TrackError("database", "idea_creation_failed")
		return nil, fmt.Errorf("failed to add idea: %w", err)
	}

	return newIdea, nil
}

func (r *IdeaRepo) FindIdea(ctx context.Context, ideaID string) (*model.Idea, error) {
	timer := utils.TrackDBOperation("find", "ideas")
	defer timer.ObserveDuration()

	oid, err := primitive.ObjectIDFromHex(ideaID)
	if err != nil {
		return nil, ErrIdeaNotFound
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var idea model.Idea
	err = r.MongoCollection.FindOne(ctx, bson.M{"_id": oid}).Decode(&idea)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrIdeaNotFound
		}
		utils.TrackError("database", "idea_lookup_error")
		return nil, fmt.Errorf("failed to find idea: %w", err)
	}
	return &idea, nil
}

// FindIdeasByIds returns the ideas among ideaIDs that still exist, newest first.
func (r *IdeaRepo) FindIdeasByIds(ctx context.Context, ideaIDs []primitive.ObjectID) ([]*model.Idea, error) {
	if len(ideaIDs) == 0 {
		return []*model.Idea{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ideaIDs}})
}

func (r *IdeaRepo) FindIdeasByBoard(ctx context.Context, boardID string) ([]*model.Idea, error) {
	return r.find(ctx, bson.M{"boardId": boardID})
}

func (r *IdeaRepo) find(ctx context.Context, filter bson.M) ([]*model.Idea, error) {
	timer := utils.TrackDBOperation("find", "ideas")
	defer timer.ObserveDuration()

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.TrackError("database", "idea_lookup_error")
		return nil, fmt.Errorf("failed to find ideas: %w", err)
	}
	defer cursor.Close(ctx)

	ideas := []*model.Idea{}
	if err := cursor.All(ctx, &ideas); err != nil {
		return nil, fmt.Errorf("failed to decode ideas: %w", err)
	}
	return ideas, nil
}

func (r *IdeaRepo) RemoveIdea(ctx context.Context, ideaID string) error {
	oid, err := primitive.ObjectIDFromHex(ideaID)
	if err != nil {
		return ErrIdeaNotFound
	}
	return r.removeOne(ctx, bson.M{"_id": oid})
}

// RemoveBoardIdea deletes the idea only when it is filed under boardID.
func (r *IdeaRepo) RemoveBoardIdea(ctx context.Context, boardID, ideaID string) error {
	oid, err := primitive.ObjectIDFromHex(ideaID)
	if err != nil {
		return ErrIdeaNotFound
	}
	return r.removeOne(ctx, bson.M{"_id": oid, "boardId": boardID})
}

func (r *IdeaRepo) removeOne(ctx context.Context, filter bson.M) error {
	timer := utils.TrackDBOperation("delete", "ideas")
	defer timer.ObserveDuration()

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	result, err := r.MongoCollection.DeleteOne(ctx, filter)
	if err != nil {
		utils.TrackError("database", "idea_deletion_failed")
		return fmt.Errorf("failed to remove idea: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrIdeaNotFound
	}
	return nil
}

func (r *IdeaRepo) RemoveIdeasByIds(ctx context.Context, ideaIDs []primitive.ObjectID) (int64, error) {
	if len(ideaIDs) == 0 {
		return 0, nil
	}
	return r.removeMany(ctx, bson.M{"_id": bson.M{"$in": ideaIDs}})
}

// RemoveIdeasByBoard deletes every idea filed under boardID, including ones the
// board document no longer references.
func (r *IdeaRepo) RemoveIdeasByBoard(ctx context.Context, boardID string) (int64, error) {
	return r.removeMany(ctx, bson.M{"boardId": boardID})
}

func (r *IdeaRepo) removeMany(ctx context.Context, filter bson.M) (int64, error) {
	timer := utils.TrackDBOperation("delete_many", "ideas")
	defer timer.ObserveDuration()

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	result, err := r.MongoCollection.DeleteMany(ctx, filter)
	if err != nil {
		utils.TrackError("database", "idea_deletion_failed")
		return 0, fmt.Errorf("failed to remove ideas: %w", err)
	}
	return result.DeletedCount, nil
}

func (r *IdeaRepo) AddUpvoteToIdea(ctx context.Context, ideaID string) error {
	oid, err := primitive.ObjectIDFromHex(ideaID)
	if err != nil {
		return ErrIdeaNotFound
	}

	matched, err := r.update(ctx, bson.M{"_id": oid},
		bson.M{"$inc": bson.M{"meta.upvote_count": 1}})
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrIdeaNotFound
	}
	return nil
}

// RemoveUpvoteFromIdea decrements the upvote count. The filter only matches
// positive counts, so racing removals cannot drive the count below zero.
func (r *IdeaRepo) RemoveUpvoteFromIdea(ctx context.Context, ideaID string) error {
	oid, err := primitive.ObjectIDFromHex(ideaID)
	if err != nil {
		return ErrIdeaNotFound
	}

	matched, err := r.update(ctx,
		bson.M{"_id": oid, "meta.upvote_count": bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"meta.upvote_count": -1}})
	if err != nil {
		return err
	}
	if matched > 0 {
		return nil
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to check idea: %w", err)
	}
	if count == 0 {
		return ErrIdeaNotFound
	}
	return ErrNoUpvotes
}

func (r *IdeaRepo) SetFlag(ctx context.Context, ideaID string, flag bool) error {
	oid, err := primitive.ObjectIDFromHex(ideaID)
	if err != nil {
		return ErrIdeaNotFound
	}

	matched, err := r.update(ctx, bson.M{"_id": oid},
		bson.M{"$set": bson.M{"meta.flag": flag}})
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrIdeaNotFound
	}
	return nil
}

func (r *IdeaRepo) update(ctx context.Context, filter, update bson.M) (int64, error) {
	timer := utils.TrackDBOperation("update", "ideas")
	defer timer.ObserveDuration()

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "idea_update_failed")
		return 0, fmt.Errorf("failed to update idea: %w", err)
	}
	return result.MatchedCount, nil
}
