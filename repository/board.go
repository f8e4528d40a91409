package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"ideaboard/config"
	"ideaboard/model"
	"ideaboard/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const maxBoardCodeAttempts = 5

type BoardRepo struct {
	MongoCollection *mongo.Collection
	Ideas           *IdeaRepo

	// NewCode is swapped out in tests to force code collisions.
	NewCode func() (string, error)
}

func GetBoardRepo(client *mongo.Client, cfg config.DatabaseConfig) *BoardRepo {
	return &BoardRepo{
		MongoCollection: client.Database(cfg.DatabaseName).Collection(cfg.BoardsCollection),
		Ideas:           GetIdeaRepo(client, cfg),
		NewCode:         utils.GenerateBoardCode,
	}
}

// AddBoard creates an empty board moderated by moderator under a fresh code.
func (r *BoardRepo) AddBoard(ctx context.Context, moderator string) (*model.Board, error) {
	timer := utils.TrackDBOperation("insert", "boards")
	defer timer.ObserveDuration()

	newCode := r.NewCode
	if newCode == nil {
		newCode = utils.GenerateBoardCode
	}

	for attempt := 0; attempt < maxBoardCodeAttempts; attempt++ {
		code, err := newCode()
		if err != nil {
			return nil, fmt.Errorf("failed to generate board code: %w", err)
		}

		board := &model.Board{
			ID:        primitive.NewObjectID(),
			BoardID:   code,
			Moderator: moderator,
			Ideas:     []primitive.ObjectID{},
			Date:      time.Now().UTC().Truncate(time.Millisecond),
		}
		if err := utils.Validate.Struct(board); err != nil {
			utils.TrackError("validation", "invalid_board")
			return nil, fmt.Errorf("%w: %v", ErrInvalidBoard, err)
		}

		insertCtx, cancel := withTimeout(ctx)
		_, err = r.MongoCollection.InsertOne(insertCtx, board)
		cancel()
		if err == nil {
			return board, nil
		}
		if mongo.IsDuplicateKeyError(err) {
			log.Printf("Board code %s already taken, retrying", code)
			continue
		}
		utils.TrackError("database", "board_creation_failed")
		return nil, fmt.Errorf("failed to add board: %w", err)
	}

	utils.TrackError("database", "board_code_exhausted")
	return nil, ErrBoardCodeExhausted
}

func (r *BoardRepo) FindBoard(ctx context.Context, boardID string) (*model.Board, error) {
	timer := utils.TrackDBOperation("find", "boards")
	defer timer.ObserveDuration()

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var board model.Board
	err := r.MongoCollection.FindOne(ctx, bson.M{"boardId": boardID}).Decode(&board)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBoardNotFound
		}
		utils.TrackError("database", "board_lookup_error")
		return nil, fmt.Errorf("failed to find board: %w", err)
	}
	if board.Ideas == nil {
		board.Ideas = []primitive.ObjectID{}
	}
	return &board, nil
}

// FindBoardsByModerator returns the moderator's boards, newest first.
func (r *BoardRepo) FindBoardsByModerator(ctx context.Context, moderator string) ([]*model.Board, error) {
	timer := utils.TrackDBOperation("find", "boards")
	defer timer.ObserveDuration()

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"moderator": moderator}, opts)
	if err != nil {
		utils.TrackError("database", "board_lookup_error")
		return nil, fmt.Errorf("failed to find boards: %w", err)
	}
	defer cursor.Close(ctx)

	boards := []*model.Board{}
	if err := cursor.All(ctx, &boards); err != nil {
		return nil, fmt.Errorf("failed to decode boards: %w", err)
	}
	return boards, nil
}

func (r *BoardRepo) GetBoardIdeas(ctx context.Context, boardID string) ([]*model.Idea, error) {
	board, err := r.FindBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}
	return r.Ideas.FindIdeasByIds(ctx, board.Ideas)
}

// AddIdeaToBoard stores the idea and appends its id to the board. If the board
// vanishes between the two writes the stored idea is removed again.
func (r *BoardRepo) AddIdeaToBoard(ctx context.Context, boardID string, idea *model.Idea) (*model.Idea, error) {
	if _, err := r.FindBoard(ctx, boardID); err != nil {
		return nil, err
	}

	idea.BoardID = boardID
	newIdea, err := r.Ideas.AddIdea(ctx, idea)
	if err != nil {
		return nil, err
	}

	matched, err := r.update(ctx, boardID, bson.M{"$push": bson.M{"ideas": newIdea.ID}})
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		if rmErr := r.Ideas.RemoveIdea(ctx, newIdea.ID.Hex()); rmErr != nil {
			log.Printf("Failed to clean up idea %s after board %s disappeared: %v", newIdea.ID.Hex(), boardID, rmErr)
		}
		return nil, ErrBoardNotFound
	}
	return newIdea, nil
}

// RemoveIdeaFromBoard pulls the reference from the board and deletes the idea.
func (r *BoardRepo) RemoveIdeaFromBoard(ctx context.Context, boardID, ideaID string) error {
	oid, err := primitive.ObjectIDFromHex(ideaID)
	if err != nil {
		return ErrIdeaNotFound
	}

	matched, err := r.update(ctx, boardID, bson.M{"$pull": bson.M{"ideas": oid}})
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrBoardNotFound
	}

	return r.Ideas.RemoveBoardIdea(ctx, boardID, ideaID)
}

// RemoveBoard deletes the board and every idea that belongs to it, since ideas
// only exist within the context of their board.
func (r *BoardRepo) RemoveBoard(ctx context.Context, boardID string) error {
	if _, err := r.FindBoard(ctx, boardID); err != nil {
		return err
	}

	removed, err := r.Ideas.RemoveIdeasByBoard(ctx, boardID)
	if err != nil {
		return err
	}

	timer := utils.TrackDBOperation("delete", "boards")
	defer timer.ObserveDuration()

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"boardId": boardID})
	if err != nil {
		utils.TrackError("database", "board_deletion_failed")
		return fmt.Errorf("failed to remove board: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrBoardNotFound
	}

	log.Printf("Removed board %s and %d ideas", boardID, removed)
	return nil
}

func (r *BoardRepo) update(ctx context.Context, boardID string, update bson.M) (int64, error) {
	timer := utils.TrackDBOperation("update", "boards")
	defer timer.ObserveDuration()

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"boardId": boardID}, update)
	if err != nil {
		utils.TrackError("database", "board_update_failed")
		return 0, fmt.Errorf("failed to update board: %w", err)
	}
	return result.MatchedCount, nil
}
