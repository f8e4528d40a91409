package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ideaboard/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newBoardRepo(mt *mtest.T, codes ...string) *BoardRepo {
	next := 0
	return &BoardRepo{
		MongoCollection: mt.Coll,
		Ideas:           &IdeaRepo{MongoCollection: mt.DB.Collection("ideas")},
		NewCode: func() (string, error) {
			if next >= len(codes) {
				return "", fmt.Errorf("out of codes")
			}
			code := codes[next]
			next++
			return code, nil
		},
	}
}

func sampleBoard(code string, ideas ...primitive.ObjectID) *model.Board {
	if ideas == nil {
		ideas = []primitive.ObjectID{}
	}
	return &model.Board{
		ID:        primitive.NewObjectID(),
		BoardID:   code,
		Moderator: "mod-1",
		Ideas:     ideas,
		Date:      time.Now().UTC().Truncate(time.Millisecond),
	}
}

func TestBoardRepoAddBoard(t *testing.T) {
	mt := newMockT(t)
	ctx := context.Background()

	mt.Run("creates empty board", func(mt *mtest.T) {
		repo := newBoardRepo(mt, "ABC234")
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		board, err := repo.AddBoard(ctx, "mod-1")
		require.NoError(mt, err)
		assert.Equal(mt, "ABC234", board.BoardID)
		assert.Equal(mt, "mod-1", board.Moderator)
		assert.Empty(mt, board.Ideas)
		assert.NotNil(mt, board.Ideas)
		assert.False(mt, board.Date.IsZero())
	})

	mt.Run("retries on code collision", func(mt *mtest.T) {
		repo := newBoardRepo(mt, "TAKEN2", "FRESH3")
		mt.AddMockResponses(duplicateKey(), mtest.CreateSuccessResponse())

		board, err := repo.AddBoard(ctx, "mod-1")
		require.NoError(mt, err)
		assert.Equal(mt, "FRESH3", board.BoardID)
	})

	mt.Run("gives up after repeated collisions", func(mt *mtest.T) {
		repo := newBoardRepo(mt, "AAAAA2", "AAAAA3", "AAAAA4", "AAAAA5", "AAAAA6")
		for i := 0; i < maxBoardCodeAttempts; i++ {
			mt.AddMockResponses(duplicateKey())
		}

		_, err := repo.AddBoard(ctx, "mod-1")
		assert.ErrorIs(mt, err, ErrBoardCodeExhausted)
	})

	mt.Run("requires moderator", func(mt *mtest.T) {
		repo := newBoardRepo(mt, "ABC234")

		_, err := repo.AddBoard(ctx, "")
		assert.ErrorIs(mt, err, ErrInvalidBoard)
	})
}

func TestBoardRepoFind(t *testing.T) {
	mt := newMockT(t)
	ctx := context.Background()

	mt.Run("found", func(mt *mtest.T) {
		repo := newBoardRepo(mt)
		stored := sampleBoard("ABC234", primitive.NewObjectID())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, toDoc(mt.T, stored)))

		board, err := repo.FindBoard(ctx, "ABC234")
		require.NoError(mt, err)
		assert.Equal(mt, stored.ID, board.ID)
		assert.Len(mt, board.Ideas, 1)
	})

	mt.Run("not found", func(mt *mtest.T) {
		repo := newBoardRepo(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch))

		_, err := repo.FindBoard(ctx, "NOPE22")
		assert.ErrorIs(mt, err, ErrBoardNotFound)
	})

	mt.Run("by moderator", func(mt *mtest.T) {
		repo := newBoardRepo(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch,
			toDoc(mt.T, sampleBoard("NEWER2")), toDoc(mt.T, sampleBoard("OLDER3"))))

		boards, err := repo.FindBoardsByModerator(ctx, "mod-1")
		require.NoError(mt, err)
		require.Len(mt, boards, 2)
		assert.Equal(mt, "NEWER2", boards[0].BoardID)
	})

	mt.Run("moderator without boards", func(mt *mtest.T) {
		repo := newBoardRepo(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch))

		boards, err := repo.FindBoardsByModerator(ctx, "mod-2")
		require.NoError(mt, err)
		assert.NotNil(mt, boards)
		assert.Empty(mt, boards)
	})
}

func TestBoardRepoIdeas(t *testing.T) {
	mt := newMockT(t)
	ctx := context.Background()

	mt.Run("board ideas", func(mt *mtest.T) {
		repo := newBoardRepo(mt)
		idea := sampleIdea("ABC234", "quiet room")
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, toDoc(mt.T, sampleBoard("ABC234", idea.ID))),
			mtest.CreateCursorResponse(0, "test.ideas", mtest.FirstBatch, toDoc(mt.T, idea)),
		)

		ideas, err := repo.GetBoardIdeas(ctx, "ABC234")
		require.NoError(mt, err)
		require.Len(mt, ideas, 1)
		assert.Equal(mt, "quiet room", ideas[0].Content)
	})

	mt.Run("empty board skips idea query", func(mt *mtest.T) {
		repo := newBoardRepo(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, toDoc(mt.T, sampleBoard("ABC234"))))

		ideas, err := repo.GetBoardIdeas(ctx, "ABC234")
		require.NoError(mt, err)
		assert.Empty(mt, ideas)
	})

	mt.Run("ideas of unknown board", func(mt *mtest.T) {
		repo := newBoardRepo(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch))

		_, err := repo.GetBoardIdeas(ctx, "NOPE22")
		assert.ErrorIs(mt, err, ErrBoardNotFound)
	})

	mt.Run("add idea", func(mt *mtest.T) {
		repo := newBoardRepo(mt)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, toDoc(mt.T, sampleBoard("ABC234"))),
			mtest.CreateSuccessResponse(),
			matched(1),
		)

		idea, err := repo.AddIdeaToBoard(ctx, "ABC234", &model.Idea{CreatorID: "user-1", Content: "standing desks"})
		require.NoError(mt, err)
		assert.Equal(mt, "ABC234", idea.BoardID)
		assert.Equal(mt, "standing desks", idea.Content)
		assert.False(mt, idea.ID.IsZero())
	})

	mt.Run("add idea to unknown board stores nothing", func(mt *mtest.T) {
		repo := newBoardRepo(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch))

		_, err := repo.AddIdeaToBoard(ctx, "NOPE22", &model.Idea{CreatorID: "user-1", Content: "hi"})
		assert.ErrorIs(mt, err, ErrBoardNotFound)
	})

	mt.Run("add idea when board disappears", func(mt *mtest.T) {
		repo := newBoardRepo(mt)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, toDoc(mt.T, sampleBoard("ABC234"))),
			mtest.CreateSuccessResponse(),
			matched(0),
			deleted(1),
		)

		_, err := repo.AddIdeaToBoard(ctx, "ABC234", &model.Idea{CreatorID: "user-1", Content: "hi"})
		assert.ErrorIs(mt, err, ErrBoardNotFound)
	})

	mt.Run("remove idea", func(mt *mtest.T) {
		repo := newBoardRepo(mt)
		mt.AddMockResponses(matched(1), deleted(1))

		assert.NoError(mt, repo.RemoveIdeaFromBoard(ctx, "ABC234", primitive.NewObjectID().Hex()))
	})

	mt.Run("remove idea scoped to board", func(mt *mtest.T) {
		repo := newBoardRepo(mt)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(matched(1), deleted(0))

		err := repo.RemoveIdeaFromBoard(ctx, "AAAAAA", oid.Hex())
		assert.ErrorIs(mt, err, ErrIdeaNotFound)

		require.NotNil(mt, mt.GetStartedEvent()) // $pull on the board
		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		require.Equal(mt, "delete", evt.CommandName)

		q := evt.Command.Lookup("deletes").Array().Index(0).Value().Document().Lookup("q").Document()
		assert.Equal(mt, oid, q.Lookup("_id").ObjectID())
		assert.Equal(mt, "AAAAAA", q.Lookup("boardId").StringValue())
	})

	mt.Run("remove idea from unknown board", func(mt *mtest.T) {
		repo := newBoardRepo(mt)
		mt.AddMockResponses(matched(0))

		err := repo.RemoveIdeaFromBoard(ctx, "NOPE22", primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, ErrBoardNotFound)
	})

	mt.Run("remove malformed idea id", func(mt *mtest.T) {
		repo := newBoardRepo(mt)

		err := repo.RemoveIdeaFromBoard(ctx, "ABC234", "xyz")
		assert.ErrorIs(mt, err, ErrIdeaNotFound)
	})
}

func TestBoardRepoRemoveBoard(t *testing.T) {
	mt := newMockT(t)
	ctx := context.Background()

	mt.Run("cascades to ideas", func(mt *mtest.T) {
		repo := newBoardRepo(mt)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, toDoc(mt.T, sampleBoard("ABC234"))),
			deleted(3),
			deleted(1),
		)

		assert.NoError(mt, repo.RemoveBoard(ctx, "ABC234"))
	})

	mt.Run("unknown board", func(mt *mtest.T) {
		repo := newBoardRepo(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch))

		assert.ErrorIs(mt, repo.RemoveBoard(ctx, "NOPE22"), ErrBoardNotFound)
	})
}
