package repository

import (
	"context"
	"testing"
	"time"

	"ideaboard/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func sampleSession(id string, active bool, expiresIn time.Duration) *model.Session {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &model.Session{
		SessionID:      id,
		UserID:         "user-1",
		Username:       "ada",
		CreatedAt:      now,
		ExpiresAt:      now.Add(expiresIn),
		LastActivityAt: now,
		IsActive:       active,
	}
}

func TestSessionRepoCreate(t *testing.T) {
	mt := newMockT(t)
	ctx := context.Background()

	mt.Run("stores session", func(mt *mtest.T) {
		repo := &SessionRepo{MongoCollection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		assert.NoError(mt, repo.CreateSession(ctx, sampleSession("sess-1", true, time.Hour)))
	})

	mt.Run("rejects missing ids", func(mt *mtest.T) {
		repo := &SessionRepo{MongoCollection: mt.Coll}

		assert.Error(mt, repo.CreateSession(ctx, &model.Session{UserID: "user-1"}))
		assert.Error(mt, repo.CreateSession(ctx, nil))
	})
}

func TestSessionRepoGet(t *testing.T) {
	mt := newMockT(t)
	ctx := context.Background()

	mt.Run("active session", func(mt *mtest.T) {
		repo := &SessionRepo{MongoCollection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch,
			toDoc(mt.T, sampleSession("sess-1", true, time.Hour))))

		session, err := repo.GetSession(ctx, "sess-1")
		require.NoError(mt, err)
		assert.Equal(mt, "ada", session.Username)
	})

	mt.Run("ended session", func(mt *mtest.T) {
		repo := &SessionRepo{MongoCollection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch,
			toDoc(mt.T, sampleSession("sess-1", false, time.Hour))))

		_, err := repo.GetSession(ctx, "sess-1")
		assert.ErrorIs(mt, err, ErrSessionNotFound)
	})

	mt.Run("expired session", func(mt *mtest.T) {
		repo := &SessionRepo{MongoCollection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch,
			toDoc(mt.T, sampleSession("sess-1", true, -time.Minute))))

		_, err := repo.GetSession(ctx, "sess-1")
		assert.ErrorIs(mt, err, ErrSessionNotFound)
	})

	mt.Run("empty id", func(mt *mtest.T) {
		repo := &SessionRepo{MongoCollection: mt.Coll}

		_, err := repo.GetSession(ctx, "")
		assert.ErrorIs(mt, err, ErrSessionNotFound)
	})
}

func TestSessionRepoLifecycle(t *testing.T) {
	mt := newMockT(t)
	ctx := context.Background()

	mt.Run("touch", func(mt *mtest.T) {
		repo := &SessionRepo{MongoCollection: mt.Coll}
		session := sampleSession("sess-1", true, time.Hour)
		before := session.LastActivityAt
		mt.AddMockResponses(matched(1))

		require.NoError(mt, repo.TouchSession(ctx, session))
		assert.False(mt, session.LastActivityAt.Before(before))
	})

	mt.Run("end", func(mt *mtest.T) {
		repo := &SessionRepo{MongoCollection: mt.Coll}
		mt.AddMockResponses(matched(1))

		assert.NoError(mt, repo.EndSession(ctx, "sess-1"))
	})

	mt.Run("end twice", func(mt *mtest.T) {
		repo := &SessionRepo{MongoCollection: mt.Coll}
		mt.AddMockResponses(matched(0))

		assert.ErrorIs(mt, repo.EndSession(ctx, "sess-1"), ErrSessionNotFound)
	})

	mt.Run("count active", func(mt *mtest.T) {
		repo := &SessionRepo{MongoCollection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, bson.D{{Key: "n", Value: 3}}))

		count, err := repo.CountActiveSessions(ctx, "user-1")
		require.NoError(mt, err)
		assert.Equal(mt, 3, count)
	})

	mt.Run("end least active", func(mt *mtest.T) {
		repo := &SessionRepo{MongoCollection: mt.Coll}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, toDoc(mt.T, sampleSession("old-1", true, time.Hour))),
			matched(1),
		)

		assert.NoError(mt, repo.EndLeastActiveSession(ctx, "user-1"))
	})

	mt.Run("end least active without sessions", func(mt *mtest.T) {
		repo := &SessionRepo{MongoCollection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch))

		assert.ErrorIs(mt, repo.EndLeastActiveSession(ctx, "user-1"), ErrSessionNotFound)
	})
}
