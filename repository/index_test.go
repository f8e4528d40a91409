package repository

import (
	"context"
	"testing"

	"ideaboard/config"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestSetupIndexes(t *testing.T) {
	mt := newMockT(t)
	cfg := config.LoadDatabaseConfig()

	mt.Run("creates indexes for every collection", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
		)

		assert.NoError(mt, SetupIndexes(context.Background(), mt.DB, cfg))
	})

	mt.Run("reports failing collection", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 85, Message: "index options conflict"}),
		)

		err := SetupIndexes(context.Background(), mt.DB, cfg)
		assert.ErrorContains(mt, err, cfg.IdeasCollection)
	})
}
