package mongo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.mongodb.org/mongo-driver/mongo/options"

	pkgmongo "github.com/klwxsrx/project-manager/pkg/mongo"
)

func TestEnsureIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("creates indexes", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := pkgmongo.EnsureIndexes(context.Background(), mt.Coll, mongo.IndexModel{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		assert.NoError(mt, err)
	})

	mt.Run("no indexes", func(mt *mtest.T) {
		assert.NoError(mt, pkgmongo.EnsureIndexes(context.Background(), mt.Coll))
	})
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, pkgmongo.IsNotFound(mongo.ErrNoDocuments))
	assert.True(t, pkgmongo.IsDuplicateKeyError(mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
	}))
	assert.False(t, pkgmongo.IsDuplicateKeyError(mongo.ErrNoDocuments))
}
