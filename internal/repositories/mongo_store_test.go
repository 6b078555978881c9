package repositories_test

import (
	"context"
	"os"
	"testing"

	"kickshop/internal/database"
	"kickshop/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Runs against a live server only when MONGO_TEST_URL is set.
func TestMongoStore(t *testing.T) {
	url := os.Getenv("MONGO_TEST_URL")
	if url == "" {
		t.Skip("MONGO_TEST_URL not set")
	}

	testStore(t, func(t *testing.T) *repositories.Store {
		ctx := context.Background()
		client, db, err := database.ConnectMongo(ctx, url, "kickshop_test_"+uuid.New().String()[:8])
		require.NoError(t, err)

		store, err := repositories.NewMongoStore(ctx, client, db)
		require.NoError(t, err)
		t.Cleanup(func() {
			_ = db.Drop(context.Background())
			_ = store.Close(context.Background())
		})
		return store
	})
}
