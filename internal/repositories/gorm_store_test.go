package repositories_test

import (
	"context"
	"testing"

	"kickshop/internal/database"
	"kickshop/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) *repositories.Store {
	t.Helper()
	db, err := database.OpenGORM("sqlite", "file:"+uuid.New().String()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, repositories.Migrate(db))

	store := repositories.NewGORMStore(db)
	t.Cleanup(func() { _ = store.Close(context.Background()) })
	return store
}

func TestGORMStore(t *testing.T) {
	testStore(t, newSQLiteStore)
}
