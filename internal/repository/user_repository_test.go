package repository_test

import (
	"context"
	"testing"

	"promptcraft/backend/internal/repository"
	"promptcraft/backend/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, "alice", "hash")
	require.NoError(t, err)

	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, created.ID, found.ID)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "hash", byID.PasswordHash)

	missing, err := repo.FindByUsername(ctx, "nobody")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, "alice", "hash")
	require.NoError(t, err)
	_, err = repo.Create(ctx, "alice", "hash")
	require.Error(t, err)
	require.True(t, repository.IsUniqueViolation(err))
}
