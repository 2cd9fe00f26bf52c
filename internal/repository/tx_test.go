package repository_test

import (
	"context"
	"errors"
	"testing"

	"promptcraft/backend/internal/model"
	"promptcraft/backend/internal/repository"
	"promptcraft/backend/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func TestTxManager_CommitsOnSuccess(t *testing.T) {
	db := testutil.NewTestDB(t)
	tx := repository.NewTxManager(db)
	folders := repository.NewFolderRepository(db)
	owner := testutil.SeedUser(t, db, "alice")

	var id int64
	err := tx.ExecTx(context.Background(), func(ctx context.Context) error {
		f, err := folders.Create(ctx, model.Folder{OwnerID: owner, Name: "Work"})
		id = f.ID
		return err
	})
	require.NoError(t, err)
	require.Equal(t, 1, testutil.CountFolders(t, db, id))
}

func TestTxManager_RollsBackOnError(t *testing.T) {
	db := testutil.NewTestDB(t)
	tx := repository.NewTxManager(db)
	folders := repository.NewFolderRepository(db)
	owner := testutil.SeedUser(t, db, "alice")
	a := testutil.SeedFolder(t, db, owner, "A", nil, 0)
	b := testutil.SeedFolder(t, db, owner, "B", nil, 1)

	boom := errors.New("boom")
	err := tx.ExecTx(context.Background(), func(ctx context.Context) error {
		if err := folders.UpdateSortOrder(ctx, owner, a, 1); err != nil {
			return err
		}
		// The second half of a swap fails: the first must not survive.
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, orderA := testutil.FolderParent(t, db, a)
	_, orderB := testutil.FolderParent(t, db, b)
	require.Equal(t, 0, orderA)
	require.Equal(t, 1, orderB)
}

func TestTxManager_NestedJoinsOuter(t *testing.T) {
	db := testutil.NewTestDB(t)
	tx := repository.NewTxManager(db)
	folders := repository.NewFolderRepository(db)
	owner := testutil.SeedUser(t, db, "alice")

	var inner int64
	boom := errors.New("outer failed")
	err := tx.ExecTx(context.Background(), func(ctx context.Context) error {
		if err := tx.ExecTx(ctx, func(ctx context.Context) error {
			f, err := folders.Create(ctx, model.Folder{OwnerID: owner, Name: "Inner"})
			inner = f.ID
			return err
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 0, testutil.CountFolders(t, db, inner))
}

func TestTxManager_CancelledContext(t *testing.T) {
	db := testutil.NewTestDB(t)
	tx := repository.NewTxManager(db)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := tx.ExecTx(ctx, func(ctx context.Context) error {
		called = true
		return nil
	})
	require.Error(t, err)
	require.False(t, called)
}

func TestIsBusy_PlainError(t *testing.T) {
	require.False(t, repository.IsBusy(errors.New("database is locked")))
	require.False(t, repository.IsUniqueViolation(errors.New("UNIQUE constraint failed")))
}
