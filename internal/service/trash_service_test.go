package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"promptcraft/backend/internal/model"
	"promptcraft/backend/internal/repository/mock"
	"promptcraft/backend/internal/repository/testutil"
	"promptcraft/backend/internal/service"
)

func TestTrashService_ProvisionIsIdempotent(t *testing.T) {
	h := newHarness(t)
	ownerID := testutil.SeedUser(t, h.db, "alice")
	ctx := context.Background()

	first, err := h.trash.Provision(ctx, ownerID)
	require.NoError(t, err)
	require.True(t, first.IsSystem)
	require.Equal(t, model.TrashFolderName, first.Name)
	require.Equal(t, model.TrashSortOrder, first.SortOrder)
	require.Nil(t, first.ParentID)

	second, err := h.trash.Provision(ctx, ownerID)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	folders, err := h.folders.ListByOwner(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, folders, 1)
}

func TestTrashService_Provision_CreateFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	folders := mock.NewMockFolderRepository(ctrl)
	svc := service.NewTrashService(folders, mock.NewMockPromptRepository(ctrl))

	existing := model.Folder{ID: 9, OwnerID: 1, Name: model.TrashFolderName, IsSystem: true}
	gomock.InOrder(
		folders.EXPECT().GetSystem(gomock.Any(), int64(1)).Return(model.Folder{}, sql.ErrNoRows),
		folders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(model.Folder{}, errors.New("disk full")),
	)

	_, err := svc.Provision(context.Background(), 1)
	require.Error(t, err)
	require.NotErrorIs(t, err, service.ErrInvariant)

	folders.EXPECT().GetSystem(gomock.Any(), int64(1)).Return(existing, nil)
	got, err := svc.Provision(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, existing, got)
}

func TestTrashService_GetTrash(t *testing.T) {
	h := newHarness(t)
	ws, trashID := h.owner(t, "alice")
	orphan := testutil.SeedUser(t, h.db, "orphan")

	trash, err := ws.GetTrash(context.Background())
	require.NoError(t, err)
	require.Equal(t, trashID, trash.ID)

	_, err = h.trash.GetTrash(context.Background(), orphan)
	require.ErrorIs(t, err, service.ErrInvariant)
}

func TestTrashService_MoveToTrash(t *testing.T) {
	h := newHarness(t)
	ws, trashID := h.owner(t, "alice")
	ctx := context.Background()
	work := h.mustCreate(t, ws, "Work", nil)
	p := testutil.SeedPrompt(t, h.db, model.Prompt{OwnerID: ws.OwnerID(), FolderID: work.ID})

	require.NoError(t, ws.MoveToTrash(ctx, p))

	moved, err := h.prompts.GetByID(ctx, ws.OwnerID(), p)
	require.NoError(t, err)
	require.Equal(t, trashID, moved.FolderID)
	require.NotNil(t, moved.DeletedAt)

	// A second call keeps the original stamp.
	require.NoError(t, ws.MoveToTrash(ctx, p))
	again, err := h.prompts.GetByID(ctx, ws.OwnerID(), p)
	require.NoError(t, err)
	require.Equal(t, moved.DeletedAt.UnixNano(), again.DeletedAt.UnixNano())
}

func TestTrashService_MoveToTrash_OtherOwner(t *testing.T) {
	h := newHarness(t)
	alice, _ := h.owner(t, "alice")
	bob, _ := h.owner(t, "bob")
	work := h.mustCreate(t, alice, "Work", nil)
	p := testutil.SeedPrompt(t, h.db, model.Prompt{OwnerID: alice.OwnerID(), FolderID: work.ID})

	require.ErrorIs(t, bob.MoveToTrash(context.Background(), p), service.ErrNotFound)
	require.Equal(t, work.ID, testutil.PromptFolder(t, h.db, p))
}

func TestTrashService_PurgeExpired(t *testing.T) {
	h := newHarness(t)
	alice, aliceTrash := h.owner(t, "alice")
	bob, bobTrash := h.owner(t, "bob")
	ctx := context.Background()
	work := h.mustCreate(t, alice, "Work", nil)

	old := time.Now().Add(-72 * time.Hour)
	recent := time.Now().Add(-time.Hour)
	expiredA := testutil.SeedPrompt(t, h.db, model.Prompt{OwnerID: alice.OwnerID(), FolderID: aliceTrash, DeletedAt: &old})
	keptA := testutil.SeedPrompt(t, h.db, model.Prompt{OwnerID: alice.OwnerID(), FolderID: aliceTrash, DeletedAt: &recent})
	expiredB := testutil.SeedPrompt(t, h.db, model.Prompt{OwnerID: bob.OwnerID(), FolderID: bobTrash, DeletedAt: &old})
	// A stale stamp outside Trash is never purged.
	live := testutil.SeedPrompt(t, h.db, model.Prompt{OwnerID: alice.OwnerID(), FolderID: work.ID, DeletedAt: &old})

	n, err := h.trash.PurgeExpired(ctx, 24*time.Hour)
	require.NoError(t, err)
	require.Equal(t, int64(2), n)

	_, err = h.prompts.GetByID(ctx, alice.OwnerID(), expiredA)
	require.ErrorIs(t, err, sql.ErrNoRows)
	_, err = h.prompts.GetByID(ctx, bob.OwnerID(), expiredB)
	require.ErrorIs(t, err, sql.ErrNoRows)
	_, err = h.prompts.GetByID(ctx, alice.OwnerID(), keptA)
	require.NoError(t, err)
	_, err = h.prompts.GetByID(ctx, alice.OwnerID(), live)
	require.NoError(t, err)
}

func TestTrashService_PurgeExpired_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.NewTrashService(mock.NewMockFolderRepository(ctrl), mock.NewMockPromptRepository(ctrl))

	n, err := svc.PurgeExpired(context.Background(), 0)
	require.NoError(t, err)
	require.Zero(t, n)
}
