package service_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"promptcraft/backend/internal/model"
	"promptcraft/backend/internal/repository"
	"promptcraft/backend/internal/repository/mock"
	"promptcraft/backend/internal/repository/testutil"
	"promptcraft/backend/internal/service"
)

// passthroughTx runs fn directly; gomock tests have no database.
func passthroughTx(ctrl *gomock.Controller) *mock.MockTxManager {
	tx := mock.NewMockTxManager(ctrl)
	tx.EXPECT().ExecTx(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn repository.TxFn) error {
		return fn(ctx)
	}).AnyTimes()
	return tx
}

func TestPromptService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	prompts := mock.NewMockPromptRepository(ctrl)
	folders := mock.NewMockFolderRepository(ctrl)
	svc := service.NewPromptService(passthroughTx(ctrl), prompts, folders)

	folders.EXPECT().GetByID(gomock.Any(), int64(1), int64(10)).Return(model.Folder{ID: 10, OwnerID: 1}, nil)
	prompts.EXPECT().Create(gomock.Any(), model.Prompt{
		OwnerID:  1,
		FolderID: 10,
		Title:    "Untitled",
		Prompt:   "body",
		Tags:     []string{"go", "sql"},
	}).Return(model.Prompt{ID: 5, OwnerID: 1, FolderID: 10, Title: "Untitled"}, nil)

	created, err := svc.Create(context.Background(), 1, service.PromptInput{
		Title:    "  <i></i> ",
		Prompt:   "body",
		Tags:     []string{" go ", "sql", "go", ""},
		FolderID: 10,
	})
	require.NoError(t, err)
	require.Equal(t, int64(5), created.ID)
}

func TestPromptService_Create_FolderChecks(t *testing.T) {
	ctrl := gomock.NewController(t)
	prompts := mock.NewMockPromptRepository(ctrl)
	folders := mock.NewMockFolderRepository(ctrl)
	svc := service.NewPromptService(passthroughTx(ctrl), prompts, folders)

	folders.EXPECT().GetByID(gomock.Any(), int64(1), int64(10)).Return(model.Folder{}, fmt.Errorf("get folder: %w", sql.ErrNoRows))
	_, err := svc.Create(context.Background(), 1, service.PromptInput{FolderID: 10})
	require.ErrorIs(t, err, service.ErrNotFound)

	folders.EXPECT().GetByID(gomock.Any(), int64(1), int64(11)).Return(model.Folder{ID: 11, IsSystem: true}, nil)
	_, err = svc.Create(context.Background(), 1, service.PromptInput{FolderID: 11})
	require.ErrorIs(t, err, service.ErrForbidden)
}

func TestPromptService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	prompts := mock.NewMockPromptRepository(ctrl)
	svc := service.NewPromptService(passthroughTx(ctrl), prompts, mock.NewMockFolderRepository(ctrl))

	prompts.EXPECT().GetByID(gomock.Any(), int64(1), int64(2)).Return(model.Prompt{}, fmt.Errorf("get prompt: %w", sql.ErrNoRows))
	_, err := svc.Get(context.Background(), 1, 2)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestPromptService_Update_TrashTransitions(t *testing.T) {
	h := newHarness(t)
	ws, trashID := h.owner(t, "alice")
	svc := service.NewPromptService(h.tx, h.prompts, h.folders)
	ctx := context.Background()
	work := h.mustCreate(t, ws, "Work", nil)
	id := testutil.SeedPrompt(t, h.db, model.Prompt{OwnerID: ws.OwnerID(), FolderID: work.ID, Title: "Old"})

	trashed, err := svc.Update(ctx, ws.OwnerID(), id, service.PromptInput{Title: "Old", FolderID: trashID})
	require.NoError(t, err)
	require.Equal(t, trashID, trashed.FolderID)
	require.NotNil(t, trashed.DeletedAt)

	restored, err := svc.Update(ctx, ws.OwnerID(), id, service.PromptInput{Title: "Back", Tags: []string{"x"}, FolderID: work.ID})
	require.NoError(t, err)
	require.Equal(t, work.ID, restored.FolderID)
	require.Nil(t, restored.DeletedAt)
	require.Equal(t, "Back", restored.Title)
	require.Equal(t, []string{"x"}, restored.Tags)
}

func TestPromptService_Update_KeepsTrashStamp(t *testing.T) {
	h := newHarness(t)
	ws, trashID := h.owner(t, "alice")
	svc := service.NewPromptService(h.tx, h.prompts, h.folders)
	stamp := time.Now().Add(-time.Hour)
	id := testutil.SeedPrompt(t, h.db, model.Prompt{OwnerID: ws.OwnerID(), FolderID: trashID, DeletedAt: &stamp})

	updated, err := svc.Update(context.Background(), ws.OwnerID(), id, service.PromptInput{Title: "Edited in trash", FolderID: trashID})
	require.NoError(t, err)
	require.NotNil(t, updated.DeletedAt)
	require.WithinDuration(t, stamp, *updated.DeletedAt, time.Second)
}

func TestPromptService_Update_NotFound(t *testing.T) {
	h := newHarness(t)
	alice, _ := h.owner(t, "alice")
	bob, _ := h.owner(t, "bob")
	svc := service.NewPromptService(h.tx, h.prompts, h.folders)
	work := h.mustCreate(t, alice, "Work", nil)
	bobs := h.mustCreate(t, bob, "Bob", nil)
	id := testutil.SeedPrompt(t, h.db, model.Prompt{OwnerID: alice.OwnerID(), FolderID: work.ID})

	_, err := svc.Update(context.Background(), bob.OwnerID(), id, service.PromptInput{FolderID: bobs.ID})
	require.ErrorIs(t, err, service.ErrNotFound)

	_, err = svc.Update(context.Background(), alice.OwnerID(), id, service.PromptInput{FolderID: bobs.ID})
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestPromptService_FavoriteAndDelete(t *testing.T) {
	h := newHarness(t)
	ws, _ := h.owner(t, "alice")
	svc := service.NewPromptService(h.tx, h.prompts, h.folders)
	ctx := context.Background()
	work := h.mustCreate(t, ws, "Work", nil)
	id := testutil.SeedPrompt(t, h.db, model.Prompt{OwnerID: ws.OwnerID(), FolderID: work.ID})

	require.NoError(t, svc.SetFavorite(ctx, ws.OwnerID(), id, true))
	favs, err := svc.List(ctx, ws.OwnerID(), nil, true)
	require.NoError(t, err)
	require.Len(t, favs, 1)

	require.NoError(t, svc.Delete(ctx, ws.OwnerID(), id))
	require.ErrorIs(t, svc.Delete(ctx, ws.OwnerID(), id), service.ErrNotFound)
	require.ErrorIs(t, svc.SetFavorite(ctx, ws.OwnerID(), id, false), service.ErrNotFound)
}

func TestPromptService_List_UnknownFolder(t *testing.T) {
	h := newHarness(t)
	ws, _ := h.owner(t, "alice")
	svc := service.NewPromptService(h.tx, h.prompts, h.folders)
	missing := int64(777)

	_, err := svc.List(context.Background(), ws.OwnerID(), &missing, false)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestPromptService_TopTags(t *testing.T) {
	ctrl := gomock.NewController(t)
	prompts := mock.NewMockPromptRepository(ctrl)
	svc := service.NewPromptService(passthroughTx(ctrl), prompts, mock.NewMockFolderRepository(ctrl))

	prompts.EXPECT().ListTags(gomock.Any(), int64(1)).Return([][]string{
		{"go", "sql"},
		{"go", "go", "web"},
		{"sql", "ai"},
		{},
	}, nil)

	tags, err := svc.TopTags(context.Background(), 1, 3)
	require.NoError(t, err)
	require.Equal(t, []model.TagCount{
		{Tag: "go", Count: 2},
		{Tag: "sql", Count: 2},
		{Tag: "ai", Count: 1},
	}, tags)
}

func TestPromptService_TopTags_DefaultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	prompts := mock.NewMockPromptRepository(ctrl)
	svc := service.NewPromptService(passthroughTx(ctrl), prompts, mock.NewMockFolderRepository(ctrl))

	var sets [][]string
	for i := 0; i < 20; i++ {
		sets = append(sets, []string{fmt.Sprintf("tag%02d", i)})
	}
	prompts.EXPECT().ListTags(gomock.Any(), int64(1)).Return(sets, nil)

	tags, err := svc.TopTags(context.Background(), 1, 0)
	require.NoError(t, err)
	require.Len(t, tags, service.DefaultTopTags)
	require.Equal(t, "tag00", tags[0].Tag)
}
