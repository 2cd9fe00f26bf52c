package service_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"promptcraft/backend/internal/model"
	"promptcraft/backend/internal/repository"
	"promptcraft/backend/internal/repository/testutil"
	"promptcraft/backend/internal/service"
)

// harness wires the folder engine against a throwaway database.
type harness struct {
	db      *sql.DB
	folders repository.FolderRepository
	prompts repository.PromptRepository
	tx      repository.TxManager
	trash   service.TrashService
	subtree service.SubtreeService
	engine  service.FolderService
	scoper  *service.Scoper
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	db := testutil.NewTestDB(t)
	folders := repository.NewFolderRepository(db)
	prompts := repository.NewPromptRepository(db)
	tx := repository.NewTxManager(db)
	trash := service.NewTrashService(folders, prompts)
	subtree := service.NewSubtreeService(folders, prompts)
	engine := service.NewFolderService(tx, folders, prompts, trash, subtree)
	return &harness{
		db:      db,
		folders: folders,
		prompts: prompts,
		tx:      tx,
		trash:   trash,
		subtree: subtree,
		engine:  engine,
		scoper:  service.NewScoper(engine, trash, subtree),
	}
}

// owner seeds a user with Trash and returns its workspace and Trash id.
func (h *harness) owner(t *testing.T, username string) (*service.Workspace, int64) {
	t.Helper()
	ownerID, trashID := testutil.SeedOwner(t, h.db, username)
	ws, err := h.scoper.For(ownerID)
	require.NoError(t, err)
	return ws, trashID
}

func (h *harness) mustCreate(t *testing.T, ws *service.Workspace, name string, parentID *int64) model.Folder {
	t.Helper()
	folder, err := ws.CreateFolder(context.Background(), name, parentID)
	require.NoError(t, err)
	return folder
}

func (h *harness) folder(t *testing.T, ws *service.Workspace, id int64) model.Folder {
	t.Helper()
	folder, err := h.folders.GetByID(context.Background(), ws.OwnerID(), id)
	require.NoError(t, err)
	return folder
}

// requireDistinctSortOrders checks every sibling group of the owner.
func (h *harness) requireDistinctSortOrders(t *testing.T, ownerID int64) {
	t.Helper()
	folders, err := h.folders.ListByOwner(context.Background(), ownerID)
	require.NoError(t, err)

	type group struct {
		root   bool
		parent int64
	}
	seen := map[group]map[int]int64{}
	for _, f := range folders {
		g := group{root: f.ParentID == nil}
		if f.ParentID != nil {
			g.parent = *f.ParentID
		}
		if seen[g] == nil {
			seen[g] = map[int]int64{}
		}
		other, dup := seen[g][f.SortOrder]
		require.Falsef(t, dup, "folders %d and %d share sort_order %d", other, f.ID, f.SortOrder)
		seen[g][f.SortOrder] = f.ID
	}
}

func treeNames(nodes []*model.FolderNode) []string {
	names := make([]string, 0, len(nodes))
	for _, n := range nodes {
		names = append(names, n.Name)
	}
	return names
}
