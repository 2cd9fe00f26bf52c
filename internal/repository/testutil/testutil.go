// Package testutil builds throwaway SQLite databases for repository and
// service tests.
package testutil

import (
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"promptcraft/backend/internal/db"
	"promptcraft/backend/internal/model"
	"promptcraft/backend/internal/snowflake"
)

const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// NewTestDB opens a migrated database in a per-test temp dir. A file is used
// rather than :memory: so every pooled connection sees the same data.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func now() string {
	return time.Now().UTC().Format(timeLayout)
}

// SeedUser inserts a user without a Trash folder.
func SeedUser(t *testing.T, database *sql.DB, username string) int64 {
	t.Helper()
	id := snowflake.NextID()
	_, err := database.Exec(
		`INSERT INTO users (id, username, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		id, username, "x", now(),
	)
	require.NoError(t, err)
	return id
}

// SeedOwner inserts a user together with its Trash folder and returns both ids.
func SeedOwner(t *testing.T, database *sql.DB, username string) (ownerID, trashID int64) {
	t.Helper()
	ownerID = SeedUser(t, database, username)
	trashID = snowflake.NextID()
	_, err := database.Exec(
		`INSERT INTO folders (id, owner_id, name, parent_id, sort_order, is_system, created_at, updated_at) VALUES (?, ?, ?, NULL, ?, 1, ?, ?)`,
		trashID, ownerID, model.TrashFolderName, model.TrashSortOrder, now(), now(),
	)
	require.NoError(t, err)
	return ownerID, trashID
}

func SeedFolder(t *testing.T, database *sql.DB, ownerID int64, name string, parentID *int64, sortOrder int) int64 {
	t.Helper()
	id := snowflake.NextID()
	var parent interface{}
	if parentID != nil {
		parent = *parentID
	}
	_, err := database.Exec(
		`INSERT INTO folders (id, owner_id, name, parent_id, sort_order, is_system, created_at, updated_at) VALUES (?, ?, ?, ?, ?, 0, ?, ?)`,
		id, ownerID, name, parent, sortOrder, now(), now(),
	)
	require.NoError(t, err)
	return id
}

func SeedPrompt(t *testing.T, database *sql.DB, p model.Prompt) int64 {
	t.Helper()
	id := snowflake.NextID()
	if p.Tags == nil {
		p.Tags = []string{}
	}
	tags, err := json.Marshal(p.Tags)
	require.NoError(t, err)
	if p.Title == "" {
		p.Title = "Untitled"
	}
	var deletedAt interface{}
	if p.DeletedAt != nil {
		deletedAt = p.DeletedAt.UTC().Format(timeLayout)
	}
	_, err = database.Exec(
		`INSERT INTO prompts (id, owner_id, folder_id, title, prompt, tags, is_favorite, deleted_at, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, p.OwnerID, p.FolderID, p.Title, p.Prompt, string(tags), p.IsFavorite, deletedAt, now(), now(),
	)
	require.NoError(t, err)
	return id
}

// FolderParent reads parent_id and sort_order straight from the table.
func FolderParent(t *testing.T, database *sql.DB, id int64) (*int64, int) {
	t.Helper()
	var parent sql.NullInt64
	var sortOrder int
	require.NoError(t, database.QueryRow(`SELECT parent_id, sort_order FROM folders WHERE id = ?`, id).Scan(&parent, &sortOrder))
	if !parent.Valid {
		return nil, sortOrder
	}
	p := parent.Int64
	return &p, sortOrder
}

// PromptFolder reads folder_id straight from the table.
func PromptFolder(t *testing.T, database *sql.DB, id int64) int64 {
	t.Helper()
	var folderID int64
	require.NoError(t, database.QueryRow(`SELECT folder_id FROM prompts WHERE id = ?`, id).Scan(&folderID))
	return folderID
}

// CountFolders counts rows with the given id.
func CountFolders(t *testing.T, database *sql.DB, id int64) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM folders WHERE id = ?`, id).Scan(&n))
	return n
}

func Int64Ptr(v int64) *int64 {
	return &v
}
