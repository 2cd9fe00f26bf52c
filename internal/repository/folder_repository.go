package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"promptcraft/backend/internal/model"
	"promptcraft/backend/internal/snowflake"
)

// FolderRepository persists folders. Every method is scoped to an owner; a
// folder of another owner behaves exactly like a missing one (sql.ErrNoRows).
type FolderRepository interface {
	Create(ctx context.Context, folder model.Folder) (model.Folder, error)
	GetByID(ctx context.Context, ownerID, id int64) (model.Folder, error)
	GetSystem(ctx context.Context, ownerID int64) (model.Folder, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Folder, error)
	// MaxSortOrder returns the largest sort_order among the children of
	// parentID, and false when there are none.
	MaxSortOrder(ctx context.Context, ownerID int64, parentID *int64) (int, bool, error)
	// Neighbor returns the nearest non-system sibling strictly before (or
	// after) folder by sort_order, or nil when folder is at that edge.
	Neighbor(ctx context.Context, folder model.Folder, before bool) (*model.Folder, error)
	// SubtreeIDs returns folderID and every folder below it using a recursive query.
	SubtreeIDs(ctx context.Context, ownerID, folderID int64) ([]int64, error)
	UpdateName(ctx context.Context, ownerID, id int64, name string) error
	UpdateParent(ctx context.Context, ownerID, id int64, parentID *int64, sortOrder int) error
	UpdateSortOrder(ctx context.Context, ownerID, id int64, sortOrder int) error
	DeleteMany(ctx context.Context, ownerID int64, ids []int64) (int64, error)
}

type folderRepository struct {
	db *sql.DB
}

func NewFolderRepository(db *sql.DB) FolderRepository {
	return &folderRepository{db: db}
}

const folderColumns = `id, owner_id, name, parent_id, sort_order, is_system, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFolder(row rowScanner) (model.Folder, error) {
	var folder model.Folder
	var parentID sql.NullInt64
	var createdAt string
	var updatedAt string
	if err := row.Scan(&folder.ID, &folder.OwnerID, &folder.Name, &parentID, &folder.SortOrder, &folder.IsSystem, &createdAt, &updatedAt); err != nil {
		return model.Folder{}, err
	}
	folder.ParentID = int64Ptr(parentID)

	var err error
	folder.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return model.Folder{}, fmt.Errorf("parse folder created_at: %w", err)
	}
	folder.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return model.Folder{}, fmt.Errorf("parse folder updated_at: %w", err)
	}
	return folder, nil
}

func (r *folderRepository) Create(ctx context.Context, folder model.Folder) (model.Folder, error) {
	folder.ID = snowflake.NextID()
	now := time.Now().UTC()
	folder.CreatedAt = now
	folder.UpdatedAt = now

	_, err := conn(ctx, r.db).ExecContext(
		ctx,
		`INSERT INTO folders (id, owner_id, name, parent_id, sort_order, is_system, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		folder.ID,
		folder.OwnerID,
		folder.Name,
		nullableInt64(folder.ParentID),
		folder.SortOrder,
		folder.IsSystem,
		formatTime(now),
		formatTime(now),
	)
	if err != nil {
		return model.Folder{}, fmt.Errorf("create folder: %w", err)
	}

	return folder, nil
}

func (r *folderRepository) GetByID(ctx context.Context, ownerID, id int64) (model.Folder, error) {
	row := conn(ctx, r.db).QueryRowContext(ctx, `SELECT `+folderColumns+` FROM folders WHERE id = ? AND owner_id = ?`, id, ownerID)
	folder, err := scanFolder(row)
	if err != nil {
		return model.Folder{}, fmt.Errorf("get folder: %w", err)
	}
	return folder, nil
}

func (r *folderRepository) GetSystem(ctx context.Context, ownerID int64) (model.Folder, error) {
	row := conn(ctx, r.db).QueryRowContext(ctx, `SELECT `+folderColumns+` FROM folders WHERE owner_id = ? AND is_system = 1`, ownerID)
	folder, err := scanFolder(row)
	if err != nil {
		return model.Folder{}, fmt.Errorf("get system folder: %w", err)
	}
	return folder, nil
}

func (r *folderRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Folder, error) {
	return r.list(ctx, `SELECT `+folderColumns+` FROM folders WHERE owner_id = ? ORDER BY sort_order, id`, ownerID)
}

func (r *folderRepository) list(ctx context.Context, query string, args ...interface{}) ([]model.Folder, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	defer rows.Close()

	var folders []model.Folder
	for rows.Next() {
		folder, err := scanFolder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folders = append(folders, folder)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate folders: %w", err)
	}

	return folders, nil
}

func (r *folderRepository) MaxSortOrder(ctx context.Context, ownerID int64, parentID *int64) (int, bool, error) {
	clause, args := parentClause(parentID)
	args = append([]interface{}{ownerID}, args...)

	var maxOrder sql.NullInt64
	err := conn(ctx, r.db).QueryRowContext(ctx, `SELECT MAX(sort_order) FROM folders WHERE owner_id = ? AND `+clause, args...).Scan(&maxOrder)
	if err != nil {
		return 0, false, fmt.Errorf("max sort order: %w", err)
	}
	if !maxOrder.Valid {
		return 0, false, nil
	}
	return int(maxOrder.Int64), true, nil
}

func (r *folderRepository) Neighbor(ctx context.Context, folder model.Folder, before bool) (*model.Folder, error) {
	clause, parentArgs := parentClause(folder.ParentID)
	cmp, order := ">", "ASC"
	if before {
		cmp, order = "<", "DESC"
	}

	query := `SELECT ` + folderColumns + ` FROM folders
		WHERE owner_id = ? AND ` + clause + ` AND is_system = 0 AND sort_order ` + cmp + ` ?
		ORDER BY sort_order ` + order + `, id ` + order + ` LIMIT 1`
	args := append([]interface{}{folder.OwnerID}, parentArgs...)
	args = append(args, folder.SortOrder)

	neighbor, err := scanFolder(conn(ctx, r.db).QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find neighbor folder: %w", err)
	}
	return &neighbor, nil
}

func (r *folderRepository) SubtreeIDs(ctx context.Context, ownerID, folderID int64) ([]int64, error) {
	// UNION (not UNION ALL) stops the recursion even if a cycle slipped in.
	rows, err := conn(ctx, r.db).QueryContext(ctx, `
		WITH RECURSIVE subfolders(id) AS (
			SELECT id FROM folders WHERE id = ? AND owner_id = ?
			UNION
			SELECT f.id FROM folders f JOIN subfolders s ON f.parent_id = s.id
			WHERE f.owner_id = ?
		)
		SELECT id FROM subfolders`, folderID, ownerID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list subtree ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan subtree id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subtree ids: %w", err)
	}
	return ids, nil
}

func (r *folderRepository) UpdateName(ctx context.Context, ownerID, id int64, name string) error {
	res, err := conn(ctx, r.db).ExecContext(
		ctx,
		`UPDATE folders SET name = ?, updated_at = ? WHERE id = ? AND owner_id = ?`,
		name,
		formatTime(time.Now()),
		id,
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("update folder name: %w", err)
	}
	return requireAffected(res, "update folder name")
}

func (r *folderRepository) UpdateParent(ctx context.Context, ownerID, id int64, parentID *int64, sortOrder int) error {
	res, err := conn(ctx, r.db).ExecContext(
		ctx,
		`UPDATE folders SET parent_id = ?, sort_order = ?, updated_at = ? WHERE id = ? AND owner_id = ?`,
		nullableInt64(parentID),
		sortOrder,
		formatTime(time.Now()),
		id,
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("update folder parent: %w", err)
	}
	return requireAffected(res, "update folder parent")
}

func (r *folderRepository) UpdateSortOrder(ctx context.Context, ownerID, id int64, sortOrder int) error {
	res, err := conn(ctx, r.db).ExecContext(
		ctx,
		`UPDATE folders SET sort_order = ?, updated_at = ? WHERE id = ? AND owner_id = ?`,
		sortOrder,
		formatTime(time.Now()),
		id,
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("update folder sort order: %w", err)
	}
	return requireAffected(res, "update folder sort order")
}

func (r *folderRepository) DeleteMany(ctx context.Context, ownerID int64, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	placeholders, args := inClause(ids)
	args = append(args, ownerID)
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM folders WHERE id IN (`+placeholders+`) AND owner_id = ? AND is_system = 0`, args...)
	if err != nil {
		return 0, fmt.Errorf("delete folders: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete folders: %w", err)
	}
	return n, nil
}

// requireAffected maps an update that touched nothing to sql.ErrNoRows.
func requireAffected(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, sql.ErrNoRows)
	}
	return nil
}
