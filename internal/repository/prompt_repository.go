package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"promptcraft/backend/internal/model"
	"promptcraft/backend/internal/snowflake"
)

// PromptListFilter narrows List. A nil FolderID lists every prompt of the owner.
type PromptListFilter struct {
	FolderID      *int64
	FavoritesOnly bool
}

type PromptRepository interface {
	Create(ctx context.Context, prompt model.Prompt) (model.Prompt, error)
	GetByID(ctx context.Context, ownerID, id int64) (model.Prompt, error)
	List(ctx context.Context, ownerID int64, filter PromptListFilter) ([]model.Prompt, error)
	// ListInSubtree returns the prompts of folderID and all of its descendants
	// with a single recursive query.
	ListInSubtree(ctx context.Context, ownerID, folderID int64) ([]model.Prompt, error)
	Update(ctx context.Context, prompt model.Prompt) (model.Prompt, error)
	SetFavorite(ctx context.Context, ownerID, id int64, favorite bool) error
	// MoveToFolder reassigns one prompt. deletedAt is stored as given, so nil
	// clears it.
	MoveToFolder(ctx context.Context, ownerID, id, folderID int64, deletedAt *time.Time) error
	// ReassignFolders moves every prompt of fromFolderIDs to toFolderID and
	// stamps deletedAt. It returns the number of prompts moved.
	ReassignFolders(ctx context.Context, ownerID int64, fromFolderIDs []int64, toFolderID int64, deletedAt time.Time) (int64, error)
	Delete(ctx context.Context, ownerID, id int64) error
	// ListTags returns the tag sets of every prompt of the owner.
	ListTags(ctx context.Context, ownerID int64) ([][]string, error)
	// OwnersWithExpiredTrash lists owners holding trashed prompts deleted before cutoff.
	OwnersWithExpiredTrash(ctx context.Context, cutoff time.Time) ([]int64, error)
	// DeleteExpired permanently removes prompts of folderID deleted before cutoff.
	DeleteExpired(ctx context.Context, ownerID, folderID int64, cutoff time.Time) (int64, error)
}

type promptRepository struct {
	db *sql.DB
}

func NewPromptRepository(db *sql.DB) PromptRepository {
	return &promptRepository{db: db}
}

const promptColumns = `p.id, p.owner_id, p.folder_id, p.title, p.prompt, p.tags, p.is_favorite, p.deleted_at, p.created_at, p.updated_at`

func scanPrompt(row rowScanner) (model.Prompt, error) {
	var p model.Prompt
	var tags string
	var deletedAt sql.NullString
	var createdAt string
	var updatedAt string
	if err := row.Scan(&p.ID, &p.OwnerID, &p.FolderID, &p.Title, &p.Prompt, &tags, &p.IsFavorite, &deletedAt, &createdAt, &updatedAt); err != nil {
		return model.Prompt{}, err
	}
	p.Tags = decodeTags(tags)

	var err error
	if deletedAt.Valid && deletedAt.String != "" {
		t, err := parseTime(deletedAt.String)
		if err != nil {
			return model.Prompt{}, fmt.Errorf("parse prompt deleted_at: %w", err)
		}
		p.DeletedAt = &t
	}
	p.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return model.Prompt{}, fmt.Errorf("parse prompt created_at: %w", err)
	}
	p.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return model.Prompt{}, fmt.Errorf("parse prompt updated_at: %w", err)
	}
	return p, nil
}

func (r *promptRepository) Create(ctx context.Context, prompt model.Prompt) (model.Prompt, error) {
	tags, err := encodeTags(prompt.Tags)
	if err != nil {
		return model.Prompt{}, fmt.Errorf("encode tags: %w", err)
	}
	prompt.ID = snowflake.NextID()
	now := time.Now().UTC()
	prompt.CreatedAt = now
	prompt.UpdatedAt = now
	if prompt.Tags == nil {
		prompt.Tags = []string{}
	}

	_, err = conn(ctx, r.db).ExecContext(
		ctx,
		`INSERT INTO prompts (id, owner_id, folder_id, title, prompt, tags, is_favorite, deleted_at, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		prompt.ID,
		prompt.OwnerID,
		prompt.FolderID,
		prompt.Title,
		prompt.Prompt,
		tags,
		prompt.IsFavorite,
		nullableTime(prompt.DeletedAt),
		formatTime(now),
		formatTime(now),
	)
	if err != nil {
		return model.Prompt{}, fmt.Errorf("create prompt: %w", err)
	}
	return prompt, nil
}

func (r *promptRepository) GetByID(ctx context.Context, ownerID, id int64) (model.Prompt, error) {
	row := conn(ctx, r.db).QueryRowContext(ctx, `SELECT `+promptColumns+` FROM prompts p WHERE p.id = ? AND p.owner_id = ?`, id, ownerID)
	p, err := scanPrompt(row)
	if err != nil {
		return model.Prompt{}, fmt.Errorf("get prompt: %w", err)
	}
	return p, nil
}

func (r *promptRepository) List(ctx context.Context, ownerID int64, filter PromptListFilter) ([]model.Prompt, error) {
	query := `SELECT ` + promptColumns + ` FROM prompts p WHERE p.owner_id = ?`
	args := []interface{}{ownerID}
	if filter.FolderID != nil {
		query += ` AND p.folder_id = ?`
		args = append(args, *filter.FolderID)
	}
	if filter.FavoritesOnly {
		query += ` AND p.is_favorite = 1`
	}
	query += ` ORDER BY p.created_at, p.id`
	return r.list(ctx, query, args...)
}

func (r *promptRepository) ListInSubtree(ctx context.Context, ownerID, folderID int64) ([]model.Prompt, error) {
	return r.list(ctx, `
		WITH RECURSIVE subfolders(id) AS (
			SELECT id FROM folders WHERE id = ? AND owner_id = ?
			UNION
			SELECT f.id FROM folders f JOIN subfolders s ON f.parent_id = s.id
			WHERE f.owner_id = ?
		)
		SELECT `+promptColumns+` FROM prompts p
		JOIN subfolders sf ON p.folder_id = sf.id
		WHERE p.owner_id = ?
		ORDER BY p.created_at, p.id`, folderID, ownerID, ownerID, ownerID)
}

func (r *promptRepository) list(ctx context.Context, query string, args ...interface{}) ([]model.Prompt, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}
	defer rows.Close()

	prompts := []model.Prompt{}
	for rows.Next() {
		p, err := scanPrompt(rows)
		if err != nil {
			return nil, fmt.Errorf("scan prompt: %w", err)
		}
		prompts = append(prompts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate prompts: %w", err)
	}
	return prompts, nil
}

func (r *promptRepository) Update(ctx context.Context, prompt model.Prompt) (model.Prompt, error) {
	tags, err := encodeTags(prompt.Tags)
	if err != nil {
		return model.Prompt{}, fmt.Errorf("encode tags: %w", err)
	}
	res, err := conn(ctx, r.db).ExecContext(
		ctx,
		`UPDATE prompts SET title = ?, prompt = ?, tags = ?, folder_id = ?, deleted_at = ?, updated_at = ? WHERE id = ? AND owner_id = ?`,
		prompt.Title,
		prompt.Prompt,
		tags,
		prompt.FolderID,
		nullableTime(prompt.DeletedAt),
		formatTime(time.Now()),
		prompt.ID,
		prompt.OwnerID,
	)
	if err != nil {
		return model.Prompt{}, fmt.Errorf("update prompt: %w", err)
	}
	if err := requireAffected(res, "update prompt"); err != nil {
		return model.Prompt{}, err
	}
	return r.GetByID(ctx, prompt.OwnerID, prompt.ID)
}

func (r *promptRepository) SetFavorite(ctx context.Context, ownerID, id int64, favorite bool) error {
	res, err := conn(ctx, r.db).ExecContext(
		ctx,
		`UPDATE prompts SET is_favorite = ?, updated_at = ? WHERE id = ? AND owner_id = ?`,
		favorite,
		formatTime(time.Now()),
		id,
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("set prompt favorite: %w", err)
	}
	return requireAffected(res, "set prompt favorite")
}

func (r *promptRepository) MoveToFolder(ctx context.Context, ownerID, id, folderID int64, deletedAt *time.Time) error {
	res, err := conn(ctx, r.db).ExecContext(
		ctx,
		`UPDATE prompts SET folder_id = ?, deleted_at = ?, updated_at = ? WHERE id = ? AND owner_id = ?`,
		folderID,
		nullableTime(deletedAt),
		formatTime(time.Now()),
		id,
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("move prompt: %w", err)
	}
	return requireAffected(res, "move prompt")
}

func (r *promptRepository) ReassignFolders(ctx context.Context, ownerID int64, fromFolderIDs []int64, toFolderID int64, deletedAt time.Time) (int64, error) {
	if len(fromFolderIDs) == 0 {
		return 0, nil
	}
	placeholders, inArgs := inClause(fromFolderIDs)
	args := []interface{}{toFolderID, formatTime(deletedAt), formatTime(time.Now()), ownerID}
	args = append(args, inArgs...)

	res, err := conn(ctx, r.db).ExecContext(
		ctx,
		`UPDATE prompts SET folder_id = ?, deleted_at = ?, updated_at = ? WHERE owner_id = ? AND folder_id IN (`+placeholders+`)`,
		args...,
	)
	if err != nil {
		return 0, fmt.Errorf("reassign prompts: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reassign prompts: %w", err)
	}
	return n, nil
}

func (r *promptRepository) Delete(ctx context.Context, ownerID, id int64) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM prompts WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete prompt: %w", err)
	}
	return requireAffected(res, "delete prompt")
}

func (r *promptRepository) ListTags(ctx context.Context, ownerID int64) ([][]string, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, `SELECT tags FROM prompts WHERE owner_id = ?`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	var sets [][]string
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan tags: %w", err)
		}
		sets = append(sets, decodeTags(raw))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tags: %w", err)
	}
	return sets, nil
}

func (r *promptRepository) OwnersWithExpiredTrash(ctx context.Context, cutoff time.Time) ([]int64, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, `
		SELECT DISTINCT p.owner_id FROM prompts p
		JOIN folders f ON f.id = p.folder_id AND f.is_system = 1
		WHERE p.deleted_at IS NOT NULL AND p.deleted_at < ?
		ORDER BY p.owner_id`, formatTime(cutoff))
	if err != nil {
		return nil, fmt.Errorf("list owners with expired trash: %w", err)
	}
	defer rows.Close()

	var owners []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan owner id: %w", err)
		}
		owners = append(owners, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate owner ids: %w", err)
	}
	return owners, nil
}

func (r *promptRepository) DeleteExpired(ctx context.Context, ownerID, folderID int64, cutoff time.Time) (int64, error) {
	res, err := conn(ctx, r.db).ExecContext(
		ctx,
		`DELETE FROM prompts WHERE owner_id = ? AND folder_id = ? AND deleted_at IS NOT NULL AND deleted_at < ?`,
		ownerID,
		folderID,
		formatTime(cutoff),
	)
	if err != nil {
		return 0, fmt.Errorf("delete expired prompts: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete expired prompts: %w", err)
	}
	return n, nil
}
