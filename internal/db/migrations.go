package db

import (
	"database/sql"
	"fmt"
)

// Base schema - uses Snowflake IDs (no AUTOINCREMENT)
const baseSchema = `
CREATE TABLE IF NOT EXISTS users (
  id INTEGER PRIMARY KEY,
  username TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS folders (
  id INTEGER PRIMARY KEY,
  owner_id INTEGER NOT NULL,
  name TEXT NOT NULL,
  parent_id INTEGER,
  sort_order INTEGER NOT NULL DEFAULT 0,
  is_system INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL,
  FOREIGN KEY (owner_id) REFERENCES users(id) ON DELETE CASCADE,
  FOREIGN KEY (parent_id) REFERENCES folders(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_folders_owner_parent ON folders(owner_id, parent_id, sort_order);

CREATE TABLE IF NOT EXISTS prompts (
  id INTEGER PRIMARY KEY,
  owner_id INTEGER NOT NULL,
  folder_id INTEGER NOT NULL,
  title TEXT NOT NULL,
  prompt TEXT NOT NULL DEFAULT '',
  tags TEXT NOT NULL DEFAULT '[]',
  is_favorite INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL,
  FOREIGN KEY (owner_id) REFERENCES users(id) ON DELETE CASCADE,
  FOREIGN KEY (folder_id) REFERENCES folders(id)
);

CREATE INDEX IF NOT EXISTS idx_prompts_owner_folder ON prompts(owner_id, folder_id);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: one system folder per owner
	if _, err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_folders_owner_system ON folders(owner_id) WHERE is_system = 1`); err != nil {
		return fmt.Errorf("create idx_folders_owner_system: %w", err)
	}

	// Migration 2: Add deleted_at column to prompts for trash retention
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM pragma_table_info('prompts') WHERE name = 'deleted_at'
	`).Scan(&count)
	if err != nil {
		return fmt.Errorf("check deleted_at column: %w", err)
	}

	if count == 0 {
		if _, err := db.Exec(`ALTER TABLE prompts ADD COLUMN deleted_at TEXT`); err != nil {
			return fmt.Errorf("add deleted_at column: %w", err)
		}
	}

	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_prompts_deleted_at ON prompts(deleted_at) WHERE deleted_at IS NOT NULL`); err != nil {
		return fmt.Errorf("create idx_prompts_deleted_at: %w", err)
	}

	// Migration 3: favorites listing
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_prompts_owner_favorite ON prompts(owner_id, is_favorite)`); err != nil {
		return fmt.Errorf("create idx_prompts_owner_favorite: %w", err)
	}

	return nil
}
