package db

import (
	"database/sql"
	"fmt"
)

// Base schema - all ids are UUID strings, timestamps RFC3339 text.
const baseSchema = `
CREATE TABLE IF NOT EXISTS manga (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  author TEXT,
  description TEXT,
  image_url TEXT,
  views INTEGER NOT NULL DEFAULT 0,
  rating REAL NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS chapters (
  id TEXT PRIMARY KEY,
  manga_id TEXT NOT NULL,
  chapter_number INTEGER NOT NULL,
  title TEXT,
  content TEXT NOT NULL,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL,
  FOREIGN KEY (manga_id) REFERENCES manga(id) ON DELETE CASCADE
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_chapters_manga_number ON chapters(manga_id, chapter_number);

CREATE TABLE IF NOT EXISTS tags (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL UNIQUE,
  category TEXT NOT NULL DEFAULT 'Khác',
  color TEXT NOT NULL DEFAULT '#6B7280',
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS manga_tags (
  manga_id TEXT NOT NULL,
  tag_id TEXT NOT NULL,
  PRIMARY KEY (manga_id, tag_id),
  FOREIGN KEY (manga_id) REFERENCES manga(id) ON DELETE CASCADE,
  FOREIGN KEY (tag_id) REFERENCES tags(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS comments (
  id TEXT PRIMARY KEY,
  manga_id TEXT,
  chapter_id TEXT,
  nickname TEXT NOT NULL,
  content TEXT NOT NULL,
  parent_id TEXT,
  is_hidden INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL,
  FOREIGN KEY (manga_id) REFERENCES manga(id) ON DELETE CASCADE,
  FOREIGN KEY (chapter_id) REFERENCES chapters(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  username TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS user_roles (
  user_id TEXT NOT NULL,
  role TEXT NOT NULL,
  PRIMARY KEY (user_id, role),
  FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);
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
	// Migration 1: Add slug column to manga for SEO-friendly URLs
	exists, err := hasColumn(db, "manga", "slug")
	if err != nil {
		return fmt.Errorf("check slug column: %w", err)
	}
	if !exists {
		if _, err := db.Exec(`ALTER TABLE manga ADD COLUMN slug TEXT`); err != nil {
			return fmt.Errorf("add slug column: %w", err)
		}
	}
	if _, err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_manga_slug ON manga(slug) WHERE slug IS NOT NULL`); err != nil {
		return fmt.Errorf("create idx_manga_slug: %w", err)
	}

	// Migration 2: Comment listing indexes (queries order by created_at desc per target)
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_comments_manga_created ON comments(manga_id, created_at)`); err != nil {
		return fmt.Errorf("create idx_comments_manga_created: %w", err)
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_comments_chapter_created ON comments(chapter_id, created_at)`); err != nil {
		return fmt.Errorf("create idx_comments_chapter_created: %w", err)
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_comments_parent ON comments(parent_id)`); err != nil {
		return fmt.Errorf("create idx_comments_parent: %w", err)
	}

	// Migration 3: Index for listing manga newest-first
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_manga_created ON manga(created_at)`); err != nil {
		return fmt.Errorf("create idx_manga_created: %w", err)
	}

	return nil
}

func hasColumn(db *sql.DB, table string, column string) (bool, error) {
	var count int
	if err := db.QueryRow(
		fmt.Sprintf(`SELECT COUNT(*) FROM pragma_table_info('%s') WHERE name = ?`, table),
		column,
	).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
