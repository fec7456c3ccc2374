package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"truyen/backend/internal/db"
	"truyen/backend/internal/model"

	_ "modernc.org/sqlite"
)

// NewTestDB creates an in-memory SQLite database and runs all migrations.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// Shared-cache mode so the in-memory database survives across
	// connections. Each test gets a unique name to avoid collisions.
	dbName := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name(), time.Now().UnixNano())
	database, err := sql.Open("sqlite", dbName)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		database.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})

	return database
}

func ptrVal[T any](p *T) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// SeedManga inserts a manga row and returns its ID.
func SeedManga(t *testing.T, db *sql.DB, manga model.Manga) string {
	t.Helper()

	if manga.ID == "" {
		manga.ID = uuid.NewString()
	}
	if manga.Title == "" {
		manga.Title = "Seed Manga"
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO manga (id, title, author, description, image_url, slug, views, rating, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		manga.ID, manga.Title, ptrVal(manga.Author), ptrVal(manga.Description),
		ptrVal(manga.ImageURL), ptrVal(manga.Slug), manga.Views, manga.Rating, now, now,
	)
	if err != nil {
		t.Fatalf("failed to seed manga: %v", err)
	}

	return manga.ID
}

// SeedChapter inserts a chapter row and returns its ID.
func SeedChapter(t *testing.T, db *sql.DB, chapter model.Chapter) string {
	t.Helper()

	if chapter.ID == "" {
		chapter.ID = uuid.NewString()
	}
	if chapter.ChapterNumber == 0 {
		chapter.ChapterNumber = 1
	}
	if chapter.Content == "" {
		chapter.Content = "seed chapter content"
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO chapters (id, manga_id, chapter_number, title, content, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		chapter.ID, chapter.MangaID, chapter.ChapterNumber, ptrVal(chapter.Title), chapter.Content, now, now,
	)
	if err != nil {
		t.Fatalf("failed to seed chapter: %v", err)
	}

	return chapter.ID
}

// SeedTag inserts a tag row and returns its ID.
func SeedTag(t *testing.T, db *sql.DB, tag model.Tag) string {
	t.Helper()

	if tag.ID == "" {
		tag.ID = uuid.NewString()
	}
	if tag.Name == "" {
		tag.Name = "seed-tag-" + tag.ID[:8]
	}
	if tag.Category == "" {
		tag.Category = "Khác"
	}
	if tag.Color == "" {
		tag.Color = "#6B7280"
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO tags (id, name, category, color, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		tag.ID, tag.Name, tag.Category, tag.Color, now, now,
	)
	if err != nil {
		t.Fatalf("failed to seed tag: %v", err)
	}

	return tag.ID
}

// SeedComment inserts a comment row and returns its ID.
func SeedComment(t *testing.T, db *sql.DB, comment model.Comment) string {
	t.Helper()

	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	if comment.Nickname == "" {
		comment.Nickname = "seed-reader"
	}
	if comment.Content == "" {
		comment.Content = "seed comment"
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO comments (id, manga_id, chapter_id, nickname, content, parent_id, is_hidden, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		comment.ID, ptrVal(comment.MangaID), ptrVal(comment.ChapterID), comment.Nickname,
		comment.Content, ptrVal(comment.ParentID), boolToInt(comment.IsHidden),
		comment.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		t.Fatalf("failed to seed comment: %v", err)
	}

	return comment.ID
}

// SeedUser inserts a user row and returns its ID.
func SeedUser(t *testing.T, db *sql.DB, user model.User) string {
	t.Helper()

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Username == "" {
		user.Username = "seed-user-" + user.ID[:8]
	}
	if user.PasswordHash == "" {
		user.PasswordHash = "x"
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO users (id, username, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		user.ID, user.Username, user.PasswordHash, now,
	)
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	return user.ID
}

// SeedRole grants a role to a user.
func SeedRole(t *testing.T, db *sql.DB, userID, role string) {
	t.Helper()

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO user_roles (user_id, role) VALUES (?, ?)`,
		userID, role,
	)
	if err != nil {
		t.Fatalf("failed to seed role: %v", err)
	}
}
