//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"truyen/backend/internal/model"
)

// MangaRepository defines the interface for manga storage.
type MangaRepository interface {
	Create(ctx context.Context, manga model.Manga) (model.Manga, error)
	GetByID(ctx context.Context, id string) (model.Manga, error)
	List(ctx context.Context) ([]model.Manga, error)
	Update(ctx context.Context, manga model.Manga) (model.Manga, error)
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
	SetTags(ctx context.Context, mangaID string, tagIDs []string) error
}

type mangaRepository struct {
	db *sql.DB
}

// NewMangaRepository creates a new manga repository.
func NewMangaRepository(db *sql.DB) MangaRepository {
	return &mangaRepository{db: db}
}

const mangaColumns = `id, title, author, description, image_url, slug, views, rating, created_at, updated_at`

func (r *mangaRepository) Create(ctx context.Context, manga model.Manga) (model.Manga, error) {
	manga.ID = uuid.NewString()
	now := time.Now().UTC()
	manga.CreatedAt = now
	manga.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO manga (id, title, author, description, image_url, slug, views, rating, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, manga.ID, manga.Title, nullableString(manga.Author), nullableString(manga.Description),
		nullableString(manga.ImageURL), nullableString(manga.Slug), manga.Views, manga.Rating,
		formatTime(now), formatTime(now))
	if err != nil {
		return model.Manga{}, err
	}

	return manga, nil
}

func (r *mangaRepository) GetByID(ctx context.Context, id string) (model.Manga, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+mangaColumns+` FROM manga WHERE id = ?
	`, id)
	return scanManga(row)
}

// List returns all manga, newest first.
func (r *mangaRepository) List(ctx context.Context) ([]model.Manga, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+mangaColumns+` FROM manga ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mangas []model.Manga
	for rows.Next() {
		manga, err := scanManga(rows)
		if err != nil {
			return nil, err
		}
		mangas = append(mangas, manga)
	}
	return mangas, rows.Err()
}

func (r *mangaRepository) Update(ctx context.Context, manga model.Manga) (model.Manga, error) {
	manga.UpdatedAt = time.Now().UTC()

	result, err := r.db.ExecContext(ctx, `
		UPDATE manga SET title = ?, author = ?, description = ?, image_url = ?, slug = ?, rating = ?, updated_at = ?
		WHERE id = ?
	`, manga.Title, nullableString(manga.Author), nullableString(manga.Description),
		nullableString(manga.ImageURL), nullableString(manga.Slug), manga.Rating,
		formatTime(manga.UpdatedAt), manga.ID)
	if err != nil {
		return model.Manga{}, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return model.Manga{}, err
	}
	if rows == 0 {
		return model.Manga{}, sql.ErrNoRows
	}

	return r.GetByID(ctx, manga.ID)
}

func (r *mangaRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM manga WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// IncrementViews bumps the view counter in a single statement. The counter
// is never read-then-written from the application layer, so concurrent
// increments cannot lose updates.
func (r *mangaRepository) IncrementViews(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE manga SET views = views + 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SetTags replaces the manga's tag associations with the given set.
func (r *mangaRepository) SetTags(ctx context.Context, mangaID string, tagIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM manga_tags WHERE manga_id = ?`, mangaID); err != nil {
		return err
	}

	if len(tagIDs) > 0 {
		values := make([]string, 0, len(tagIDs))
		args := make([]interface{}, 0, len(tagIDs)*2)
		for _, tagID := range tagIDs {
			values = append(values, "(?, ?)")
			args = append(args, mangaID, tagID)
		}
		query := `INSERT INTO manga_tags (manga_id, tag_id) VALUES ` + strings.Join(values, ", ")
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func scanManga(row rowScanner) (model.Manga, error) {
	var m model.Manga
	var author, description, imageURL, slug sql.NullString
	var createdAt, updatedAt string

	if err := row.Scan(&m.ID, &m.Title, &author, &description, &imageURL, &slug,
		&m.Views, &m.Rating, &createdAt, &updatedAt); err != nil {
		return model.Manga{}, err
	}

	m.Author = stringPtr(author)
	m.Description = stringPtr(description)
	m.ImageURL = stringPtr(imageURL)
	m.Slug = stringPtr(slug)
	m.CreatedAt, _ = parseTime(createdAt)
	m.UpdatedAt, _ = parseTime(updatedAt)
	return m, nil
}
