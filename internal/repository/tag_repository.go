//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"truyen/backend/internal/model"
)

// TagRepository defines the interface for tag storage.
type TagRepository interface {
	Create(ctx context.Context, tag model.Tag) (model.Tag, error)
	GetByID(ctx context.Context, id string) (model.Tag, error)
	GetByName(ctx context.Context, name string) (model.Tag, error)
	List(ctx context.Context) ([]model.Tag, error)
	ListByManga(ctx context.Context, mangaID string) ([]model.Tag, error)
	Update(ctx context.Context, tag model.Tag) (model.Tag, error)
	Delete(ctx context.Context, id string) error
}

type tagRepository struct {
	db *sql.DB
}

// NewTagRepository creates a new tag repository.
func NewTagRepository(db *sql.DB) TagRepository {
	return &tagRepository{db: db}
}

const tagColumns = `id, name, category, color, created_at, updated_at`

func (r *tagRepository) Create(ctx context.Context, tag model.Tag) (model.Tag, error) {
	tag.ID = uuid.NewString()
	now := time.Now().UTC()
	tag.CreatedAt = now
	tag.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tags (id, name, category, color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, tag.ID, tag.Name, tag.Category, tag.Color, formatTime(now), formatTime(now))
	if err != nil {
		return model.Tag{}, err
	}

	return tag, nil
}

func (r *tagRepository) GetByID(ctx context.Context, id string) (model.Tag, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+tagColumns+` FROM tags WHERE id = ?
	`, id)
	return scanTag(row)
}

func (r *tagRepository) GetByName(ctx context.Context, name string) (model.Tag, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+tagColumns+` FROM tags WHERE name = ?
	`, name)
	return scanTag(row)
}

func (r *tagRepository) List(ctx context.Context) ([]model.Tag, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+tagColumns+` FROM tags ORDER BY category ASC, name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTags(rows)
}

func (r *tagRepository) ListByManga(ctx context.Context, mangaID string) ([]model.Tag, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT t.id, t.name, t.category, t.color, t.created_at, t.updated_at
		FROM tags t
		JOIN manga_tags mt ON mt.tag_id = t.id
		WHERE mt.manga_id = ?
		ORDER BY t.category ASC, t.name ASC
	`, mangaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTags(rows)
}

func (r *tagRepository) Update(ctx context.Context, tag model.Tag) (model.Tag, error) {
	tag.UpdatedAt = time.Now().UTC()

	result, err := r.db.ExecContext(ctx, `
		UPDATE tags SET name = ?, category = ?, color = ?, updated_at = ? WHERE id = ?
	`, tag.Name, tag.Category, tag.Color, formatTime(tag.UpdatedAt), tag.ID)
	if err != nil {
		return model.Tag{}, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return model.Tag{}, err
	}
	if rows == 0 {
		return model.Tag{}, sql.ErrNoRows
	}

	return r.GetByID(ctx, tag.ID)
}

func (r *tagRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tags WHERE id = ?`, id)
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

func collectTags(rows *sql.Rows) ([]model.Tag, error) {
	var tags []model.Tag
	for rows.Next() {
		tag, err := scanTag(rows)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

func scanTag(row rowScanner) (model.Tag, error) {
	var t model.Tag
	var createdAt, updatedAt string

	if err := row.Scan(&t.ID, &t.Name, &t.Category, &t.Color, &createdAt, &updatedAt); err != nil {
		return model.Tag{}, err
	}

	t.CreatedAt, _ = parseTime(createdAt)
	t.UpdatedAt, _ = parseTime(updatedAt)
	return t, nil
}
