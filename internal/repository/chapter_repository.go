//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"truyen/backend/internal/model"
)

// ChapterRepository defines the interface for chapter storage.
type ChapterRepository interface {
	Create(ctx context.Context, chapter model.Chapter) (model.Chapter, error)
	GetByID(ctx context.Context, id string) (model.Chapter, error)
	ListByManga(ctx context.Context, mangaID string) ([]model.Chapter, error)
	CountsByManga(ctx context.Context) (map[string]int, error)
	Update(ctx context.Context, chapter model.Chapter) (model.Chapter, error)
	Delete(ctx context.Context, id string) error
}

type chapterRepository struct {
	db *sql.DB
}

// NewChapterRepository creates a new chapter repository.
func NewChapterRepository(db *sql.DB) ChapterRepository {
	return &chapterRepository{db: db}
}

const chapterColumns = `id, manga_id, chapter_number, title, content, created_at, updated_at`

func (r *chapterRepository) Create(ctx context.Context, chapter model.Chapter) (model.Chapter, error) {
	chapter.ID = uuid.NewString()
	now := time.Now().UTC()
	chapter.CreatedAt = now
	chapter.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO chapters (id, manga_id, chapter_number, title, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, chapter.ID, chapter.MangaID, chapter.ChapterNumber, nullableString(chapter.Title),
		chapter.Content, formatTime(now), formatTime(now))
	if err != nil {
		return model.Chapter{}, err
	}

	return chapter, nil
}

func (r *chapterRepository) GetByID(ctx context.Context, id string) (model.Chapter, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+chapterColumns+` FROM chapters WHERE id = ?
	`, id)
	return scanChapter(row)
}

// ListByManga returns a manga's chapters in reading order.
func (r *chapterRepository) ListByManga(ctx context.Context, mangaID string) ([]model.Chapter, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+chapterColumns+` FROM chapters WHERE manga_id = ? ORDER BY chapter_number ASC
	`, mangaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chapters []model.Chapter
	for rows.Next() {
		chapter, err := scanChapter(rows)
		if err != nil {
			return nil, err
		}
		chapters = append(chapters, chapter)
	}
	return chapters, rows.Err()
}

// CountsByManga returns the chapter count per manga id in one query.
func (r *chapterRepository) CountsByManga(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT manga_id, COUNT(*) FROM chapters GROUP BY manga_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var mangaID string
		var count int
		if err := rows.Scan(&mangaID, &count); err != nil {
			return nil, err
		}
		counts[mangaID] = count
	}
	return counts, rows.Err()
}

func (r *chapterRepository) Update(ctx context.Context, chapter model.Chapter) (model.Chapter, error) {
	chapter.UpdatedAt = time.Now().UTC()

	result, err := r.db.ExecContext(ctx, `
		UPDATE chapters SET chapter_number = ?, title = ?, content = ?, updated_at = ? WHERE id = ?
	`, chapter.ChapterNumber, nullableString(chapter.Title), chapter.Content,
		formatTime(chapter.UpdatedAt), chapter.ID)
	if err != nil {
		return model.Chapter{}, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return model.Chapter{}, err
	}
	if rows == 0 {
		return model.Chapter{}, sql.ErrNoRows
	}

	return r.GetByID(ctx, chapter.ID)
}

func (r *chapterRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM chapters WHERE id = ?`, id)
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

func scanChapter(row rowScanner) (model.Chapter, error) {
	var c model.Chapter
	var title sql.NullString
	var createdAt, updatedAt string

	if err := row.Scan(&c.ID, &c.MangaID, &c.ChapterNumber, &title, &c.Content, &createdAt, &updatedAt); err != nil {
		return model.Chapter{}, err
	}

	c.Title = stringPtr(title)
	c.CreatedAt, _ = parseTime(createdAt)
	c.UpdatedAt, _ = parseTime(updatedAt)
	return c, nil
}
