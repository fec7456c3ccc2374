//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"truyen/backend/internal/model"
)

// CommentRepository defines the interface for comment storage.
type CommentRepository interface {
	Create(ctx context.Context, comment model.Comment) (model.Comment, error)
	GetByID(ctx context.Context, id string) (model.Comment, error)
	ListByManga(ctx context.Context, mangaID string) ([]model.Comment, error)
	ListByChapter(ctx context.Context, chapterID string) ([]model.Comment, error)
	SetHidden(ctx context.Context, id string, hidden bool) error
	Delete(ctx context.Context, id string) error
}

type commentRepository struct {
	db *sql.DB
}

// NewCommentRepository creates a new comment repository.
func NewCommentRepository(db *sql.DB) CommentRepository {
	return &commentRepository{db: db}
}

const commentColumns = `id, manga_id, chapter_id, nickname, content, parent_id, is_hidden, created_at`

// Create persists a new comment, assigning its id and creation time.
func (r *commentRepository) Create(ctx context.Context, comment model.Comment) (model.Comment, error) {
	comment.ID = uuid.NewString()
	comment.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO comments (id, manga_id, chapter_id, nickname, content, parent_id, is_hidden, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, comment.ID, nullableString(comment.MangaID), nullableString(comment.ChapterID),
		comment.Nickname, comment.Content, nullableString(comment.ParentID),
		boolToInt(comment.IsHidden), formatTime(comment.CreatedAt))
	if err != nil {
		return model.Comment{}, err
	}

	return comment, nil
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (model.Comment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+commentColumns+` FROM comments WHERE id = ?
	`, id)
	return scanComment(row)
}

// ListByManga returns all comments for a manga, newest first.
func (r *commentRepository) ListByManga(ctx context.Context, mangaID string) ([]model.Comment, error) {
	return r.list(ctx, `
		SELECT `+commentColumns+` FROM comments WHERE manga_id = ? ORDER BY created_at DESC
	`, mangaID)
}

// ListByChapter returns all comments for a chapter, newest first.
func (r *commentRepository) ListByChapter(ctx context.Context, chapterID string) ([]model.Comment, error) {
	return r.list(ctx, `
		SELECT `+commentColumns+` FROM comments WHERE chapter_id = ? ORDER BY created_at DESC
	`, chapterID)
}

// SetHidden toggles a comment's moderation flag.
func (r *commentRepository) SetHidden(ctx context.Context, id string, hidden bool) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE comments SET is_hidden = ? WHERE id = ?
	`, boolToInt(hidden), id)
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

// Delete removes a comment outright. Replies keep their parent_id; the
// dangling reference is accepted behavior, not repaired here.
func (r *commentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id)
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

func (r *commentRepository) list(ctx context.Context, query string, arg interface{}) ([]model.Comment, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanComment(row rowScanner) (model.Comment, error) {
	var c model.Comment
	var mangaID, chapterID, parentID sql.NullString
	var hidden int
	var createdAt string

	if err := row.Scan(&c.ID, &mangaID, &chapterID, &c.Nickname, &c.Content, &parentID, &hidden, &createdAt); err != nil {
		return model.Comment{}, err
	}

	c.MangaID = stringPtr(mangaID)
	c.ChapterID = stringPtr(chapterID)
	c.ParentID = stringPtr(parentID)
	c.IsHidden = hidden != 0
	c.CreatedAt, _ = parseTime(createdAt)
	return c, nil
}
