//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"truyen/backend/internal/limiter"
	"truyen/backend/internal/model"
	"truyen/backend/internal/repository"
	"truyen/backend/pkg/sanitizer"
)

const (
	maxNicknameLength = 50
	maxContentLength  = 1000
)

// ContentFilter screens user-submitted text for banned words.
type ContentFilter interface {
	Matches(text string) bool
}

type CreateCommentInput struct {
	MangaID   *string
	ChapterID *string
	Nickname  string
	Content   string
	ParentID  *string
	ClientIP  string
}

// CommentService handles reader comments and their moderation.
type CommentService interface {
	List(ctx context.Context, mangaID, chapterID *string) ([]model.Comment, error)
	Create(ctx context.Context, input CreateCommentInput) (model.Comment, error)
	SetHidden(ctx context.Context, id string, hidden bool) (model.Comment, error)
	Delete(ctx context.Context, id string) error
}

type commentService struct {
	comments repository.CommentRepository
	filter   ContentFilter
	limiter  *limiter.Limiter
}

func NewCommentService(comments repository.CommentRepository, filter ContentFilter, l *limiter.Limiter) CommentService {
	return &commentService{comments: comments, filter: filter, limiter: l}
}

func (s *commentService) List(ctx context.Context, mangaID, chapterID *string) ([]model.Comment, error) {
	if (mangaID == nil) == (chapterID == nil) {
		return nil, ErrInvalid
	}

	if mangaID != nil {
		if _, err := uuid.Parse(*mangaID); err != nil {
			return nil, ErrInvalid
		}
		return s.comments.ListByManga(ctx, *mangaID)
	}

	if _, err := uuid.Parse(*chapterID); err != nil {
		return nil, ErrInvalid
	}
	return s.comments.ListByChapter(ctx, *chapterID)
}

func (s *commentService) Create(ctx context.Context, input CreateCommentInput) (model.Comment, error) {
	decision := s.limiter.Allow(input.ClientIP)
	if !decision.Allowed {
		return model.Comment{}, &RateLimitError{RetryAfter: decision.RetryAfter}
	}

	nickname := sanitizer.CleanText(input.Nickname)
	content := sanitizer.CleanText(input.Content)

	if (input.MangaID == nil) == (input.ChapterID == nil) {
		return model.Comment{}, ErrInvalid
	}
	if input.MangaID != nil {
		if _, err := uuid.Parse(*input.MangaID); err != nil {
			return model.Comment{}, ErrInvalid
		}
	}
	if input.ChapterID != nil {
		if _, err := uuid.Parse(*input.ChapterID); err != nil {
			return model.Comment{}, ErrInvalid
		}
	}
	if nickname == "" || utf8.RuneCountInString(nickname) > maxNicknameLength {
		return model.Comment{}, ErrInvalid
	}
	if content == "" || utf8.RuneCountInString(content) > maxContentLength {
		return model.Comment{}, ErrInvalid
	}
	if input.ParentID != nil {
		if _, err := uuid.Parse(*input.ParentID); err != nil {
			return model.Comment{}, ErrInvalid
		}
	}

	if s.filter.Matches(nickname) || s.filter.Matches(content) {
		return model.Comment{}, ErrInappropriate
	}

	if input.ParentID != nil {
		if _, err := s.comments.GetByID(ctx, *input.ParentID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return model.Comment{}, ErrNotFound
			}
			return model.Comment{}, fmt.Errorf("check parent comment: %w", err)
		}
	}

	comment := model.Comment{
		MangaID:   input.MangaID,
		ChapterID: input.ChapterID,
		Nickname:  nickname,
		Content:   content,
		ParentID:  input.ParentID,
	}

	created, err := s.comments.Create(ctx, comment)
	if err != nil {
		return model.Comment{}, fmt.Errorf("create comment: %w", err)
	}
	return created, nil
}

func (s *commentService) SetHidden(ctx context.Context, id string, hidden bool) (model.Comment, error) {
	if strings.TrimSpace(id) == "" {
		return model.Comment{}, ErrInvalid
	}
	if err := s.comments.SetHidden(ctx, id, hidden); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Comment{}, ErrNotFound
		}
		return model.Comment{}, fmt.Errorf("set comment hidden: %w", err)
	}
	updated, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return model.Comment{}, fmt.Errorf("load updated comment: %w", err)
	}
	return updated, nil
}

func (s *commentService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalid
	}
	if err := s.comments.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
