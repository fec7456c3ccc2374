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

	"truyen/backend/internal/model"
	"truyen/backend/internal/repository"
	"truyen/backend/pkg/sanitizer"
)

const (
	maxChapterNumber        = 9999
	maxChapterTitleLength   = 200
	maxChapterContentLength = 100000
)

type ChapterInput struct {
	MangaID       string
	ChapterNumber int
	Title         *string
	Content       string
}

// ChapterService manages chapters within a manga.
type ChapterService interface {
	Get(ctx context.Context, id string) (model.Chapter, error)
	Create(ctx context.Context, input ChapterInput) (model.Chapter, error)
	Update(ctx context.Context, id string, input ChapterInput) (model.Chapter, error)
	Delete(ctx context.Context, id string) error
}

type chapterService struct {
	chapters repository.ChapterRepository
	manga    repository.MangaRepository
}

func NewChapterService(chapters repository.ChapterRepository, manga repository.MangaRepository) ChapterService {
	return &chapterService{chapters: chapters, manga: manga}
}

func (s *chapterService) Get(ctx context.Context, id string) (model.Chapter, error) {
	if _, err := uuid.Parse(id); err != nil {
		return model.Chapter{}, ErrInvalid
	}

	chapter, err := s.chapters.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Chapter{}, ErrNotFound
		}
		return model.Chapter{}, fmt.Errorf("get chapter: %w", err)
	}
	return chapter, nil
}

func (s *chapterService) Create(ctx context.Context, input ChapterInput) (model.Chapter, error) {
	normalized, err := validateChapterInput(input)
	if err != nil {
		return model.Chapter{}, err
	}

	if _, err := s.manga.GetByID(ctx, normalized.MangaID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Chapter{}, ErrNotFound
		}
		return model.Chapter{}, fmt.Errorf("check manga: %w", err)
	}

	created, err := s.chapters.Create(ctx, model.Chapter{
		MangaID:       normalized.MangaID,
		ChapterNumber: normalized.ChapterNumber,
		Title:         normalized.Title,
		Content:       normalized.Content,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return model.Chapter{}, ErrConflict
		}
		return model.Chapter{}, fmt.Errorf("create chapter: %w", err)
	}
	return created, nil
}

func (s *chapterService) Update(ctx context.Context, id string, input ChapterInput) (model.Chapter, error) {
	if _, err := uuid.Parse(id); err != nil {
		return model.Chapter{}, ErrInvalid
	}

	normalized, err := validateChapterInput(input)
	if err != nil {
		return model.Chapter{}, err
	}

	updated, err := s.chapters.Update(ctx, model.Chapter{
		ID:            id,
		ChapterNumber: normalized.ChapterNumber,
		Title:         normalized.Title,
		Content:       normalized.Content,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Chapter{}, ErrNotFound
		}
		if isUniqueViolation(err) {
			return model.Chapter{}, ErrConflict
		}
		return model.Chapter{}, fmt.Errorf("update chapter: %w", err)
	}
	return updated, nil
}

func (s *chapterService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalid
	}

	if err := s.chapters.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("delete chapter: %w", err)
	}
	return nil
}

func validateChapterInput(input ChapterInput) (ChapterInput, error) {
	if _, err := uuid.Parse(input.MangaID); err != nil {
		return ChapterInput{}, ErrInvalid
	}
	if input.ChapterNumber < 1 || input.ChapterNumber > maxChapterNumber {
		return ChapterInput{}, ErrInvalid
	}

	if input.Title != nil {
		title := sanitizer.CleanText(*input.Title)
		if title == "" {
			input.Title = nil
		} else {
			if utf8.RuneCountInString(title) > maxChapterTitleLength {
				return ChapterInput{}, ErrInvalid
			}
			input.Title = &title
		}
	}

	input.Content = strings.TrimSpace(input.Content)
	if input.Content == "" || utf8.RuneCountInString(input.Content) > maxChapterContentLength {
		return ChapterInput{}, ErrInvalid
	}

	return input, nil
}

// isUniqueViolation detects SQLite unique constraint failures without
// depending on driver-specific error types.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
