//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/google/uuid"

	"truyen/backend/internal/model"
	"truyen/backend/internal/repository"
	"truyen/backend/pkg/sanitizer"
)

const (
	maxTagNameLength = 50
	defaultTagColor  = "#6B7280"
)

// DefaultTagCategory groups tags that were created without one.
const DefaultTagCategory = "Khác"

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

type TagInput struct {
	Name     string
	Category string
	Color    string
}

// TagService manages the tag vocabulary used to classify manga.
type TagService interface {
	List(ctx context.Context) ([]model.Tag, error)
	Create(ctx context.Context, input TagInput) (model.Tag, error)
	Update(ctx context.Context, id string, input TagInput) (model.Tag, error)
	Delete(ctx context.Context, id string) error
}

type tagService struct {
	tags repository.TagRepository
}

func NewTagService(tags repository.TagRepository) TagService {
	return &tagService{tags: tags}
}

func (s *tagService) List(ctx context.Context) ([]model.Tag, error) {
	return s.tags.List(ctx)
}

func (s *tagService) Create(ctx context.Context, input TagInput) (model.Tag, error) {
	normalized, err := validateTagInput(input)
	if err != nil {
		return model.Tag{}, err
	}

	if _, err := s.tags.GetByName(ctx, normalized.Name); err == nil {
		return model.Tag{}, ErrConflict
	} else if !errors.Is(err, sql.ErrNoRows) {
		return model.Tag{}, fmt.Errorf("check tag name: %w", err)
	}

	created, err := s.tags.Create(ctx, model.Tag{
		Name:     normalized.Name,
		Category: normalized.Category,
		Color:    normalized.Color,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return model.Tag{}, ErrConflict
		}
		return model.Tag{}, fmt.Errorf("create tag: %w", err)
	}
	return created, nil
}

func (s *tagService) Update(ctx context.Context, id string, input TagInput) (model.Tag, error) {
	if _, err := uuid.Parse(id); err != nil {
		return model.Tag{}, ErrInvalid
	}

	normalized, err := validateTagInput(input)
	if err != nil {
		return model.Tag{}, err
	}

	if existing, err := s.tags.GetByName(ctx, normalized.Name); err == nil {
		if existing.ID != id {
			return model.Tag{}, ErrConflict
		}
	} else if !errors.Is(err, sql.ErrNoRows) {
		return model.Tag{}, fmt.Errorf("check tag name: %w", err)
	}

	updated, err := s.tags.Update(ctx, model.Tag{
		ID:       id,
		Name:     normalized.Name,
		Category: normalized.Category,
		Color:    normalized.Color,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Tag{}, ErrNotFound
		}
		if isUniqueViolation(err) {
			return model.Tag{}, ErrConflict
		}
		return model.Tag{}, fmt.Errorf("update tag: %w", err)
	}
	return updated, nil
}

func (s *tagService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalid
	}

	if err := s.tags.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("delete tag: %w", err)
	}
	return nil
}

func validateTagInput(input TagInput) (TagInput, error) {
	input.Name = sanitizer.CleanText(input.Name)
	if input.Name == "" || utf8.RuneCountInString(input.Name) > maxTagNameLength {
		return TagInput{}, ErrInvalid
	}

	input.Category = sanitizer.CleanText(input.Category)
	if input.Category == "" {
		input.Category = DefaultTagCategory
	}

	if input.Color == "" {
		input.Color = defaultTagColor
	} else if !hexColorPattern.MatchString(input.Color) {
		return TagInput{}, ErrInvalid
	}

	return input, nil
}
