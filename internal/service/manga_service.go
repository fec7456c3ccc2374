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

const maxMangaTitleLength = 500

type MangaInput struct {
	Title       string
	Author      *string
	Description *string
	ImageURL    *string
	Slug        *string
	Rating      float64
	TagIDs      []string
}

// MangaListItem is a list row with its tags and chapter count attached.
type MangaListItem struct {
	model.Manga
	Tags         []model.Tag
	ChapterCount int
}

// MangaDetail is a single manga with tags and its chapter listing.
type MangaDetail struct {
	model.Manga
	Tags     []model.Tag
	Chapters []model.Chapter
}

// MangaService manages the manga catalog.
type MangaService interface {
	List(ctx context.Context) ([]MangaListItem, error)
	Get(ctx context.Context, id string) (MangaDetail, error)
	Create(ctx context.Context, input MangaInput) (MangaDetail, error)
	Update(ctx context.Context, id string, input MangaInput) (MangaDetail, error)
	Delete(ctx context.Context, id string) error
}

type mangaService struct {
	manga    repository.MangaRepository
	chapters repository.ChapterRepository
	tags     repository.TagRepository
}

func NewMangaService(manga repository.MangaRepository, chapters repository.ChapterRepository, tags repository.TagRepository) MangaService {
	return &mangaService{manga: manga, chapters: chapters, tags: tags}
}

func (s *mangaService) List(ctx context.Context) ([]MangaListItem, error) {
	list, err := s.manga.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list manga: %w", err)
	}

	counts, err := s.chapters.CountsByManga(ctx)
	if err != nil {
		return nil, fmt.Errorf("count chapters: %w", err)
	}

	items := make([]MangaListItem, 0, len(list))
	for _, m := range list {
		tags, err := s.tags.ListByManga(ctx, m.ID)
		if err != nil {
			return nil, fmt.Errorf("list manga tags: %w", err)
		}
		items = append(items, MangaListItem{Manga: m, Tags: tags, ChapterCount: counts[m.ID]})
	}
	return items, nil
}

func (s *mangaService) Get(ctx context.Context, id string) (MangaDetail, error) {
	if _, err := uuid.Parse(id); err != nil {
		return MangaDetail{}, ErrInvalid
	}

	m, err := s.manga.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return MangaDetail{}, ErrNotFound
		}
		return MangaDetail{}, fmt.Errorf("get manga: %w", err)
	}

	return s.detail(ctx, m)
}

func (s *mangaService) Create(ctx context.Context, input MangaInput) (MangaDetail, error) {
	normalized, err := s.normalize(ctx, input)
	if err != nil {
		return MangaDetail{}, err
	}

	created, err := s.manga.Create(ctx, model.Manga{
		Title:       normalized.Title,
		Author:      normalized.Author,
		Description: normalized.Description,
		ImageURL:    normalized.ImageURL,
		Slug:        normalized.Slug,
		Rating:      normalized.Rating,
	})
	if err != nil {
		return MangaDetail{}, fmt.Errorf("create manga: %w", err)
	}

	if len(normalized.TagIDs) > 0 {
		if err := s.manga.SetTags(ctx, created.ID, normalized.TagIDs); err != nil {
			return MangaDetail{}, fmt.Errorf("set manga tags: %w", err)
		}
	}

	return s.detail(ctx, created)
}

func (s *mangaService) Update(ctx context.Context, id string, input MangaInput) (MangaDetail, error) {
	if _, err := uuid.Parse(id); err != nil {
		return MangaDetail{}, ErrInvalid
	}

	normalized, err := s.normalize(ctx, input)
	if err != nil {
		return MangaDetail{}, err
	}

	existing, err := s.manga.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return MangaDetail{}, ErrNotFound
		}
		return MangaDetail{}, fmt.Errorf("get manga: %w", err)
	}

	existing.Title = normalized.Title
	existing.Author = normalized.Author
	existing.Description = normalized.Description
	existing.ImageURL = normalized.ImageURL
	existing.Slug = normalized.Slug
	existing.Rating = normalized.Rating

	updated, err := s.manga.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return MangaDetail{}, ErrNotFound
		}
		return MangaDetail{}, fmt.Errorf("update manga: %w", err)
	}

	if err := s.manga.SetTags(ctx, id, normalized.TagIDs); err != nil {
		return MangaDetail{}, fmt.Errorf("set manga tags: %w", err)
	}

	return s.detail(ctx, updated)
}

func (s *mangaService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalid
	}

	if err := s.manga.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("delete manga: %w", err)
	}
	return nil
}

// normalize validates the input and checks every referenced tag exists.
func (s *mangaService) normalize(ctx context.Context, input MangaInput) (MangaInput, error) {
	input.Title = sanitizer.CleanText(input.Title)
	if input.Title == "" || utf8.RuneCountInString(input.Title) > maxMangaTitleLength {
		return MangaInput{}, ErrInvalid
	}
	if input.Rating < 0 || input.Rating > 5 {
		return MangaInput{}, ErrInvalid
	}

	input.Author = cleanOptional(input.Author)
	input.Description = cleanOptional(input.Description)
	input.ImageURL = trimOptional(input.ImageURL)
	input.Slug = trimOptional(input.Slug)

	for _, tagID := range input.TagIDs {
		if _, err := uuid.Parse(tagID); err != nil {
			return MangaInput{}, ErrInvalid
		}
		if _, err := s.tags.GetByID(ctx, tagID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return MangaInput{}, ErrNotFound
			}
			return MangaInput{}, fmt.Errorf("check tag: %w", err)
		}
	}

	return input, nil
}

func (s *mangaService) detail(ctx context.Context, m model.Manga) (MangaDetail, error) {
	tags, err := s.tags.ListByManga(ctx, m.ID)
	if err != nil {
		return MangaDetail{}, fmt.Errorf("list manga tags: %w", err)
	}
	chapters, err := s.chapters.ListByManga(ctx, m.ID)
	if err != nil {
		return MangaDetail{}, fmt.Errorf("list chapters: %w", err)
	}
	return MangaDetail{Manga: m, Tags: tags, Chapters: chapters}, nil
}

func cleanOptional(p *string) *string {
	if p == nil {
		return nil
	}
	cleaned := sanitizer.CleanText(*p)
	if cleaned == "" {
		return nil
	}
	return &cleaned
}

func trimOptional(p *string) *string {
	if p == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*p)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
