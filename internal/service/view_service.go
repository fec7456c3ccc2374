//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"truyen/backend/internal/limiter"
	"truyen/backend/internal/repository"
)

// ViewService records rate-limited view counts for manga.
type ViewService interface {
	Increment(ctx context.Context, mangaID, clientIP string) error
}

type viewService struct {
	manga   repository.MangaRepository
	limiter *limiter.Limiter
}

func NewViewService(manga repository.MangaRepository, l *limiter.Limiter) ViewService {
	return &viewService{manga: manga, limiter: l}
}

// Increment counts one view for the manga, at most a few times per
// client and window. Denied requests leave the stored count untouched.
func (s *viewService) Increment(ctx context.Context, mangaID, clientIP string) error {
	if _, err := uuid.Parse(mangaID); err != nil {
		return ErrInvalid
	}

	decision := s.limiter.Allow(clientIP + ":" + mangaID)
	if !decision.Allowed {
		return &RateLimitError{RetryAfter: decision.RetryAfter}
	}

	if err := s.manga.IncrementViews(ctx, mangaID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("increment views: %w", err)
	}

	return nil
}
