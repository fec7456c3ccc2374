package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"truyen/backend/internal/limiter"
	"truyen/backend/internal/model"
	"truyen/backend/internal/repository"
	"truyen/backend/internal/repository/testutil"
	"truyen/backend/internal/service"
)

func newViewService(t *testing.T) (service.ViewService, repository.MangaRepository, string) {
	t.Helper()

	database := testutil.NewTestDB(t)
	mangaRepo := repository.NewMangaRepository(database)
	mangaID := testutil.SeedManga(t, database, model.Manga{})

	svc := service.NewViewService(mangaRepo, limiter.New(3, time.Hour, 5000))
	return svc, mangaRepo, mangaID
}

func TestViewService_Increment(t *testing.T) {
	t.Parallel()

	svc, mangaRepo, mangaID := newViewService(t)
	ctx := context.Background()

	require.NoError(t, svc.Increment(ctx, mangaID, "203.0.113.10"))
	require.NoError(t, svc.Increment(ctx, mangaID, "203.0.113.10"))

	manga, err := mangaRepo.GetByID(ctx, mangaID)
	require.NoError(t, err)
	require.Equal(t, int64(2), manga.Views)
}

func TestViewService_Increment_InvalidID(t *testing.T) {
	t.Parallel()

	svc, _, _ := newViewService(t)

	err := svc.Increment(context.Background(), "not-a-uuid", "203.0.113.10")
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestViewService_Increment_MangaNotFound(t *testing.T) {
	t.Parallel()

	svc, _, _ := newViewService(t)

	err := svc.Increment(context.Background(), "00000000-0000-0000-0000-000000000000", "203.0.113.10")
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestViewService_Increment_RateLimited(t *testing.T) {
	t.Parallel()

	svc, mangaRepo, mangaID := newViewService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.Increment(ctx, mangaID, "203.0.113.10"))
	}

	err := svc.Increment(ctx, mangaID, "203.0.113.10")
	var rateErr *service.RateLimitError
	require.ErrorAs(t, err, &rateErr)
	require.Greater(t, rateErr.RetryAfter, time.Duration(0))
	require.GreaterOrEqual(t, rateErr.RetryAfterSeconds(), 1)

	// The denied request must not touch the stored count.
	manga, err := mangaRepo.GetByID(ctx, mangaID)
	require.NoError(t, err)
	require.Equal(t, int64(3), manga.Views)
}

func TestViewService_Increment_LimitIsPerClientAndManga(t *testing.T) {
	t.Parallel()

	database := testutil.NewTestDB(t)
	mangaRepo := repository.NewMangaRepository(database)
	svc := service.NewViewService(mangaRepo, limiter.New(3, time.Hour, 5000))
	ctx := context.Background()

	mangaA := testutil.SeedManga(t, database, model.Manga{Title: "A"})
	mangaB := testutil.SeedManga(t, database, model.Manga{Title: "B"})

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.Increment(ctx, mangaA, "203.0.113.10"))
	}

	// Same client, different manga: separate window.
	require.NoError(t, svc.Increment(ctx, mangaB, "203.0.113.10"))

	// Different client, same manga: separate window.
	require.NoError(t, svc.Increment(ctx, mangaA, "198.51.100.7"))
}
