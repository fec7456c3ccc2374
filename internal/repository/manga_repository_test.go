package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"truyen/backend/internal/model"
	"truyen/backend/internal/repository/testutil"
)

func TestMangaRepository_CreateAndGet(t *testing.T) {
	t.Parallel()

	database := testutil.NewTestDB(t)
	repo := NewMangaRepository(database)
	ctx := context.Background()

	author := "Nguyễn Nhật Ánh"
	created, err := repo.Create(ctx, model.Manga{
		Title:  "Mắt Biếc",
		Author: &author,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Zero(t, created.Views)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Mắt Biếc", got.Title)
	require.NotNil(t, got.Author)
	require.Equal(t, author, *got.Author)
	require.Nil(t, got.Slug)
}

func TestMangaRepository_List_NewestFirst(t *testing.T) {
	t.Parallel()

	database := testutil.NewTestDB(t)
	repo := NewMangaRepository(database)
	ctx := context.Background()

	first, err := repo.Create(ctx, model.Manga{Title: "First"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, model.Manga{Title: "Second"})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, second.ID, list[0].ID)
	require.Equal(t, first.ID, list[1].ID)
}

func TestMangaRepository_Update(t *testing.T) {
	t.Parallel()

	database := testutil.NewTestDB(t)
	repo := NewMangaRepository(database)
	ctx := context.Background()

	created, err := repo.Create(ctx, model.Manga{Title: "Before"})
	require.NoError(t, err)

	desc := "updated description"
	created.Title = "After"
	created.Description = &desc
	created.Rating = 4.5

	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	require.Equal(t, "After", updated.Title)
	require.NotNil(t, updated.Description)
	require.Equal(t, desc, *updated.Description)
	require.InDelta(t, 4.5, updated.Rating, 0.001)
}

func TestMangaRepository_Update_NotFound(t *testing.T) {
	t.Parallel()

	database := testutil.NewTestDB(t)
	repo := NewMangaRepository(database)

	_, err := repo.Update(context.Background(), model.Manga{
		ID:    "00000000-0000-0000-0000-000000000000",
		Title: "Ghost",
	})
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestMangaRepository_Delete_CascadesChapters(t *testing.T) {
	t.Parallel()

	database := testutil.NewTestDB(t)
	repo := NewMangaRepository(database)
	ctx := context.Background()

	mangaID := testutil.SeedManga(t, database, model.Manga{})
	chapterID := testutil.SeedChapter(t, database, model.Chapter{MangaID: mangaID})

	require.NoError(t, repo.Delete(ctx, mangaID))

	var count int
	err := database.QueryRowContext(ctx, `SELECT COUNT(*) FROM chapters WHERE id = ?`, chapterID).Scan(&count)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestMangaRepository_IncrementViews(t *testing.T) {
	t.Parallel()

	database := testutil.NewTestDB(t)
	repo := NewMangaRepository(database)
	ctx := context.Background()

	mangaID := testutil.SeedManga(t, database, model.Manga{Views: 7})

	require.NoError(t, repo.IncrementViews(ctx, mangaID))
	require.NoError(t, repo.IncrementViews(ctx, mangaID))

	got, err := repo.GetByID(ctx, mangaID)
	require.NoError(t, err)
	require.Equal(t, int64(9), got.Views)
}

func TestMangaRepository_IncrementViews_NotFound(t *testing.T) {
	t.Parallel()

	database := testutil.NewTestDB(t)
	repo := NewMangaRepository(database)

	err := repo.IncrementViews(context.Background(), "00000000-0000-0000-0000-000000000000")
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestMangaRepository_SetTags(t *testing.T) {
	t.Parallel()

	database := testutil.NewTestDB(t)
	repo := NewMangaRepository(database)
	tagRepo := NewTagRepository(database)
	ctx := context.Background()

	mangaID := testutil.SeedManga(t, database, model.Manga{})
	tagA := testutil.SeedTag(t, database, model.Tag{Name: "Hành động", Category: "Thể loại"})
	tagB := testutil.SeedTag(t, database, model.Tag{Name: "Lãng mạn", Category: "Thể loại"})

	require.NoError(t, repo.SetTags(ctx, mangaID, []string{tagA, tagB}))

	tags, err := tagRepo.ListByManga(ctx, mangaID)
	require.NoError(t, err)
	require.Len(t, tags, 2)

	// Replacing the set drops old associations.
	require.NoError(t, repo.SetTags(ctx, mangaID, []string{tagB}))

	tags, err = tagRepo.ListByManga(ctx, mangaID)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	require.Equal(t, tagB, tags[0].ID)

	require.NoError(t, repo.SetTags(ctx, mangaID, nil))

	tags, err = tagRepo.ListByManga(ctx, mangaID)
	require.NoError(t, err)
	require.Empty(t, tags)
}
