package service_test

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"truyen/backend/internal/limiter"
	"truyen/backend/internal/model"
	"truyen/backend/internal/repository"
	"truyen/backend/internal/repository/testutil"
	"truyen/backend/internal/service"
	"truyen/backend/pkg/wordfilter"
)

func newCommentService(t *testing.T) (service.CommentService, *sql.DB) {
	t.Helper()

	database := testutil.NewTestDB(t)
	repo := repository.NewCommentRepository(database)
	svc := service.NewCommentService(repo, wordfilter.Default(), limiter.New(5, time.Minute, 1000))
	return svc, database
}

func strPtr(s string) *string { return &s }

func TestCommentService_Create(t *testing.T) {
	t.Parallel()

	svc, database := newCommentService(t)
	ctx := context.Background()

	mangaID := testutil.SeedManga(t, database, model.Manga{})

	created, err := svc.Create(ctx, service.CreateCommentInput{
		MangaID:  &mangaID,
		Nickname: "  độc giả  ",
		Content:  "truyện hay lắm",
		ClientIP: "203.0.113.10",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "độc giả", created.Nickname)
	require.Equal(t, "truyện hay lắm", created.Content)
	require.False(t, created.IsHidden)
	require.False(t, created.CreatedAt.IsZero())
}

func TestCommentService_Create_StripsMarkup(t *testing.T) {
	t.Parallel()

	svc, database := newCommentService(t)
	ctx := context.Background()

	mangaID := testutil.SeedManga(t, database, model.Manga{})

	created, err := svc.Create(ctx, service.CreateCommentInput{
		MangaID:  &mangaID,
		Nickname: "reader",
		Content:  `hay <script>alert("x")</script> quá`,
		ClientIP: "203.0.113.10",
	})
	require.NoError(t, err)
	require.NotContains(t, created.Content, "<script>")
	require.Contains(t, created.Content, "hay")
}

func TestCommentService_Create_Validation(t *testing.T) {
	t.Parallel()

	svc, database := newCommentService(t)
	ctx := context.Background()

	mangaID := testutil.SeedManga(t, database, model.Manga{})
	chapterID := testutil.SeedChapter(t, database, model.Chapter{MangaID: mangaID})

	cases := []struct {
		name  string
		input service.CreateCommentInput
	}{
		{
			name:  "no target",
			input: service.CreateCommentInput{Nickname: "a", Content: "b"},
		},
		{
			name:  "both targets",
			input: service.CreateCommentInput{MangaID: &mangaID, ChapterID: &chapterID, Nickname: "a", Content: "b"},
		},
		{
			name:  "malformed manga id",
			input: service.CreateCommentInput{MangaID: strPtr("nope"), Nickname: "a", Content: "b"},
		},
		{
			name:  "empty nickname",
			input: service.CreateCommentInput{MangaID: &mangaID, Nickname: "   ", Content: "b"},
		},
		{
			name:  "nickname too long",
			input: service.CreateCommentInput{MangaID: &mangaID, Nickname: strings.Repeat("a", 51), Content: "b"},
		},
		{
			name:  "empty content",
			input: service.CreateCommentInput{MangaID: &mangaID, Nickname: "a", Content: ""},
		},
		{
			name:  "content too long",
			input: service.CreateCommentInput{MangaID: &mangaID, Nickname: "a", Content: strings.Repeat("b", 1001)},
		},
		{
			name:  "malformed parent id",
			input: service.CreateCommentInput{MangaID: &mangaID, Nickname: "a", Content: "b", ParentID: strPtr("nope")},
		},
	}

	for i, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// One IP per case so the submission limiter never interferes.
			tc.input.ClientIP = fmt.Sprintf("203.0.113.%d", i+1)
			_, err := svc.Create(ctx, tc.input)
			require.ErrorIs(t, err, service.ErrInvalid)
		})
	}
}

func TestCommentService_Create_MaxLengths(t *testing.T) {
	t.Parallel()

	svc, database := newCommentService(t)
	ctx := context.Background()

	mangaID := testutil.SeedManga(t, database, model.Manga{})

	created, err := svc.Create(ctx, service.CreateCommentInput{
		MangaID:  &mangaID,
		Nickname: strings.Repeat("a", 50),
		Content:  strings.Repeat("b", 1000),
		ClientIP: "203.0.113.50",
	})
	require.NoError(t, err)
	require.Len(t, created.Nickname, 50)
	require.Len(t, created.Content, 1000)
}

func TestCommentService_Create_InappropriateContent(t *testing.T) {
	t.Parallel()

	svc, database := newCommentService(t)
	ctx := context.Background()

	mangaID := testutil.SeedManga(t, database, model.Manga{})

	cases := []struct {
		name  string
		input service.CreateCommentInput
	}{
		{
			name:  "banned word in content",
			input: service.CreateCommentInput{MangaID: &mangaID, Nickname: "reader", Content: "đúng là đồ lồn"},
		},
		{
			name:  "banned word uppercase",
			input: service.CreateCommentInput{MangaID: &mangaID, Nickname: "reader", Content: "this is SPAM content"},
		},
		{
			name:  "banned word in nickname",
			input: service.CreateCommentInput{MangaID: &mangaID, Nickname: "hacker pro", Content: "bình thường"},
		},
	}

	for i, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.input.ClientIP = fmt.Sprintf("198.51.100.%d", i+1)
			_, err := svc.Create(ctx, tc.input)
			require.ErrorIs(t, err, service.ErrInappropriate)
		})
	}
}

func TestCommentService_Create_ParentNotFound(t *testing.T) {
	t.Parallel()

	svc, database := newCommentService(t)
	ctx := context.Background()

	mangaID := testutil.SeedManga(t, database, model.Manga{})

	_, err := svc.Create(ctx, service.CreateCommentInput{
		MangaID:  &mangaID,
		Nickname: "reader",
		Content:  "reply",
		ParentID: strPtr("00000000-0000-0000-0000-000000000000"),
		ClientIP: "203.0.113.10",
	})
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestCommentService_Create_ReplyToExisting(t *testing.T) {
	t.Parallel()

	svc, database := newCommentService(t)
	ctx := context.Background()

	mangaID := testutil.SeedManga(t, database, model.Manga{})
	parentID := testutil.SeedComment(t, database, model.Comment{MangaID: &mangaID})

	created, err := svc.Create(ctx, service.CreateCommentInput{
		MangaID:  &mangaID,
		Nickname: "reader",
		Content:  "đồng ý với bạn",
		ParentID: &parentID,
		ClientIP: "203.0.113.10",
	})
	require.NoError(t, err)
	require.NotNil(t, created.ParentID)
	require.Equal(t, parentID, *created.ParentID)
}

func TestCommentService_Create_RateLimited(t *testing.T) {
	t.Parallel()

	svc, database := newCommentService(t)
	ctx := context.Background()

	mangaID := testutil.SeedManga(t, database, model.Manga{})

	for i := 0; i < 5; i++ {
		_, err := svc.Create(ctx, service.CreateCommentInput{
			MangaID:  &mangaID,
			Nickname: "reader",
			Content:  "bình luận hợp lệ",
			ClientIP: "203.0.113.10",
		})
		require.NoError(t, err)
	}

	_, err := svc.Create(ctx, service.CreateCommentInput{
		MangaID:  &mangaID,
		Nickname: "reader",
		Content:  "bình luận hợp lệ",
		ClientIP: "203.0.113.10",
	})
	var rateErr *service.RateLimitError
	require.ErrorAs(t, err, &rateErr)
	require.Greater(t, rateErr.RetryAfter, time.Duration(0))
}

func TestCommentService_List(t *testing.T) {
	t.Parallel()

	svc, database := newCommentService(t)
	ctx := context.Background()

	mangaID := testutil.SeedManga(t, database, model.Manga{})
	chapterID := testutil.SeedChapter(t, database, model.Chapter{MangaID: mangaID})

	base := time.Now().UTC().Add(-time.Hour)
	oldID := testutil.SeedComment(t, database, model.Comment{MangaID: &mangaID, CreatedAt: base})
	newID := testutil.SeedComment(t, database, model.Comment{MangaID: &mangaID, CreatedAt: base.Add(time.Minute)})
	chapterCommentID := testutil.SeedComment(t, database, model.Comment{ChapterID: &chapterID, CreatedAt: base})

	byManga, err := svc.List(ctx, &mangaID, nil)
	require.NoError(t, err)
	require.Len(t, byManga, 2)
	require.Equal(t, newID, byManga[0].ID)
	require.Equal(t, oldID, byManga[1].ID)

	byChapter, err := svc.List(ctx, nil, &chapterID)
	require.NoError(t, err)
	require.Len(t, byChapter, 1)
	require.Equal(t, chapterCommentID, byChapter[0].ID)
}

func TestCommentService_List_RequiresExactlyOneTarget(t *testing.T) {
	t.Parallel()

	svc, database := newCommentService(t)
	ctx := context.Background()

	mangaID := testutil.SeedManga(t, database, model.Manga{})
	chapterID := testutil.SeedChapter(t, database, model.Chapter{MangaID: mangaID})

	_, err := svc.List(ctx, nil, nil)
	require.ErrorIs(t, err, service.ErrInvalid)

	_, err = svc.List(ctx, &mangaID, &chapterID)
	require.ErrorIs(t, err, service.ErrInvalid)

	_, err = svc.List(ctx, strPtr("nope"), nil)
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestCommentService_SetHidden(t *testing.T) {
	t.Parallel()

	svc, database := newCommentService(t)
	ctx := context.Background()

	mangaID := testutil.SeedManga(t, database, model.Manga{})
	commentID := testutil.SeedComment(t, database, model.Comment{MangaID: &mangaID})

	updated, err := svc.SetHidden(ctx, commentID, true)
	require.NoError(t, err)
	require.Equal(t, commentID, updated.ID)
	require.True(t, updated.IsHidden)

	comments, err := svc.List(ctx, &mangaID, nil)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	require.True(t, comments[0].IsHidden)

	_, err = svc.SetHidden(ctx, "00000000-0000-0000-0000-000000000000", true)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestCommentService_Delete(t *testing.T) {
	t.Parallel()

	svc, database := newCommentService(t)
	ctx := context.Background()

	mangaID := testutil.SeedManga(t, database, model.Manga{})
	commentID := testutil.SeedComment(t, database, model.Comment{MangaID: &mangaID})

	require.NoError(t, svc.Delete(ctx, commentID))
	require.ErrorIs(t, svc.Delete(ctx, commentID), service.ErrNotFound)
}
