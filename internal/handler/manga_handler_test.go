package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"truyen/backend/internal/handler"
	"truyen/backend/internal/model"
	"truyen/backend/internal/service"
	"truyen/backend/internal/service/mock"
)

func newMangaHandler(t *testing.T) (*handler.MangaHandler, *mock.MockMangaService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := mock.NewMockMangaService(ctrl)
	return handler.NewMangaHandler(mockService), mockService
}

func sampleManga(id string) model.Manga {
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	return model.Manga{ID: id, Title: "Truyện", Views: 12, Rating: 4, CreatedAt: now, UpdatedAt: now}
}

func TestMangaHandler_List(t *testing.T) {
	h, mockService := newMangaHandler(t)

	mockService.EXPECT().
		List(gomock.Any()).
		Return([]service.MangaListItem{
			{
				Manga:        sampleManga(testMangaID),
				Tags:         []model.Tag{{ID: "t1", Name: "Hành động", Category: "Thể loại", Color: "#EF4444"}},
				ChapterCount: 3,
			},
		}, nil)

	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/api/manga", nil)
	c, rec := newTestContext(e, req)

	require.NoError(t, h.List(c))

	var resp []handler.MangaListItemResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Len(t, resp, 1)
	require.Equal(t, testMangaID, resp[0].ID)
	require.Equal(t, 3, resp[0].ChapterCount)
	require.Len(t, resp[0].Tags, 1)
	require.Equal(t, "Hành động", resp[0].Tags[0].Name)
}

func TestMangaHandler_Get(t *testing.T) {
	h, mockService := newMangaHandler(t)

	title := "Chương 1"
	mockService.EXPECT().
		Get(gomock.Any(), testMangaID).
		Return(service.MangaDetail{
			Manga: sampleManga(testMangaID),
			Chapters: []model.Chapter{
				{ID: testChapterID, MangaID: testMangaID, ChapterNumber: 1, Title: &title},
			},
		}, nil)

	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/api/manga/"+testMangaID, nil)
	c, rec := newTestContext(e, req)
	setPathParams(c, map[string]string{"id": testMangaID})

	require.NoError(t, h.Get(c))

	var resp handler.MangaDetailResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Equal(t, testMangaID, resp.ID)
	require.Len(t, resp.Chapters, 1)
	require.Equal(t, 1, resp.Chapters[0].ChapterNumber)
}

func TestMangaHandler_Get_InvalidID(t *testing.T) {
	h, _ := newMangaHandler(t)

	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/api/manga/abc", nil)
	c, rec := newTestContext(e, req)
	setPathParams(c, map[string]string{"id": "abc"})

	require.NoError(t, h.Get(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMangaHandler_Create(t *testing.T) {
	h, mockService := newMangaHandler(t)

	mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, input service.MangaInput) (service.MangaDetail, error) {
			require.Equal(t, "Truyện mới", input.Title)
			require.Equal(t, []string{"t1"}, input.TagIDs)
			return service.MangaDetail{Manga: sampleManga(testMangaID)}, nil
		})

	e := newTestEcho()
	req := newJSONRequest(http.MethodPost, "/api/manga", map[string]interface{}{
		"title":  "Truyện mới",
		"tagIds": []string{"t1"},
	})
	c, rec := newTestContext(e, req)

	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestMangaHandler_Update_NotFound(t *testing.T) {
	h, mockService := newMangaHandler(t)

	mockService.EXPECT().
		Update(gomock.Any(), testMangaID, gomock.Any()).
		Return(service.MangaDetail{}, service.ErrNotFound)

	e := newTestEcho()
	req := newJSONRequest(http.MethodPut, "/api/manga/"+testMangaID, map[string]string{"title": "Ghost"})
	c, rec := newTestContext(e, req)
	setPathParams(c, map[string]string{"id": testMangaID})

	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMangaHandler_Delete(t *testing.T) {
	h, mockService := newMangaHandler(t)

	mockService.EXPECT().
		Delete(gomock.Any(), testMangaID).
		Return(nil)

	e := newTestEcho()
	req := newJSONRequest(http.MethodDelete, "/api/manga/"+testMangaID, nil)
	c, rec := newTestContext(e, req)
	setPathParams(c, map[string]string{"id": testMangaID})

	require.NoError(t, h.Delete(c))

	var resp handler.MessageResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Equal(t, "manga deleted", resp.Message)
}
