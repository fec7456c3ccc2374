package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"truyen/backend/internal/handler"
	"truyen/backend/internal/service"
	"truyen/backend/internal/service/mock"
)

const testMangaID = "4fa6bd19-2a68-4a80-8b52-0a38e1a2f1aa"

func TestViewHandler_Increment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockViewService(ctrl)
	h := handler.NewViewHandler(mockService)

	mockService.EXPECT().
		Increment(gomock.Any(), testMangaID, "203.0.113.10").
		Return(nil)

	e := newTestEcho()
	req := newJSONRequest(http.MethodPost, "/api/increment-views", map[string]string{"mangaId": testMangaID})
	req.Header.Set("X-Forwarded-For", "203.0.113.10")
	c, rec := newTestContext(e, req)

	require.NoError(t, h.Increment(c))

	var resp handler.IncrementViewsResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.True(t, resp.Success)
}

func TestViewHandler_Increment_UnknownClientFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockViewService(ctrl)
	h := handler.NewViewHandler(mockService)

	mockService.EXPECT().
		Increment(gomock.Any(), testMangaID, "unknown").
		Return(nil)

	e := newTestEcho()
	req := newJSONRequest(http.MethodPost, "/api/increment-views", map[string]string{"mangaId": testMangaID})
	c, rec := newTestContext(e, req)

	require.NoError(t, h.Increment(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestViewHandler_Increment_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockViewService(ctrl)
	h := handler.NewViewHandler(mockService)

	mockService.EXPECT().
		Increment(gomock.Any(), "not-a-uuid", gomock.Any()).
		Return(service.ErrInvalid)

	e := newTestEcho()
	req := newJSONRequest(http.MethodPost, "/api/increment-views", map[string]string{"mangaId": "not-a-uuid"})
	c, rec := newTestContext(e, req)

	require.NoError(t, h.Increment(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestViewHandler_Increment_MangaNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockViewService(ctrl)
	h := handler.NewViewHandler(mockService)

	mockService.EXPECT().
		Increment(gomock.Any(), testMangaID, gomock.Any()).
		Return(service.ErrNotFound)

	e := newTestEcho()
	req := newJSONRequest(http.MethodPost, "/api/increment-views", map[string]string{"mangaId": testMangaID})
	c, rec := newTestContext(e, req)

	require.NoError(t, h.Increment(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestViewHandler_Increment_RateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockViewService(ctrl)
	h := handler.NewViewHandler(mockService)

	mockService.EXPECT().
		Increment(gomock.Any(), testMangaID, gomock.Any()).
		Return(&service.RateLimitError{RetryAfter: 30 * time.Minute})

	e := newTestEcho()
	req := newJSONRequest(http.MethodPost, "/api/increment-views", map[string]string{"mangaId": testMangaID})
	c, rec := newTestContext(e, req)

	require.NoError(t, h.Increment(c))

	var resp handler.RateLimitResponse
	assertJSONResponse(t, rec, http.StatusTooManyRequests, &resp)
	require.False(t, resp.Success)
	require.Equal(t, 1800, resp.RetryAfter)
	require.Equal(t, "1800", rec.Header().Get("Retry-After"))
}

func TestViewHandler_Increment_BadBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockViewService(ctrl)
	h := handler.NewViewHandler(mockService)

	e := newTestEcho()
	req := newJSONRequestRaw(http.MethodPost, "/api/increment-views", "{not json")
	c, rec := newTestContext(e, req)

	require.NoError(t, h.Increment(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
