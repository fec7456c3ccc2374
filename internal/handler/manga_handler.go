package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"truyen/backend/internal/model"
	"truyen/backend/internal/service"
)

type MangaHandler struct {
	service service.MangaService
}

type mangaRequest struct {
	Title       string   `json:"title"`
	Author      *string  `json:"author"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"imageUrl"`
	Slug        *string  `json:"slug"`
	Rating      float64  `json:"rating"`
	TagIDs      []string `json:"tagIds"`
}

type mangaListItemResponse struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Author       *string       `json:"author,omitempty"`
	Description  *string       `json:"description,omitempty"`
	ImageURL     *string       `json:"imageUrl,omitempty"`
	Slug         *string       `json:"slug,omitempty"`
	Views        int64         `json:"views"`
	Rating       float64       `json:"rating"`
	Tags         []tagResponse `json:"tags"`
	ChapterCount int           `json:"chapterCount"`
	CreatedAt    string        `json:"createdAt"`
	UpdatedAt    string        `json:"updatedAt"`
}

type mangaDetailResponse struct {
	ID          string                   `json:"id"`
	Title       string                   `json:"title"`
	Author      *string                  `json:"author,omitempty"`
	Description *string                  `json:"description,omitempty"`
	ImageURL    *string                  `json:"imageUrl,omitempty"`
	Slug        *string                  `json:"slug,omitempty"`
	Views       int64                    `json:"views"`
	Rating      float64                  `json:"rating"`
	Tags        []tagResponse            `json:"tags"`
	Chapters    []chapterSummaryResponse `json:"chapters"`
	CreatedAt   string                   `json:"createdAt"`
	UpdatedAt   string                   `json:"updatedAt"`
}

type chapterSummaryResponse struct {
	ID            string  `json:"id"`
	ChapterNumber int     `json:"chapterNumber"`
	Title         *string `json:"title,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}

func NewMangaHandler(service service.MangaService) *MangaHandler {
	return &MangaHandler{service: service}
}

func (h *MangaHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/manga", h.List)
	g.GET("/manga/:id", h.Get)
}

func (h *MangaHandler) RegisterAdminRoutes(g *echo.Group) {
	g.POST("/manga", h.Create)
	g.PUT("/manga/:id", h.Update)
	g.DELETE("/manga/:id", h.Delete)
}

func (h *MangaHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}

	response := make([]mangaListItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toMangaListItemResponse(item))
	}
	return c.JSON(http.StatusOK, response)
}

func (h *MangaHandler) Get(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	detail, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toMangaDetailResponse(detail))
}

func (h *MangaHandler) Create(c echo.Context) error {
	var req mangaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	detail, err := h.service.Create(c.Request().Context(), toMangaInput(req))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toMangaDetailResponse(detail))
}

func (h *MangaHandler) Update(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	var req mangaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	detail, err := h.service.Update(c.Request().Context(), id, toMangaInput(req))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toMangaDetailResponse(detail))
}

func (h *MangaHandler) Delete(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "manga deleted"})
}

func toMangaInput(req mangaRequest) service.MangaInput {
	return service.MangaInput{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Slug:        req.Slug,
		Rating:      req.Rating,
		TagIDs:      req.TagIDs,
	}
}

func toMangaListItemResponse(item service.MangaListItem) mangaListItemResponse {
	return mangaListItemResponse{
		ID:           item.ID,
		Title:        item.Title,
		Author:       item.Author,
		Description:  item.Description,
		ImageURL:     item.ImageURL,
		Slug:         item.Slug,
		Views:        item.Views,
		Rating:       item.Rating,
		Tags:         toTagResponses(item.Tags),
		ChapterCount: item.ChapterCount,
		CreatedAt:    item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    item.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toMangaDetailResponse(detail service.MangaDetail) mangaDetailResponse {
	chapters := make([]chapterSummaryResponse, 0, len(detail.Chapters))
	for _, chapter := range detail.Chapters {
		chapters = append(chapters, chapterSummaryResponse{
			ID:            chapter.ID,
			ChapterNumber: chapter.ChapterNumber,
			Title:         chapter.Title,
			CreatedAt:     chapter.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return mangaDetailResponse{
		ID:          detail.ID,
		Title:       detail.Title,
		Author:      detail.Author,
		Description: detail.Description,
		ImageURL:    detail.ImageURL,
		Slug:        detail.Slug,
		Views:       detail.Views,
		Rating:      detail.Rating,
		Tags:        toTagResponses(detail.Tags),
		Chapters:    chapters,
		CreatedAt:   detail.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   detail.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toTagResponses(tags []model.Tag) []tagResponse {
	response := make([]tagResponse, 0, len(tags))
	for _, tag := range tags {
		response = append(response, toTagResponse(tag))
	}
	return response
}
