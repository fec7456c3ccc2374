package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"truyen/backend/internal/model"
	"truyen/backend/internal/service"
)

type ChapterHandler struct {
	service service.ChapterService
}

type chapterRequest struct {
	MangaID       string  `json:"mangaId"`
	ChapterNumber int     `json:"chapterNumber"`
	Title         *string `json:"title"`
	Content       string  `json:"content"`
}

type chapterResponse struct {
	ID            string  `json:"id"`
	MangaID       string  `json:"mangaId"`
	ChapterNumber int     `json:"chapterNumber"`
	Title         *string `json:"title,omitempty"`
	Content       string  `json:"content"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

func NewChapterHandler(service service.ChapterService) *ChapterHandler {
	return &ChapterHandler{service: service}
}

func (h *ChapterHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/chapters/:id", h.Get)
}

func (h *ChapterHandler) RegisterAdminRoutes(g *echo.Group) {
	g.POST("/chapters", h.Create)
	g.PUT("/chapters/:id", h.Update)
	g.DELETE("/chapters/:id", h.Delete)
}

func (h *ChapterHandler) Get(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	chapter, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toChapterResponse(chapter))
}

func (h *ChapterHandler) Create(c echo.Context) error {
	var req chapterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	chapter, err := h.service.Create(c.Request().Context(), toChapterInput(req))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toChapterResponse(chapter))
}

func (h *ChapterHandler) Update(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	var req chapterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	chapter, err := h.service.Update(c.Request().Context(), id, toChapterInput(req))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toChapterResponse(chapter))
}

func (h *ChapterHandler) Delete(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "chapter deleted"})
}

func toChapterInput(req chapterRequest) service.ChapterInput {
	return service.ChapterInput{
		MangaID:       req.MangaID,
		ChapterNumber: req.ChapterNumber,
		Title:         req.Title,
		Content:       req.Content,
	}
}

func toChapterResponse(chapter model.Chapter) chapterResponse {
	return chapterResponse{
		ID:            chapter.ID,
		MangaID:       chapter.MangaID,
		ChapterNumber: chapter.ChapterNumber,
		Title:         chapter.Title,
		Content:       chapter.Content,
		CreatedAt:     chapter.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     chapter.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
