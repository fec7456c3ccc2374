package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"truyen/backend/internal/model"
	"truyen/backend/internal/service"
)

type TagHandler struct {
	service service.TagService
}

type tagRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Color    string `json:"color"`
}

type tagResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Color     string `json:"color"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func NewTagHandler(service service.TagService) *TagHandler {
	return &TagHandler{service: service}
}

func (h *TagHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/tags", h.List)
}

func (h *TagHandler) RegisterAdminRoutes(g *echo.Group) {
	g.POST("/tags", h.Create)
	g.PUT("/tags/:id", h.Update)
	g.DELETE("/tags/:id", h.Delete)
}

func (h *TagHandler) List(c echo.Context) error {
	tags, err := h.service.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toTagResponses(tags))
}

func (h *TagHandler) Create(c echo.Context) error {
	var req tagRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	tag, err := h.service.Create(c.Request().Context(), service.TagInput{
		Name:     req.Name,
		Category: req.Category,
		Color:    req.Color,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toTagResponse(tag))
}

func (h *TagHandler) Update(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	var req tagRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	tag, err := h.service.Update(c.Request().Context(), id, service.TagInput{
		Name:     req.Name,
		Category: req.Category,
		Color:    req.Color,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toTagResponse(tag))
}

func (h *TagHandler) Delete(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "tag deleted"})
}

func toTagResponse(tag model.Tag) tagResponse {
	return tagResponse{
		ID:        tag.ID,
		Name:      tag.Name,
		Category:  tag.Category,
		Color:     tag.Color,
		CreatedAt: tag.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: tag.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
