package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"truyen/backend/internal/service"
)

type ViewHandler struct {
	service service.ViewService
}

type incrementViewsRequest struct {
	MangaID string `json:"mangaId"`
}

type incrementViewsResponse struct {
	Success bool `json:"success"`
}

func NewViewHandler(service service.ViewService) *ViewHandler {
	return &ViewHandler{service: service}
}

func (h *ViewHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/increment-views", h.Increment)
}

func (h *ViewHandler) Increment(c echo.Context) error {
	var req incrementViewsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	if err := h.service.Increment(c.Request().Context(), req.MangaID, clientIP(c)); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, incrementViewsResponse{Success: true})
}
