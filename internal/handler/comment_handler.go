package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"truyen/backend/internal/model"
	"truyen/backend/internal/service"
)

type CommentHandler struct {
	service service.CommentService
}

type createCommentRequest struct {
	MangaID   *string `json:"mangaId"`
	ChapterID *string `json:"chapterId"`
	Nickname  string  `json:"nickname"`
	Content   string  `json:"content"`
	ParentID  *string `json:"parentId"`
}

type updateCommentRequest struct {
	IsHidden bool `json:"isHidden"`
}

type commentResponse struct {
	ID        string  `json:"id"`
	MangaID   *string `json:"mangaId,omitempty"`
	ChapterID *string `json:"chapterId,omitempty"`
	Nickname  string  `json:"nickname"`
	Content   string  `json:"content"`
	ParentID  *string `json:"parentId,omitempty"`
	IsHidden  bool    `json:"isHidden"`
	CreatedAt string  `json:"createdAt"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func NewCommentHandler(service service.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// RegisterRoutes wires the public comment endpoints.
func (h *CommentHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/comments", h.List)
	g.POST("/comments", h.Create)
}

// RegisterAdminRoutes wires the moderation endpoints. The group is
// expected to carry the auth middleware.
func (h *CommentHandler) RegisterAdminRoutes(g *echo.Group) {
	g.PUT("/comments/:id", h.Update)
	g.DELETE("/comments/:id", h.Delete)
}

func (h *CommentHandler) List(c echo.Context) error {
	var mangaID, chapterID *string
	if raw := c.QueryParam("mangaId"); raw != "" {
		mangaID = &raw
	}
	if raw := c.QueryParam("chapterId"); raw != "" {
		chapterID = &raw
	}

	comments, err := h.service.List(c.Request().Context(), mangaID, chapterID)
	if err != nil {
		return writeServiceError(c, err)
	}

	response := make([]commentResponse, 0, len(comments))
	for _, comment := range comments {
		response = append(response, toCommentResponse(comment))
	}
	return c.JSON(http.StatusOK, response)
}

func (h *CommentHandler) Create(c echo.Context) error {
	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	comment, err := h.service.Create(c.Request().Context(), service.CreateCommentInput{
		MangaID:   req.MangaID,
		ChapterID: req.ChapterID,
		Nickname:  req.Nickname,
		Content:   req.Content,
		ParentID:  req.ParentID,
		ClientIP:  clientIP(c),
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toCommentResponse(comment))
}

func (h *CommentHandler) Update(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	var req updateCommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	updated, err := h.service.SetHidden(c.Request().Context(), id, req.IsHidden)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toCommentResponse(updated))
}

func (h *CommentHandler) Delete(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "comment deleted"})
}

func toCommentResponse(comment model.Comment) commentResponse {
	return commentResponse{
		ID:        comment.ID,
		MangaID:   comment.MangaID,
		ChapterID: comment.ChapterID,
		Nickname:  comment.Nickname,
		Content:   comment.Content,
		ParentID:  comment.ParentID,
		IsHidden:  comment.IsHidden,
		CreatedAt: comment.CreatedAt.UTC().Format(time.RFC3339),
	}
}
