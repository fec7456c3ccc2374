package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"truyen/backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

type sensitiveErrorResponse struct {
	Error     string `json:"error"`
	Sensitive bool   `json:"sensitive"`
}

type rateLimitResponse struct {
	Success    bool   `json:"success"`
	Error      string `json:"error"`
	RetryAfter int    `json:"retryAfter"`
}

// writeServiceError maps service-layer errors onto HTTP responses.
// Unknown errors become an opaque 500 so internals never leak.
func writeServiceError(c echo.Context, err error) error {
	var rateErr *service.RateLimitError
	if errors.As(err, &rateErr) {
		secs := rateErr.RetryAfterSeconds()
		c.Response().Header().Set("Retry-After", strconv.Itoa(secs))
		return c.JSON(http.StatusTooManyRequests, rateLimitResponse{
			Success:    false,
			Error:      "rate limit exceeded",
			RetryAfter: secs,
		})
	}

	switch {
	case errors.Is(err, service.ErrInappropriate):
		return c.JSON(http.StatusBadRequest, sensitiveErrorResponse{
			Error:     "inappropriate content",
			Sensitive: true,
		})
	case errors.Is(err, service.ErrInvalid):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	case errors.Is(err, service.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	case errors.Is(err, service.ErrForbidden):
		return c.JSON(http.StatusForbidden, errorResponse{Error: "forbidden"})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})
	case errors.Is(err, service.ErrConflict):
		return c.JSON(http.StatusConflict, errorResponse{Error: "conflict"})
	default:
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
