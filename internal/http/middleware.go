package http

import (
	nethttp "net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"truyen/backend/internal/service"
	"truyen/backend/pkg/logger"
)

// userIDKey is the echo context key the auth middleware stores the
// authenticated user id under.
const userIDKey = "userID"

// JWTAuthMiddleware rejects requests without a valid bearer token and
// stores the token's user id on the context.
func JWTAuthMiddleware(auth service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(nethttp.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			}

			token := strings.TrimPrefix(header, "Bearer ")
			userID, err := auth.ValidateToken(token)
			if err != nil {
				return c.JSON(nethttp.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			}

			c.Set(userIDKey, userID)
			return next(c)
		}
	}
}

// AdminOnly requires the authenticated user to carry the admin role.
// Must run after JWTAuthMiddleware.
func AdminOnly(auth service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get(userIDKey).(string)
			if userID == "" {
				return c.JSON(nethttp.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			}

			isAdmin, err := auth.IsAdmin(c.Request().Context(), userID)
			if err != nil {
				logger.Error("admin role check failed", "error", err)
				return c.JSON(nethttp.StatusInternalServerError, map[string]string{"error": "internal error"})
			}
			if !isAdmin {
				return c.JSON(nethttp.StatusForbidden, map[string]string{"error": "forbidden"})
			}

			return next(c)
		}
	}
}

// RequestLoggerMiddleware logs each request with latency and status.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			args := []any{
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", status,
				"latency", time.Since(start).String(),
			}

			switch {
			case status >= nethttp.StatusInternalServerError:
				logger.Error("request failed", args...)
			case status >= nethttp.StatusBadRequest:
				logger.Warn("request rejected", args...)
			default:
				logger.Info("request", args...)
			}
			return nil
		}
	}
}
