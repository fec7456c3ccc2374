package handler

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// clientIP extracts the caller's address from proxy headers.
// X-Forwarded-For may carry a chain; only the first hop counts.
func clientIP(c echo.Context) string {
	if forwarded := c.Request().Header.Get("X-Forwarded-For"); forwarded != "" {
		first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if first != "" {
			return first
		}
	}
	if realIP := c.Request().Header.Get("X-Real-Ip"); realIP != "" {
		return realIP
	}
	if cfIP := c.Request().Header.Get("Cf-Connecting-Ip"); cfIP != "" {
		return cfIP
	}
	return "unknown"
}
