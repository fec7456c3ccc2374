package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func parseUUIDParam(c echo.Context, name string) (string, error) {
	raw := c.Param(name)
	if _, err := uuid.Parse(raw); err != nil {
		return "", err
	}
	return raw, nil
}
