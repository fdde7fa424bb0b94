package handlers

import (
	"net/http"

	"hireboard/internal/audit"

	"github.com/labstack/echo/v4"
)

// AuditLogHandler returns the session's audit trail, newest first
func AuditLogHandler(trail *audit.Log) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, trail.Entries())
	}
}
