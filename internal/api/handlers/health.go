package handlers

import (
	"context"
	"net/http"
	"time"

	"hireboard/internal/store"
	"hireboard/pkg/models"

	"github.com/labstack/echo/v4"
)

var startTime = time.Now()

const version = "1.0.0"

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   version,
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	}

	return c.JSON(http.StatusOK, response)
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	response := models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   version,
		Uptime:    time.Since(startTime),
	}

	return c.JSON(http.StatusOK, response)
}

// StatusHandler provides detailed service status including the storage backend
func StatusHandler(st store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		checks := map[string]string{
			"api":     "operational",
			"storage": "operational",
		}

		status := "operational"
		if pinger, ok := st.(interface{ Ping(context.Context) error }); ok {
			ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
			defer cancel()
			if err := pinger.Ping(ctx); err != nil {
				checks["storage"] = "unreachable"
				status = "degraded"
			}
		}

		response := models.HealthResponse{
			Status:    status,
			Timestamp: time.Now(),
			Version:   version,
			Uptime:    time.Since(startTime),
			Checks:    checks,
		}

		return c.JSON(http.StatusOK, response)
	}
}
