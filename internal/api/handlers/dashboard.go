package handlers

import (
	"net/http"

	"hireboard/internal/dashboard"
	"hireboard/internal/logging"
	"hireboard/pkg/models"

	"github.com/labstack/echo/v4"
)

// GetDashboardHandler returns the derived dashboard view
func GetDashboardHandler(dash *dashboard.Dashboard) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, dash.View())
	}
}

// SearchHandler sets the title search term
func SearchHandler(dash *dashboard.Dashboard) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		var req models.SearchRequest
		if err := bindAndValidate(c, &req); err != nil {
			return respondError(c, reqID, err)
		}

		dash.SetSearchTerm(req.Term)
		return c.JSON(http.StatusOK, dash.View())
	}
}

// FilterHandler sets the status filter
func FilterHandler(dash *dashboard.Dashboard) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		var req models.FilterRequest
		if err := bindAndValidate(c, &req); err != nil {
			return respondError(c, reqID, err)
		}

		if err := dash.SetFilterStatus(req.Status); err != nil {
			return respondError(c, reqID, err)
		}
		return c.JSON(http.StatusOK, dash.View())
	}
}

// PageHandler moves to a page of the filtered collection
func PageHandler(dash *dashboard.Dashboard) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		var req models.PageRequest
		if err := bindAndValidate(c, &req); err != nil {
			return respondError(c, reqID, err)
		}

		if err := dash.SetPage(req.Page); err != nil {
			return respondError(c, reqID, err)
		}
		return c.JSON(http.StatusOK, dash.View())
	}
}

// DeleteHandler removes a posting by id
func DeleteHandler(dash *dashboard.Dashboard) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.LogWithRequestID(reqID)

		id := c.Param("id")
		if err := dash.Delete(c.Request().Context(), id); err != nil {
			return respondError(c, reqID, err)
		}

		logger.Info("Job posting deleted", map[string]interface{}{"job_id": id})
		return c.NoContent(http.StatusNoContent)
	}
}

// DuplicateHandler clones a posting under a fresh identifier
func DuplicateHandler(dash *dashboard.Dashboard) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.LogWithRequestID(reqID)

		id := c.Param("id")
		duplicate, err := dash.Duplicate(c.Request().Context(), id)
		if err != nil {
			return respondError(c, reqID, err)
		}

		logger.Info("Job posting duplicated", map[string]interface{}{
			"source_id":    id,
			"duplicate_id": duplicate.ID,
		})
		return c.JSON(http.StatusCreated, duplicate)
	}
}

// ChangeStatusHandler moves a posting to a new status
func ChangeStatusHandler(dash *dashboard.Dashboard) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		var req models.ChangeStatusRequest
		if err := bindAndValidate(c, &req); err != nil {
			return respondError(c, reqID, err)
		}

		id := c.Param("id")
		if err := dash.ChangeStatus(c.Request().Context(), id, req.Status); err != nil {
			return respondError(c, reqID, err)
		}
		return c.JSON(http.StatusOK, dash.View())
	}
}

// OpenPreviewHandler opens the preview overlay over a stored posting
func OpenPreviewHandler(dash *dashboard.Dashboard) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		preview, err := dash.OpenPreview(c.Param("id"))
		if err != nil {
			return respondError(c, reqID, err)
		}
		return c.JSON(http.StatusOK, preview)
	}
}

// ClosePreviewHandler dismisses the preview overlay
func ClosePreviewHandler(dash *dashboard.Dashboard) echo.HandlerFunc {
	return func(c echo.Context) error {
		dash.ClosePreview()
		return c.NoContent(http.StatusNoContent)
	}
}
