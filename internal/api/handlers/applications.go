package handlers

import (
	"net/http"

	"hireboard/internal/applications"
	"hireboard/pkg/models"

	"github.com/labstack/echo/v4"
)

// ListCandidatesHandler returns every candidate with its review state
func ListCandidatesHandler(mgr *applications.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, mgr.Candidates())
	}
}

// CandidateStatusHandler moves a candidate to a new review status
func CandidateStatusHandler(mgr *applications.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		var req models.CandidateStatusRequest
		if err := bindAndValidate(c, &req); err != nil {
			return respondError(c, reqID, err)
		}

		if err := mgr.UpdateStatus(c.Param("id"), req.Status); err != nil {
			return respondError(c, reqID, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// ToggleShortlistHandler flips a candidate's shortlist flag
func ToggleShortlistHandler(mgr *applications.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		shortlisted, err := mgr.ToggleShortlist(c.Param("id"))
		if err != nil {
			return respondError(c, reqID, err)
		}
		return c.JSON(http.StatusOK, map[string]bool{"shortlisted": shortlisted})
	}
}
