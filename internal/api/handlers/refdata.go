package handlers

import (
	"context"
	"errors"
	"net/http"

	"hireboard/internal/logging"
	"hireboard/internal/lookup"
	"hireboard/internal/refdata"
	"hireboard/pkg/models"
	"hireboard/pkg/utils"

	"github.com/labstack/echo/v4"
)

// RolesHandler returns the role options for the job title select
func RolesHandler(data *refdata.Data) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, data.RoleOptions())
	}
}

// SkillsHandler returns the skill options for the technical skills select
func SkillsHandler(data *refdata.Data) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, data.SkillOptions())
	}
}

// CurrenciesHandler returns the currency codes for the salary block
func CurrenciesHandler(data *refdata.Data) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, data.Currencies)
	}
}

// CitySearchHandler answers a delayed city lookup for the location selects.
// Only the latest in-flight search resolves; a superseded one is a conflict.
func CitySearchHandler(resolver *lookup.CityResolver) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.LogWithRequestID(reqID)

		query := c.QueryParam("q")

		result, err := resolver.Search(c.Request().Context(), query)
		if err != nil {
			if errors.Is(err, lookup.ErrSuperseded) {
				logger.Debug("City search superseded", map[string]interface{}{"query": query})
				return respondError(c, reqID, utils.NewSupersededError("a newer city search is in flight"))
			}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return respondError(c, reqID, utils.NewBadRequestError("city search aborted"))
			}
			return respondError(c, reqID, err)
		}

		return c.JSON(http.StatusOK, models.CitySearchResponse{
			Query:     query,
			Options:   result.Options,
			Truncated: result.Truncated,
		})
	}
}
