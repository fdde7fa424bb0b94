package handlers

import (
	"errors"
	"net/http"
	"time"

	"hireboard/internal/api/validation"
	"hireboard/pkg/models"
	"hireboard/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterDashboardValidators(v)
	return v
}

// requestID pulls the request ID set by the validation middleware, minting a
// fresh one for requests that bypassed it
func requestID(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok && id != "" {
		return id
	}
	return utils.GenerateRequestID()
}

// respondError maps an application error onto the wire error shape. Errors
// carrying an HTTP code keep it; anything else is an internal error.
func respondError(c echo.Context, reqID string, err error) error {
	var ce *utils.CustomError
	if errors.As(err, &ce) {
		return c.JSON(ce.Code, models.ErrorResponse{
			Error:     errorSlug(ce.Code),
			Message:   ce.Error(),
			RequestID: reqID,
			Timestamp: time.Now(),
		})
	}

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:     "internal_error",
		Message:   err.Error(),
		RequestID: reqID,
		Timestamp: time.Now(),
	})
}

func errorSlug(code int) string {
	switch code {
	case http.StatusBadRequest:
		return "invalid_request"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusConflict:
		return "conflict"
	default:
		return "internal_error"
	}
}

// bindAndValidate decodes the request body into req and runs struct
// validation, returning an application error for the caller to respond with
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return utils.NewBadRequestError("invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return utils.NewValidationError(err.Error())
	}
	return nil
}
