package handlers

import (
	"net/http"
	"strconv"

	"hireboard/internal/dashboard"
	"hireboard/internal/logging"
	"hireboard/pkg/models"
	"hireboard/pkg/utils"

	"github.com/labstack/echo/v4"
)

// OpenNewJobFormHandler starts the creation flow
func OpenNewJobFormHandler(dash *dashboard.Dashboard) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		if err := dash.OpenNewJobForm(); err != nil {
			return respondError(c, reqID, err)
		}
		return c.JSON(http.StatusOK, dash.View())
	}
}

// SelectTemplateHandler resolves the template picker. An empty template id
// opens a blank form.
func SelectTemplateHandler(dash *dashboard.Dashboard) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		var req models.SelectTemplateRequest
		if err := bindAndValidate(c, &req); err != nil {
			return respondError(c, reqID, err)
		}

		if err := dash.SelectTemplate(req.TemplateID); err != nil {
			return respondError(c, reqID, err)
		}

		view, err := dash.FormView()
		if err != nil {
			return respondError(c, reqID, err)
		}
		return c.JSON(http.StatusOK, view)
	}
}

// CancelTemplatePickerHandler abandons the creation flow
func CancelTemplatePickerHandler(dash *dashboard.Dashboard) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		if err := dash.CancelTemplatePicker(); err != nil {
			return respondError(c, reqID, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// OpenEditJobFormHandler opens the form over an existing posting
func OpenEditJobFormHandler(dash *dashboard.Dashboard) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		if err := dash.OpenEditJobForm(c.Param("id")); err != nil {
			return respondError(c, reqID, err)
		}

		view, err := dash.FormView()
		if err != nil {
			return respondError(c, reqID, err)
		}
		return c.JSON(http.StatusOK, view)
	}
}

// GetFormHandler returns the active form's working copy
func GetFormHandler(dash *dashboard.Dashboard) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		view, err := dash.FormView()
		if err != nil {
			return respondError(c, reqID, err)
		}
		return c.JSON(http.StatusOK, view)
	}
}

// UpdateFieldHandler merges one field value into the working copy
func UpdateFieldHandler(dash *dashboard.Dashboard) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		var req models.UpdateFieldRequest
		if err := bindAndValidate(c, &req); err != nil {
			return respondError(c, reqID, err)
		}

		if err := dash.UpdateFormField(req.Name, req.Value); err != nil {
			return respondError(c, reqID, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// UpdateSalaryHandler updates one part of the nested salary block
func UpdateSalaryHandler(dash *dashboard.Dashboard) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		var req models.UpdateSalaryRequest
		if err := bindAndValidate(c, &req); err != nil {
			return respondError(c, reqID, err)
		}

		if err := dash.UpdateFormSalary(req.Part, req.Value); err != nil {
			return respondError(c, reqID, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// AddCustomFieldHandler appends an empty custom-field pair
func AddCustomFieldHandler(dash *dashboard.Dashboard) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		if err := dash.AddFormCustomField(); err != nil {
			return respondError(c, reqID, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// UpdateCustomFieldHandler rewrites one custom-field pair by list index
func UpdateCustomFieldHandler(dash *dashboard.Dashboard) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			return respondError(c, reqID, utils.NewBadRequestError("invalid custom field index"))
		}

		var req models.UpdateCustomFieldRequest
		if err := bindAndValidate(c, &req); err != nil {
			return respondError(c, reqID, err)
		}

		if err := dash.UpdateFormCustomField(index, req.Field, req.Text); err != nil {
			return respondError(c, reqID, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// RemoveCustomFieldHandler removes one custom-field pair by list index
func RemoveCustomFieldHandler(dash *dashboard.Dashboard) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			return respondError(c, reqID, utils.NewBadRequestError("invalid custom field index"))
		}

		if err := dash.RemoveFormCustomField(index); err != nil {
			return respondError(c, reqID, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// PreviewFormHandler validates the working copy and opens the preview overlay
func PreviewFormHandler(dash *dashboard.Dashboard) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		preview, err := dash.PreviewForm()
		if err != nil {
			return respondError(c, reqID, err)
		}
		return c.JSON(http.StatusOK, preview)
	}
}

// SubmitFormHandler finalizes the form as a draft or a published posting
func SubmitFormHandler(dash *dashboard.Dashboard) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.LogWithRequestID(reqID)

		var req models.SubmitRequest
		if err := bindAndValidate(c, &req); err != nil {
			return respondError(c, reqID, err)
		}

		result, err := dash.SubmitForm(c.Request().Context(), req.IsDraft)
		if err != nil {
			return respondError(c, reqID, err)
		}

		logger.Info("Form submitted", map[string]interface{}{
			"job_id":   result.Posting.ID,
			"is_draft": result.IsDraft,
			"created":  result.Created,
		})

		status := http.StatusOK
		if result.Created {
			status = http.StatusCreated
		}
		return c.JSON(status, result)
	}
}

// CloseFormHandler discards the working copy without submitting
func CloseFormHandler(dash *dashboard.Dashboard) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		if err := dash.CloseForm(); err != nil {
			return respondError(c, reqID, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// SaveTemplateHandler snapshots the working copy as a reusable template
func SaveTemplateHandler(dash *dashboard.Dashboard) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		t, err := dash.SaveFormAsTemplate()
		if err != nil {
			return respondError(c, reqID, err)
		}
		return c.JSON(http.StatusCreated, t)
	}
}

// ListTemplatesHandler returns the saved templates
func ListTemplatesHandler(dash *dashboard.Dashboard) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, dash.Templates())
	}
}

// CreateAnotherHandler re-enters the creation flow from the confirmation
func CreateAnotherHandler(dash *dashboard.Dashboard) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		if err := dash.CreateAnother(); err != nil {
			return respondError(c, reqID, err)
		}
		return c.JSON(http.StatusOK, dash.View())
	}
}

// CloseConfirmationHandler dismisses the confirmation message
func CloseConfirmationHandler(dash *dashboard.Dashboard) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		if err := dash.CloseConfirmation(); err != nil {
			return respondError(c, reqID, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
