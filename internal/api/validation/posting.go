package validation

import (
	"github.com/go-playground/validator/v10"

	"hireboard/pkg/models"
)

// ValidatePostingStatus restricts a field to the known posting statuses
func ValidatePostingStatus(fl validator.FieldLevel) bool {
	return models.PostingStatus(fl.Field().String()).Valid()
}

// ValidateStatusFilter allows "all" in addition to the posting statuses
func ValidateStatusFilter(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "all" || models.PostingStatus(value).Valid()
}

// RegisterDashboardValidators registers all dashboard-related custom validators
func RegisterDashboardValidators(v *validator.Validate) {
	v.RegisterValidation("posting_status", ValidatePostingStatus)
	v.RegisterValidation("status_filter", ValidateStatusFilter)
}
