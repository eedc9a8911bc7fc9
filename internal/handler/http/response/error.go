package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/insight"
	"github.com/cmlabs-hris/attendance-insights-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, insight.ErrInvalidDate):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, insight.ErrInvalidRange):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, insight.ErrRangeTooLong):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, insight.ErrInvalidGroupBy):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
