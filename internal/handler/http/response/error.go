package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/hris-web-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-web-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hris-web-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/flash"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/validator"
)

// Problem is the user-facing reading of an error
type Problem struct {
	Status  int
	Code    string
	Message string
}

// Describe maps domain and HR API errors to a status and a message that is
// safe to show. HR API messages are passed through verbatim.
func Describe(err error) Problem {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return Problem{http.StatusUnprocessableEntity, "VALIDATION_ERROR", validationErrs.Error()}
	}

	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.Status
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		return Problem{status, "API_ERROR", apiErr.Message}
	}

	switch {
	case errors.Is(err, apiclient.ErrNoSession):
		return Problem{http.StatusUnauthorized, "UNAUTHORIZED", "Session required"}
	case errors.Is(err, apiclient.ErrServiceUnavailable):
		return Problem{http.StatusBadGateway, "BAD_GATEWAY", "The HR service is unavailable, please try again"}

	// User domain errors
	case errors.Is(err, user.ErrManageAccessRequired):
		return Problem{http.StatusForbidden, "FORBIDDEN", "Only administrators can manage employees"}
	case errors.Is(err, user.ErrInsufficientPermissions):
		return Problem{http.StatusForbidden, "FORBIDDEN", "Insufficient permissions"}
	case errors.Is(err, user.ErrIdentityPending):
		return Problem{http.StatusServiceUnavailable, "IDENTITY_PENDING", "Your profile is still loading"}

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		return Problem{http.StatusNotFound, "NOT_FOUND", "Employee not found"}
	case errors.Is(err, employee.ErrDeleteNotConfirmed):
		return Problem{http.StatusBadRequest, "BAD_REQUEST", "Deletion must be confirmed"}
	case errors.Is(err, employee.ErrConfirmationMismatch), errors.Is(err, flash.ErrConfirmationInvalid):
		return Problem{http.StatusBadRequest, "BAD_REQUEST", "Confirmation expired, please try again"}

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		return Problem{http.StatusNotFound, "NOT_FOUND", "Holiday not found"}
	}

	return Problem{http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "An unexpected error occurred"}
}

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	p := Describe(err)
	switch p.Status {
	case http.StatusUnauthorized:
		Unauthorized(w, p.Message)
	case http.StatusForbidden:
		Forbidden(w, p.Message)
	case http.StatusNotFound:
		NotFound(w, p.Message)
	case http.StatusConflict:
		Conflict(w, p.Message)
	case http.StatusInternalServerError:
		InternalServerError(w, p.Message)
	default:
		Status(w, p.Status, p.Code, p.Message)
	}
}
