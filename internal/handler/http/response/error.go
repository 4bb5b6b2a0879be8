package response

import (
	"errors"
	"net/http"

	"github.com/talenthive/hr-assistant-go/internal/domain/attendance"
	"github.com/talenthive/hr-assistant-go/internal/domain/employee"
	"github.com/talenthive/hr-assistant-go/internal/domain/report"
	"github.com/talenthive/hr-assistant-go/internal/pkg/hrapi"
	"github.com/talenthive/hr-assistant-go/internal/pkg/validator"
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
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrUnauthorized):
		Forbidden(w, "Not authorized to access this data")
	case errors.Is(err, employee.ErrAmbiguousQuery):
		Clarification(w, "The request matches more than one employee", nil)
	case errors.Is(err, employee.ErrMissingDatabaseID):
		NotFound(w, "Employee database id not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidDateRange):
		BadRequest(w, "Invalid date range", nil)
	case errors.Is(err, attendance.ErrNoTeamMembers):
		NotFound(w, "No team members found")
	case errors.Is(err, attendance.ErrNoData):
		NotFound(w, "No attendance data for the requested period")

	// Report domain errors
	case errors.Is(err, report.ErrNotAuthorized):
		Forbidden(w, "Not authorized to access attendance reports")
	case errors.Is(err, report.ErrNoMatchingCompany):
		NotFound(w, "No matching companies found with the provided filter")
	case errors.Is(err, report.ErrUnknownReportType):
		BadRequest(w, "Unknown report type", nil)
	case errors.Is(err, report.ErrUnknownFormat):
		BadRequest(w, "Unknown export format", nil)

	// Upstream record source errors
	case errors.Is(err, hrapi.ErrUnavailable):
		BadGateway(w, "The HR system is unavailable, please retry shortly")
	case errors.Is(err, hrapi.ErrAuth):
		BadGateway(w, "Failed to authenticate with the HR system")
	case errors.Is(err, hrapi.ErrBadResponse):
		BadGateway(w, "The HR system returned an unexpected response")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
