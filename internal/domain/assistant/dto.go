package assistant

import (
	"github.com/talenthive/hr-assistant-go/internal/domain/attendance"
	"github.com/talenthive/hr-assistant-go/internal/domain/employee"
	"github.com/talenthive/hr-assistant-go/internal/domain/query"
	"github.com/talenthive/hr-assistant-go/internal/pkg/validator"
)

// QueryRequest is the body of the assistant query endpoint.
type QueryRequest struct {
	Query string `json:"query"`
}

func (r *QueryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Query == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "query",
			Message: "query is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Result is the outcome of resolving a free-text data request. A denied or
// unresolvable request is reported with Success false and a message, never
// with partial data.
type Result struct {
	Success          bool               `json:"success"`
	Query            query.ParsedQuery  `json:"query"`
	Data             *employee.Record   `json:"data,omitempty"`
	Attendance       []attendance.Event `json:"attendance,omitempty"`
	FormattedSummary string             `json:"formatted_summary,omitempty"`
	Message          string             `json:"message"`
}

// AttendanceScope states whose attendance an AttendanceResult covers.
type AttendanceScope string

const (
	ScopePersonal AttendanceScope = "personal"
	ScopeTeam     AttendanceScope = "team"
)

// AttendanceResult is the outcome of a personal or team attendance lookup.
type AttendanceResult struct {
	Success          bool                 `json:"success"`
	Scope            AttendanceScope      `json:"scope"`
	DateRange        attendance.DateRange `json:"date_range"`
	Events           []attendance.Event   `json:"events,omitempty"`
	FormattedSummary string               `json:"formatted_summary,omitempty"`
	Message          string               `json:"message,omitempty"`
}
