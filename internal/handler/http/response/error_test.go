package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talenthive/hr-assistant-go/internal/domain/attendance"
	"github.com/talenthive/hr-assistant-go/internal/domain/employee"
	"github.com/talenthive/hr-assistant-go/internal/domain/report"
	"github.com/talenthive/hr-assistant-go/internal/pkg/hrapi"
	"github.com/talenthive/hr-assistant-go/internal/pkg/validator"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"employee not found", employee.ErrEmployeeNotFound, http.StatusNotFound},
		{"wrapped employee not found", fmt.Errorf("lookup: %w", employee.ErrEmployeeNotFound), http.StatusNotFound},
		{"unauthorized", employee.ErrUnauthorized, http.StatusForbidden},
		{"ambiguous query", employee.ErrAmbiguousQuery, http.StatusOK},
		{"invalid date range", attendance.ErrInvalidDateRange, http.StatusBadRequest},
		{"no team members", attendance.ErrNoTeamMembers, http.StatusNotFound},
		{"report not authorized", report.ErrNotAuthorized, http.StatusForbidden},
		{"no matching company", report.ErrNoMatchingCompany, http.StatusNotFound},
		{"unknown report type", report.ErrUnknownReportType, http.StatusBadRequest},
		{"unknown format", report.ErrUnknownFormat, http.StatusBadRequest},
		{"upstream unavailable", hrapi.ErrUnavailable, http.StatusBadGateway},
		{"upstream auth", hrapi.ErrAuth, http.StatusBadGateway},
		{"upstream bad response", hrapi.ErrBadResponse, http.StatusBadGateway},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandleError_ValidationErrors(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "query", Message: "query is required"},
	}

	rec := httptest.NewRecorder()
	HandleError(rec, errs)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "query is required")
}
