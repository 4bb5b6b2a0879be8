package assistant

import (
	"context"

	"github.com/talenthive/hr-assistant-go/internal/domain/report"
	"github.com/talenthive/hr-assistant-go/internal/pkg/cache"
)

type AssistantService interface {
	// ResolveDataRequest interprets a free-text request, enforces the
	// requester's access level and returns the projected data.
	ResolveDataRequest(ctx context.Context, queryText, requesterID string) (Result, error)

	// GetAttendance returns the requester's own attendance, or the team's
	// when the requester manages one.
	GetAttendance(ctx context.Context, requesterID, dateSpec string) (AttendanceResult, error)

	// GenerateAttendanceReport builds the organization-wide rollup.
	// Restricted to the top access levels.
	GenerateAttendanceReport(ctx context.Context, requesterID string, req report.Request) (report.Result, error)

	InvalidateEmployee(ctx context.Context, employeeID string) error
	CacheStats(ctx context.Context) (cache.Stats, error)
}
