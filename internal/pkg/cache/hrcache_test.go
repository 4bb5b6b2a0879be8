package cache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talenthive/hr-assistant-go/internal/domain/attendance"
	"github.com/talenthive/hr-assistant-go/internal/domain/employee"
)

func newTestCache() *HRCache {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(NewMemoryStore(), DefaultTTLs(), logger)
}

func TestHRCache_TokenRoundtrip(t *testing.T) {
	ctx := context.Background()
	c := newTestCache()

	_, ok := c.Token(ctx, "NAS101")
	assert.False(t, ok)

	c.SetToken(ctx, "NAS101", "jwt-token")

	token, ok := c.Token(ctx, "NAS101")
	require.True(t, ok)
	assert.Equal(t, "jwt-token", token)

	_, ok = c.Token(ctx, "NAS102")
	assert.False(t, ok, "tokens are keyed per employee")
}

func TestHRCache_ProfileRoundtrip(t *testing.T) {
	ctx := context.Background()
	c := newTestCache()

	rec := employee.Record{
		EmployeeID: "NAS101",
		FirstName:  "Sarah",
		LastName:   "Johnson",
		Grade:      employee.GradeL2,
		Salary:     &employee.SalaryInfo{BasicSalary: 5000, NetSalary: 4200},
	}
	c.SetProfile(ctx, "NAS101", rec)

	got, ok := c.Profile(ctx, "NAS101")
	require.True(t, ok)
	assert.Equal(t, rec, got)
}

func TestHRCache_AttendanceKeyedByWindow(t *testing.T) {
	ctx := context.Background()
	c := newTestCache()

	week := attendance.DateRange{StartDate: "2025-03-03", EndDate: "2025-03-09"}
	month := attendance.DateRange{StartDate: "2025-03-01", EndDate: "2025-03-09"}
	events := []attendance.Event{{EmployeeID: "NAS101", Date: "2025-03-03", Status: attendance.StatusPresent}}

	c.SetAttendance(ctx, "NAS101", week, events)

	got, ok := c.Attendance(ctx, "NAS101", week)
	require.True(t, ok)
	assert.Equal(t, events, got)

	_, ok = c.Attendance(ctx, "NAS101", month)
	assert.False(t, ok, "an overlapping but different window is a miss")
}

func TestHRCache_InvalidateEmployee(t *testing.T) {
	ctx := context.Background()
	c := newTestCache()

	week := attendance.DateRange{StartDate: "2025-03-03", EndDate: "2025-03-09"}

	c.SetToken(ctx, "NAS101", "t1")
	c.SetProfile(ctx, "NAS101", employee.Record{EmployeeID: "NAS101"})
	c.SetDBID(ctx, "NAS101", "db-1")
	c.SetTeamRoster(ctx, "NAS101", employee.TeamRoster{MemberIDs: []string{"NAS102"}})
	c.SetAttendance(ctx, "NAS101", week, []attendance.Event{{EmployeeID: "NAS101"}})
	c.SetAttendance(ctx, "NAS101:team", week, []attendance.Event{{EmployeeID: "NAS102"}})

	c.SetToken(ctx, "NAS102", "t2")
	c.SetProfile(ctx, "NAS102", employee.Record{EmployeeID: "NAS102"})
	c.SetAttendance(ctx, "NAS102", week, []attendance.Event{{EmployeeID: "NAS102"}})

	require.NoError(t, c.InvalidateEmployee(ctx, "NAS101"))

	_, ok := c.Token(ctx, "NAS101")
	assert.False(t, ok)
	_, ok = c.Profile(ctx, "NAS101")
	assert.False(t, ok)
	_, ok = c.DBID(ctx, "NAS101")
	assert.False(t, ok)
	_, ok = c.TeamRoster(ctx, "NAS101")
	assert.False(t, ok)
	_, ok = c.Attendance(ctx, "NAS101", week)
	assert.False(t, ok)
	_, ok = c.Attendance(ctx, "NAS101:team", week)
	assert.False(t, ok, "team windows belong to the manager and must be swept")

	_, ok = c.Token(ctx, "NAS102")
	assert.True(t, ok, "other employees must be untouched")
	_, ok = c.Profile(ctx, "NAS102")
	assert.True(t, ok)
	_, ok = c.Attendance(ctx, "NAS102", week)
	assert.True(t, ok)
}

func TestHRCache_Stats(t *testing.T) {
	ctx := context.Background()
	c := newTestCache()

	week := attendance.DateRange{StartDate: "2025-03-03", EndDate: "2025-03-09"}

	c.SetToken(ctx, "NAS101", "t1")
	c.SetProfile(ctx, "NAS101", employee.Record{EmployeeID: "NAS101"})
	c.SetProfile(ctx, "NAS102", employee.Record{EmployeeID: "NAS102"})
	c.SetDBID(ctx, "NAS101", "db-1")
	c.SetTeamRoster(ctx, "NAS101", employee.TeamRoster{})
	c.SetAttendance(ctx, "NAS101", week, nil)

	stats, err := c.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{
		Tokens:      1,
		Profiles:    2,
		DBIDs:       1,
		TeamRosters: 1,
		Attendance:  1,
	}, stats)
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("store down")
}

func (failingStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("store down")
}

func (failingStore) Delete(context.Context, ...string) error { return errors.New("store down") }

func (failingStore) DeleteByPrefix(context.Context, string) error { return errors.New("store down") }

func (failingStore) CountByPrefix(context.Context, string) (int, error) {
	return 0, errors.New("store down")
}

func TestHRCache_BrokenStoreDegradesToMiss(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := New(failingStore{}, DefaultTTLs(), logger)

	c.SetToken(ctx, "NAS101", "t1")

	_, ok := c.Token(ctx, "NAS101")
	assert.False(t, ok, "store failures must read as misses, not errors")
}
