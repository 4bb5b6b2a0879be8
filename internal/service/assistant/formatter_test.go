package assistant

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/talenthive/hr-assistant-go/internal/domain/attendance"
	"github.com/talenthive/hr-assistant-go/internal/domain/employee"
)

func punchAt(date string, hour int) *time.Time {
	t, _ := time.Parse("2006-01-02", date)
	t = t.Add(time.Duration(hour) * time.Hour)
	return &t
}

func TestFormatPersonalAttendance(t *testing.T) {
	rng := attendance.DateRange{StartDate: "2025-03-03", EndDate: "2025-03-07"}
	events := []attendance.Event{
		{Date: "2025-03-03", Status: attendance.StatusPresent, PunchIn: punchAt("2025-03-03", 9), PunchOut: punchAt("2025-03-03", 17)},
		{Date: "2025-03-04", Status: attendance.StatusPresent, PunchIn: punchAt("2025-03-04", 9), PunchOut: punchAt("2025-03-04", 17), Late: true, LateMinutes: 20},
		{Date: "2025-03-05", Status: attendance.StatusPresent, PunchIn: punchAt("2025-03-05", 9)},
		{Date: "2025-03-06", Status: attendance.StatusAbsent},
		{Date: "2025-03-07", Status: attendance.StatusPresent, PunchIn: punchAt("2025-03-07", 9), PunchOut: punchAt("2025-03-07", 17)},
	}

	out := FormatPersonalAttendance(events, rng, testNow)

	assert.Contains(t, out, "Here's your attendance record for from 2025-03-03 to 2025-03-07:")
	assert.Contains(t, out, "* Total Present Days: 4")
	assert.Contains(t, out, "* Total Absent Days: 1")
	assert.Contains(t, out, "   * 2025-03-06 - Thursday")
	assert.Contains(t, out, "* Total Missing Check In/Out: 1")
	assert.Contains(t, out, "* Late Comings: 1")
	assert.Contains(t, out, "   * 2025-03-04 - Tuesday - 20 min")
	// 4 present of 5 working days rounds to 80.
	assert.Contains(t, out, "Good attendance rate at 80%")
	assert.Contains(t, out, "1 late arrival(s)")
	assert.Contains(t, out, "1 day(s) with missing check-in or check-out")
}

func TestFormatPersonalAttendance_Empty(t *testing.T) {
	out := FormatPersonalAttendance(nil, attendance.DateRange{}, testNow)
	assert.Equal(t, "No attendance data available for the requested period.", out)
}

func TestFormatTeamAttendance(t *testing.T) {
	rng := attendance.DateRange{StartDate: "2025-03-03", EndDate: "2025-03-07"}
	roster := employee.TeamRoster{
		Members: []employee.TeamMember{
			{EmployeeID: "NAS101", FirstName: "Sarah", LastName: "Johnson"},
			{EmployeeID: "NAS102", FirstName: "James", LastName: "Lee"},
		},
		MemberIDs: []string{"NAS101", "NAS102"},
	}
	events := []attendance.Event{
		{EmployeeID: "NAS101", Date: "2025-03-03", Status: attendance.StatusPresent, PunchIn: punchAt("2025-03-03", 9), PunchOut: punchAt("2025-03-03", 17)},
		{EmployeeID: "NAS101", Date: "2025-03-04", Status: attendance.StatusAbsent},
		{EmployeeID: "NAS102", Date: "2025-03-03", Status: attendance.StatusPresent, PunchIn: punchAt("2025-03-03", 9), PunchOut: punchAt("2025-03-03", 17)},
	}

	out := FormatTeamAttendance(events, roster, rng, testNow)

	assert.Contains(t, out, "Here's your team attendance record for")
	assert.Contains(t, out, "** Sarah Johnson - NAS101")
	assert.Contains(t, out, "** James Lee - NAS102")

	// Roster order is preserved in the output.
	sarah := strings.Index(out, "NAS101")
	james := strings.Index(out, "NAS102")
	assert.Less(t, sarah, james)
}

func TestFormatTeamAttendance_TruncatesLongDayLists(t *testing.T) {
	roster := employee.TeamRoster{
		Members:   []employee.TeamMember{{EmployeeID: "NAS101", FirstName: "Sarah", LastName: "Johnson"}},
		MemberIDs: []string{"NAS101"},
	}
	var events []attendance.Event
	for day := 1; day <= 8; day++ {
		events = append(events, attendance.Event{
			EmployeeID: "NAS101",
			Date:       time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
			Status:     attendance.StatusAbsent,
		})
	}

	out := FormatTeamAttendance(events, roster, attendance.DateRange{StartDate: "2025-03-01", EndDate: "2025-03-08"}, testNow)

	assert.Contains(t, out, "* Total Absent Days: 8")
	assert.Contains(t, out, "   * ... and 3 more days")
	assert.NotContains(t, out, "2025-03-07", "days past the limit are not listed individually")
}

func TestFormatTeamAttendance_StrayEmployeeStillListed(t *testing.T) {
	roster := employee.TeamRoster{
		Members:   []employee.TeamMember{{EmployeeID: "NAS101", FirstName: "Sarah", LastName: "Johnson"}},
		MemberIDs: []string{"NAS101"},
	}
	events := []attendance.Event{
		{EmployeeID: "NAS101", Date: "2025-03-03", Status: attendance.StatusPresent, PunchIn: punchAt("2025-03-03", 9), PunchOut: punchAt("2025-03-03", 17)},
		{EmployeeID: "NAS999", EmployeeName: "Alex Doe", Date: "2025-03-03", Status: attendance.StatusPresent, PunchIn: punchAt("2025-03-03", 9), PunchOut: punchAt("2025-03-03", 17)},
	}

	out := FormatTeamAttendance(events, roster, attendance.DateRange{StartDate: "2025-03-03", EndDate: "2025-03-03"}, testNow)

	assert.Contains(t, out, "NAS999")
	assert.Contains(t, out, "Alex Doe")
}
