package assistant

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/talenthive/hr-assistant-go/internal/domain/attendance"
	"github.com/talenthive/hr-assistant-go/internal/domain/employee"
)

// teamDayLimit caps the per-day listings in team summaries so a large team
// stays readable.
const teamDayLimit = 5

type attendanceStats struct {
	presentDays  []attendance.Event
	absentDays   []attendance.Event
	missingPunch []attendance.Event
	lateComings  []attendance.Event
}

func collectStats(events []attendance.Event) attendanceStats {
	var stats attendanceStats
	for _, e := range events {
		switch e.Status {
		case attendance.StatusPresent:
			stats.presentDays = append(stats.presentDays, e)
		case attendance.StatusAbsent:
			stats.absentDays = append(stats.absentDays, e)
		}
		if e.MissingPunch() {
			stats.missingPunch = append(stats.missingPunch, e)
		}
		if e.Late {
			stats.lateComings = append(stats.lateComings, e)
		}
	}
	return stats
}

// FormatPersonalAttendance renders one employee's attendance window as a
// readable summary with per-day absent, missing-punch and late listings.
func FormatPersonalAttendance(events []attendance.Event, rng attendance.DateRange, now time.Time) string {
	if len(events) == 0 {
		return "No attendance data available for the requested period."
	}

	stats := collectStats(events)

	var b strings.Builder
	fmt.Fprintf(&b, "Here's your attendance record for %s:\n", rng.Describe(now))
	fmt.Fprintf(&b, "* Total Present Days: %d\n", len(stats.presentDays))

	fmt.Fprintf(&b, "* Total Absent Days: %d\n", len(stats.absentDays))
	writeDayList(&b, stats.absentDays, 0, false)

	fmt.Fprintf(&b, "* Total Missing Check In/Out: %d\n", len(stats.missingPunch))
	writeDayList(&b, stats.missingPunch, 0, false)

	fmt.Fprintf(&b, "* Late Comings: %d\n", len(stats.lateComings))
	writeDayList(&b, stats.lateComings, 0, true)

	b.WriteString(personalAnalysis(stats))
	return b.String()
}

// FormatTeamAttendance renders a manager's team attendance window, one
// block per team member, followed by a team-wide analysis.
func FormatTeamAttendance(events []attendance.Event, roster employee.TeamRoster, rng attendance.DateRange, now time.Time) string {
	if len(events) == 0 {
		return "No team attendance data available for the requested period."
	}

	byEmployee := groupByEmployee(events, roster)

	var b strings.Builder
	fmt.Fprintf(&b, "Here's your team attendance record for %s:\n", rng.Describe(now))

	for _, member := range byEmployee {
		fmt.Fprintf(&b, "** %s - %s\n", member.name, member.id)
		stats := collectStats(member.events)

		fmt.Fprintf(&b, "* Total Present Days: %d\n", len(stats.presentDays))

		fmt.Fprintf(&b, "* Total Absent Days: %d\n", len(stats.absentDays))
		writeDayList(&b, stats.absentDays, teamDayLimit, false)

		fmt.Fprintf(&b, "* Total Missing Check In/Out: %d\n", len(stats.missingPunch))
		writeDayList(&b, stats.missingPunch, teamDayLimit, false)

		fmt.Fprintf(&b, "* Late Comings: %d\n", len(stats.lateComings))
		writeDayList(&b, stats.lateComings, teamDayLimit, true)
	}

	b.WriteString(teamAnalysis(byEmployee))
	return b.String()
}

// writeDayList prints one indented line per event, with the weekday name
// and, for late entries, the minutes. A non-zero limit truncates the list.
func writeDayList(b *strings.Builder, events []attendance.Event, limit int, withMinutes bool) {
	shown := events
	if limit > 0 && len(events) > limit {
		shown = events[:limit]
	}
	for _, e := range shown {
		if withMinutes {
			fmt.Fprintf(b, "   * %s - %s - %d min\n", e.Date, weekday(e.Date), e.LateMinutes)
		} else {
			fmt.Fprintf(b, "   * %s - %s\n", e.Date, weekday(e.Date))
		}
	}
	if limit > 0 && len(events) > limit {
		fmt.Fprintf(b, "   * ... and %d more days\n", len(events)-limit)
	}
}

func weekday(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "Unknown"
	}
	return t.Weekday().String()
}

func personalAnalysis(stats attendanceStats) string {
	var b strings.Builder
	b.WriteString("\nAttendance Analysis:\n")

	totalDays := len(stats.presentDays) + len(stats.absentDays)
	if totalDays > 0 {
		pct := int(math.Round(float64(len(stats.presentDays)) / float64(totalDays) * 100))
		switch {
		case pct >= 90:
			fmt.Fprintf(&b, "Excellent attendance rate! You've been present for %d%% of working days.\n", pct)
		case pct >= 80:
			fmt.Fprintf(&b, "Good attendance rate at %d%% of working days.\n", pct)
		case pct >= 70:
			fmt.Fprintf(&b, "Your attendance rate is %d%%, which could be improved.\n", pct)
		default:
			fmt.Fprintf(&b, "Your attendance rate is low at %d%%. Please try to improve.\n", pct)
		}
	}

	switch {
	case len(stats.lateComings) > 3:
		fmt.Fprintf(&b, "You have %d late arrivals. Please try to arrive on time.\n", len(stats.lateComings))
	case len(stats.lateComings) > 0:
		fmt.Fprintf(&b, "You have %d late arrival(s).\n", len(stats.lateComings))
	case len(stats.presentDays) > 0:
		b.WriteString("Great job arriving on time every day!\n")
	}

	if len(stats.missingPunch) > 0 {
		fmt.Fprintf(&b, "You have %d day(s) with missing check-in or check-out records.\n", len(stats.missingPunch))
	}

	return b.String()
}

type memberAttendance struct {
	id     string
	name   string
	events []attendance.Event
}

// groupByEmployee buckets events per employee, roster members first in
// roster order, stray employee ids after that in sorted order.
func groupByEmployee(events []attendance.Event, roster employee.TeamRoster) []memberAttendance {
	buckets := make(map[string][]attendance.Event)
	names := make(map[string]string)
	for _, e := range events {
		buckets[e.EmployeeID] = append(buckets[e.EmployeeID], e)
		if e.EmployeeName != "" {
			names[e.EmployeeID] = e.EmployeeName
		}
	}

	var out []memberAttendance
	seen := make(map[string]bool)
	for _, member := range roster.Members {
		evs, ok := buckets[member.EmployeeID]
		if !ok {
			continue
		}
		seen[member.EmployeeID] = true
		name := strings.TrimSpace(member.FirstName + " " + member.LastName)
		if name == "" {
			name = names[member.EmployeeID]
		}
		out = append(out, memberAttendance{id: member.EmployeeID, name: name, events: evs})
	}

	var rest []string
	for id := range buckets {
		if !seen[id] {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	for _, id := range rest {
		name := names[id]
		if name == "" {
			name = id
		}
		out = append(out, memberAttendance{id: id, name: name, events: buckets[id]})
	}
	return out
}

func teamAnalysis(members []memberAttendance) string {
	if len(members) == 0 {
		return ""
	}

	var present, absent, late, missing int
	for _, m := range members {
		stats := collectStats(m.events)
		present += len(stats.presentDays)
		absent += len(stats.absentDays)
		late += len(stats.lateComings)
		missing += len(stats.missingPunch)
	}

	var b strings.Builder
	b.WriteString("\nTeam Attendance Analysis:\n")

	totalDays := present + absent
	if totalDays > 0 {
		rate := int(math.Round(float64(present) / float64(totalDays) * 100))
		fmt.Fprintf(&b, "Overall team attendance rate: %d%%\n", rate)

		avgAbsences := math.Round(float64(absent)/float64(len(members))*10) / 10
		fmt.Fprintf(&b, "Average absences per team member: %.1f days\n", avgAbsences)

		avgLate := math.Round(float64(late)/float64(len(members))*10) / 10
		if avgLate > 0 {
			fmt.Fprintf(&b, "Average late arrivals per team member: %.1f\n", avgLate)
		}
	}
	if missing > 0 {
		fmt.Fprintf(&b, "Days with missing check-in or check-out across the team: %d\n", missing)
	}

	return b.String()
}
