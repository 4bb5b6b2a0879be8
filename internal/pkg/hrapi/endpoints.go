package hrapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/talenthive/hr-assistant-go/internal/domain/attendance"
	"github.com/talenthive/hr-assistant-go/internal/domain/employee"
	"github.com/talenthive/hr-assistant-go/internal/domain/report"
)

// FetchProfile loads the full employee record for the authenticated
// employee.
func (c *Client) FetchProfile(ctx context.Context, token, employeeID string) (*employee.Record, error) {
	var rec employee.Record
	path := "/employees/" + url.PathEscape(employeeID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &rec); err != nil {
		return nil, fmt.Errorf("fetch profile %s: %w", employeeID, err)
	}
	if rec.EmployeeID == "" {
		rec.EmployeeID = employeeID
	}
	return &rec, nil
}

// FetchTeamRoster lists the direct reports of a manager.
func (c *Client) FetchTeamRoster(ctx context.Context, token, managerID string) (*employee.TeamRoster, error) {
	var wire struct {
		Members []struct {
			EmployeeID string `json:"empId"`
			FirstName  string `json:"firstName"`
			LastName   string `json:"lastName"`
			Position   string `json:"position"`
		} `json:"teamMembers"`
	}
	path := "/employees/" + url.PathEscape(managerID) + "/team"
	if err := c.do(ctx, http.MethodGet, path, token, nil, &wire); err != nil {
		return nil, fmt.Errorf("fetch team of %s: %w", managerID, err)
	}

	roster := &employee.TeamRoster{
		Members:   make([]employee.TeamMember, 0, len(wire.Members)),
		MemberIDs: make([]string, 0, len(wire.Members)),
	}
	for _, m := range wire.Members {
		if m.EmployeeID == "" {
			continue
		}
		roster.Members = append(roster.Members, employee.TeamMember{
			EmployeeID: m.EmployeeID,
			FirstName:  m.FirstName,
			LastName:   m.LastName,
			Position:   m.Position,
		})
		roster.MemberIDs = append(roster.MemberIDs, m.EmployeeID)
	}
	return roster, nil
}

// attendanceWire is the upstream per-day attendance payload.
type attendanceWire struct {
	EmployeeID   string  `json:"empId"`
	EmployeeName string  `json:"employeeName"`
	CompanyID    string  `json:"companyId"`
	BranchID     string  `json:"branchId"`
	DepartmentID string  `json:"departmentId"`
	Date         string  `json:"date"`
	PunchIn      string  `json:"punchIn"`
	PunchOut     string  `json:"punchOut"`
	Status       string  `json:"status"`
	WorkingHours float64 `json:"workingHours"`
	Late         bool    `json:"isLate"`
	LateMinutes  int     `json:"lateMinutes"`
}

func (w attendanceWire) toEvent() attendance.Event {
	return attendance.Event{
		EmployeeID:   w.EmployeeID,
		EmployeeName: w.EmployeeName,
		CompanyID:    w.CompanyID,
		BranchID:     w.BranchID,
		DepartmentID: w.DepartmentID,
		Date:         w.Date,
		PunchIn:      parsePunch(w.Date, w.PunchIn),
		PunchOut:     parsePunch(w.Date, w.PunchOut),
		Status:       attendance.ParseStatus(w.Status),
		WorkingHours: w.WorkingHours,
		Late:         w.Late,
		LateMinutes:  w.LateMinutes,
	}
}

// parsePunch accepts the two timestamp shapes the HR system emits: a full
// RFC 3339 instant, or a bare clock time which is combined with the event
// date.
func parsePunch(date, raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	for _, layout := range []string{"2006-01-02 15:04:05", "15:04:05", "15:04"} {
		value := raw
		if !strings.Contains(layout, "-") {
			value = date + " " + raw
			layout = "2006-01-02 " + layout
		}
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}

// FetchAttendance loads attendance events for one or more employees over
// the given window.
func (c *Client) FetchAttendance(ctx context.Context, token string, employeeIDs []string, rng attendance.DateRange) ([]attendance.Event, error) {
	payload := struct {
		EmployeeIDs []string `json:"empIds"`
		StartDate   string   `json:"startDate"`
		EndDate     string   `json:"endDate"`
	}{EmployeeIDs: employeeIDs, StartDate: rng.StartDate, EndDate: rng.EndDate}

	var wire []attendanceWire
	if err := c.do(ctx, http.MethodPost, "/attendance/search", token, payload, &wire); err != nil {
		return nil, fmt.Errorf("fetch attendance: %w", err)
	}

	events := make([]attendance.Event, 0, len(wire))
	for _, w := range wire {
		events = append(events, w.toEvent())
	}
	return events, nil
}

// FetchCompanyAttendance loads every attendance event recorded for a
// company over the window. Used by the report pipeline.
func (c *Client) FetchCompanyAttendance(ctx context.Context, token, companyID string, rng attendance.DateRange) ([]attendance.Event, error) {
	path := fmt.Sprintf("/attendance/company/%s?startDate=%s&endDate=%s",
		url.PathEscape(companyID), url.QueryEscape(rng.StartDate), url.QueryEscape(rng.EndDate))

	var wire []attendanceWire
	if err := c.do(ctx, http.MethodGet, path, token, nil, &wire); err != nil {
		return nil, fmt.Errorf("fetch company attendance %s: %w", companyID, err)
	}

	events := make([]attendance.Event, 0, len(wire))
	for _, w := range wire {
		ev := w.toEvent()
		if ev.CompanyID == "" {
			ev.CompanyID = companyID
		}
		events = append(events, ev)
	}
	return events, nil
}

// FetchOrgStructure loads the company, branch and department tree of an
// organization.
func (c *Client) FetchOrgStructure(ctx context.Context, token, organizationID string) ([]report.Company, error) {
	var wire struct {
		Companies []struct {
			ID       string `json:"_id"`
			Name     string `json:"name"`
			Branches []struct {
				ID               string `json:"_id"`
				Name             string `json:"branchName"`
				DepartmentGroups []struct {
					Departments []struct {
						ID   string `json:"departmentId"`
						Name string `json:"departmentName"`
					} `json:"departments"`
				} `json:"departmentGroups"`
			} `json:"branches"`
		} `json:"companies"`
	}
	path := "/organizations/" + url.PathEscape(organizationID) + "/structure"
	if err := c.do(ctx, http.MethodGet, path, token, nil, &wire); err != nil {
		return nil, fmt.Errorf("fetch org structure %s: %w", organizationID, err)
	}

	companies := make([]report.Company, 0, len(wire.Companies))
	for _, wc := range wire.Companies {
		company := report.Company{ID: wc.ID, Name: wc.Name}
		for _, wb := range wc.Branches {
			branch := report.Branch{ID: wb.ID, Name: wb.Name}
			for _, group := range wb.DepartmentGroups {
				for _, wd := range group.Departments {
					branch.Departments = append(branch.Departments, report.Department{
						ID:   wd.ID,
						Name: wd.Name,
					})
				}
			}
			company.Branches = append(company.Branches, branch)
		}
		companies = append(companies, company)
	}
	return companies, nil
}
