package report

import (
	"strings"

	"github.com/talenthive/hr-assistant-go/internal/domain/attendance"
	"github.com/talenthive/hr-assistant-go/internal/pkg/validator"
)

// ========================================
// ORGANIZATION STRUCTURE
// ========================================

// Company, Branch and Department describe the organization structure as
// listed by the record source. Department groups mirror the upstream
// payload, where departments arrive nested under a grouping object.
type Company struct {
	ID       string   `json:"_id"`
	Name     string   `json:"name"`
	Branches []Branch `json:"branches"`
}

type Branch struct {
	ID          string       `json:"_id"`
	Name        string       `json:"branch_name"`
	Departments []Department `json:"departments"`
}

type Department struct {
	ID   string `json:"department_id"`
	Name string `json:"department_name"`
}

// ========================================
// ORGANIZED ATTENDANCE TREE
// ========================================

// OrgTree is the company→branch→department→employee rollup built per
// report request. It is transient and never persisted.
type OrgTree struct {
	Companies map[string]*CompanyNode `json:"companies"`
}

type CompanyNode struct {
	Name     string                 `json:"name"`
	Branches map[string]*BranchNode `json:"branches"`
}

type BranchNode struct {
	Name        string                     `json:"name"`
	Departments map[string]*DepartmentNode `json:"departments"`
}

type DepartmentNode struct {
	Name      string                   `json:"name"`
	Employees map[string]*EmployeeNode `json:"employees"`
}

type EmployeeNode struct {
	Name       string             `json:"name"`
	Attendance []attendance.Event `json:"attendance"`
}

// UnknownDepartmentName buckets events whose department id is not part of
// the organization structure.
const UnknownDepartmentName = "Unknown Department"

// ========================================
// REPORT REQUEST
// ========================================

// Type selects the summary shape.
type Type string

const (
	TypeAll     Type = "all"
	TypePresent Type = "present"
	TypeAbsent  Type = "absent"
	TypeLate    Type = "late"
)

// ParseType normalizes a report type, defaulting to "all" when empty.
func ParseType(s string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case "", TypeAll:
		return TypeAll, nil
	case TypePresent:
		return TypePresent, nil
	case TypeAbsent:
		return TypeAbsent, nil
	case TypeLate:
		return TypeLate, nil
	}
	return "", ErrUnknownReportType
}

// Filters narrows a report to one company and/or branch. Either value may
// be an identifier or a human-readable name; names are resolved against
// the organization structure before filtering.
type Filters struct {
	CompanyID    string `json:"company_id,omitempty"`
	BranchID     string `json:"branch_id,omitempty"`
	DepartmentID string `json:"department_id,omitempty"`
}

type Request struct {
	DateSpec string  `json:"date_range"`
	Type     string  `json:"report_type"`
	Filters  Filters `json:"filters"`
}

func (r *Request) Validate() error {
	var errs validator.ValidationErrors

	if _, err := ParseType(r.Type); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "report_type",
			Message: "report_type must be one of: all, present, absent, late",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// SUMMARIES
// ========================================

// StatusTally is the per-status breakdown for the full report. Late is an
// independent tally, not mutually exclusive with present.
type StatusTally struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	HalfDay int `json:"half_day"`
	Leave   int `json:"leave"`
	Weekend int `json:"weekend"`
	Holiday int `json:"holiday"`
	Late    int `json:"late"`
}

// Total counts every status-classified record. Late is excluded: it
// overlaps present rather than adding records of its own.
func (t StatusTally) Total() int {
	return t.Present + t.Absent + t.HalfDay + t.Leave + t.Weekend + t.Holiday
}

// FullSummary is the report shape for Type "all".
type FullSummary struct {
	TotalCompanies      int                  `json:"total_companies"`
	TotalBranches       int                  `json:"total_branches"`
	TotalDepartments    int                  `json:"total_departments"`
	TotalEmployees      int                  `json:"total_employees"`
	AttendanceStatus    StatusTally          `json:"attendance_status"`
	Companies           []CompanyFullSummary `json:"companies"`
	AverageWorkingHours float64              `json:"average_working_hours"`
	TotalWorkingHours   float64              `json:"total_working_hours"`
	DateRange           attendance.DateRange `json:"date_range"`
}

type CompanyFullSummary struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	TotalBranches  int     `json:"total_branches"`
	TotalEmployees int     `json:"total_employees"`
	AttendanceRate float64 `json:"attendance_rate"`
	LatePercentage float64 `json:"late_percentage"`
	PresentCount   int     `json:"present_count"`
	AbsentCount    int     `json:"absent_count"`
	LateCount      int     `json:"late_count"`
}

// StatusSummary is the narrower shape produced for the present, absent and
// late report types: one status counted and percentaged at every level.
type StatusSummary struct {
	Status         string                 `json:"status"`
	TotalMatched   int                    `json:"total_matched"`
	Percentage     float64                `json:"percentage"`
	TotalEmployees int                    `json:"total_employees"`
	Companies      []CompanyStatusSummary `json:"companies"`
}

type CompanyStatusSummary struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	MatchedCount int                   `json:"matched_count"`
	TotalRecords int                   `json:"total_records"`
	Percentage   float64               `json:"percentage"`
	Branches     []BranchStatusSummary `json:"branches"`
}

type BranchStatusSummary struct {
	ID           string                    `json:"id"`
	Name         string                    `json:"name"`
	MatchedCount int                       `json:"matched_count"`
	TotalRecords int                       `json:"total_records"`
	Percentage   float64                   `json:"percentage"`
	Departments  []DepartmentStatusSummary `json:"departments"`
}

type DepartmentStatusSummary struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	MatchedCount int     `json:"matched_count"`
	TotalRecords int     `json:"total_records"`
	Percentage   float64 `json:"percentage"`
}

// Result is the envelope returned by the report entry point. ReportID
// identifies one generated report in logs and export filenames.
type Result struct {
	Success   bool                 `json:"success"`
	ReportID  string               `json:"report_id"`
	Data      *OrgTree             `json:"data,omitempty"`
	Summary   any                  `json:"summary,omitempty"`
	DateRange attendance.DateRange `json:"date_range"`
	Filters   Filters              `json:"filters"`
	Type      Type                 `json:"report_type"`
	Message   string               `json:"message"`
}
