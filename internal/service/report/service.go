// Package report rolls flat attendance events up into the organization
// structure and derives summary statistics from the rollup. Everything in
// this package is pure: inputs are never mutated and identical inputs
// produce identical output.
package report

import (
	"math"
	"sort"
	"strings"

	"github.com/talenthive/hr-assistant-go/internal/domain/attendance"
	"github.com/talenthive/hr-assistant-go/internal/domain/report"
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Organize files every attendance event under its company, branch and
// department. Company and branch filters accept an identifier or a
// case-insensitive exact name; names are resolved against the organization
// structure first. Events that fall outside the filtered structure are
// skipped, and events whose department is not part of the structure land
// in a synthetic "Unknown Department" bucket.
func (s *Service) Organize(events []attendance.Event, org []report.Company, filters report.Filters) (report.OrgTree, error) {
	companies := filterCompanies(org, filters.CompanyID)
	if filters.CompanyID != "" && len(companies) == 0 {
		return report.OrgTree{}, report.ErrNoMatchingCompany
	}

	tree := report.OrgTree{Companies: make(map[string]*report.CompanyNode)}

	// Per-branch routing info and the department id to name map, resolved
	// once up front.
	type branchInfo struct {
		name      string
		companyID string
	}
	branches := make(map[string]branchInfo)
	departmentNames := make(map[string]string)

	for _, company := range companies {
		node := &report.CompanyNode{
			Name:     company.Name,
			Branches: make(map[string]*report.BranchNode),
		}
		tree.Companies[company.ID] = node

		for _, branch := range company.Branches {
			if filters.BranchID != "" && !matches(filters.BranchID, branch.ID, branch.Name) {
				continue
			}
			branches[branch.ID] = branchInfo{name: branch.Name, companyID: company.ID}
			node.Branches[branch.ID] = &report.BranchNode{
				Name:        branch.Name,
				Departments: make(map[string]*report.DepartmentNode),
			}
			for _, dept := range branch.Departments {
				departmentNames[dept.ID] = dept.Name
			}
		}
	}

	if filters.BranchID != "" && len(branches) == 0 {
		return report.OrgTree{}, report.ErrNoMatchingCompany
	}

	for _, event := range events {
		info, ok := branches[event.BranchID]
		if !ok {
			continue
		}
		if event.CompanyID != "" && event.CompanyID != info.companyID {
			continue
		}

		departmentID := event.DepartmentID
		departmentName, known := departmentNames[departmentID]
		if !known {
			departmentName = report.UnknownDepartmentName
		}
		if filters.DepartmentID != "" && !matches(filters.DepartmentID, departmentID, departmentName) {
			continue
		}

		branchNode := tree.Companies[info.companyID].Branches[event.BranchID]
		deptNode, ok := branchNode.Departments[departmentID]
		if !ok {
			deptNode = &report.DepartmentNode{
				Name:      departmentName,
				Employees: make(map[string]*report.EmployeeNode),
			}
			branchNode.Departments[departmentID] = deptNode
		}

		empNode, ok := deptNode.Employees[event.EmployeeID]
		if !ok {
			empNode = &report.EmployeeNode{Name: event.EmployeeName}
			deptNode.Employees[event.EmployeeID] = empNode
		}
		empNode.Attendance = append(empNode.Attendance, event)
	}

	return tree, nil
}

func filterCompanies(org []report.Company, filter string) []report.Company {
	if filter == "" {
		return org
	}
	var out []report.Company
	for _, company := range org {
		if matches(filter, company.ID, company.Name) {
			out = append(out, company)
		}
	}
	return out
}

func matches(filter, id, name string) bool {
	return filter == id || strings.EqualFold(filter, name)
}

// Summarize derives the summary for a report type in a single walk over
// the tree.
func (s *Service) Summarize(tree report.OrgTree, typ report.Type, rng attendance.DateRange) (any, error) {
	switch typ {
	case report.TypeAll:
		return s.summarizeAll(tree, rng), nil
	case report.TypePresent, report.TypeAbsent, report.TypeLate:
		return s.summarizeStatus(tree, typ), nil
	}
	return nil, report.ErrUnknownReportType
}

func (s *Service) summarizeAll(tree report.OrgTree, rng attendance.DateRange) report.FullSummary {
	summary := report.FullSummary{DateRange: rng}

	var totalHours float64
	var recordsWithHours int

	for _, companyID := range sortedKeys(tree.Companies) {
		company := tree.Companies[companyID]
		companySummary := report.CompanyFullSummary{
			ID:            companyID,
			Name:          company.Name,
			TotalBranches: len(company.Branches),
		}

		for _, branchID := range sortedKeys(company.Branches) {
			branch := company.Branches[branchID]
			summary.TotalBranches++

			for _, departmentID := range sortedKeys(branch.Departments) {
				department := branch.Departments[departmentID]
				summary.TotalDepartments++
				summary.TotalEmployees += len(department.Employees)
				companySummary.TotalEmployees += len(department.Employees)

				for _, employeeID := range sortedKeys(department.Employees) {
					for _, event := range department.Employees[employeeID].Attendance {
						switch event.Status {
						case attendance.StatusPresent:
							summary.AttendanceStatus.Present++
							companySummary.PresentCount++
						case attendance.StatusAbsent:
							summary.AttendanceStatus.Absent++
							companySummary.AbsentCount++
						case attendance.StatusHalfDay:
							summary.AttendanceStatus.HalfDay++
						case attendance.StatusLeave:
							summary.AttendanceStatus.Leave++
						case attendance.StatusWeekend:
							summary.AttendanceStatus.Weekend++
						case attendance.StatusHoliday:
							summary.AttendanceStatus.Holiday++
						}
						if event.Late {
							summary.AttendanceStatus.Late++
							companySummary.LateCount++
						}
						if event.WorkingHours > 0 {
							totalHours += event.WorkingHours
							recordsWithHours++
						}
					}
				}
			}
		}

		// The attendance rate counts only conclusive days, present over
		// present plus absent. The late percentage is taken over every
		// record at company scope.
		if decisive := companySummary.PresentCount + companySummary.AbsentCount; decisive > 0 {
			companySummary.AttendanceRate = percent(companySummary.PresentCount, decisive)
		}
		if companyTotal := companyTotalRecords(company); companyTotal > 0 {
			companySummary.LatePercentage = percent(companySummary.LateCount, companyTotal)
		}

		summary.Companies = append(summary.Companies, companySummary)
		summary.TotalCompanies++
	}

	if recordsWithHours > 0 {
		summary.AverageWorkingHours = round2(totalHours / float64(recordsWithHours))
	}
	summary.TotalWorkingHours = round2(totalHours)

	return summary
}

func (s *Service) summarizeStatus(tree report.OrgTree, typ report.Type) report.StatusSummary {
	match := func(e attendance.Event) bool {
		switch typ {
		case report.TypePresent:
			return e.Status == attendance.StatusPresent
		case report.TypeAbsent:
			return e.Status == attendance.StatusAbsent
		default:
			return e.Late
		}
	}

	summary := report.StatusSummary{Status: string(typ)}
	var totalMatched, totalRecords int

	for _, companyID := range sortedKeys(tree.Companies) {
		company := tree.Companies[companyID]
		companySummary := report.CompanyStatusSummary{ID: companyID, Name: company.Name}

		for _, branchID := range sortedKeys(company.Branches) {
			branch := company.Branches[branchID]
			branchSummary := report.BranchStatusSummary{ID: branchID, Name: branch.Name}

			for _, departmentID := range sortedKeys(branch.Departments) {
				department := branch.Departments[departmentID]
				deptSummary := report.DepartmentStatusSummary{ID: departmentID, Name: department.Name}

				for _, employeeID := range sortedKeys(department.Employees) {
					summary.TotalEmployees++
					for _, event := range department.Employees[employeeID].Attendance {
						deptSummary.TotalRecords++
						if match(event) {
							deptSummary.MatchedCount++
						}
					}
				}

				deptSummary.Percentage = percent(deptSummary.MatchedCount, deptSummary.TotalRecords)
				branchSummary.MatchedCount += deptSummary.MatchedCount
				branchSummary.TotalRecords += deptSummary.TotalRecords
				branchSummary.Departments = append(branchSummary.Departments, deptSummary)
			}

			branchSummary.Percentage = percent(branchSummary.MatchedCount, branchSummary.TotalRecords)
			companySummary.MatchedCount += branchSummary.MatchedCount
			companySummary.TotalRecords += branchSummary.TotalRecords
			companySummary.Branches = append(companySummary.Branches, branchSummary)
		}

		companySummary.Percentage = percent(companySummary.MatchedCount, companySummary.TotalRecords)
		totalMatched += companySummary.MatchedCount
		totalRecords += companySummary.TotalRecords
		summary.Companies = append(summary.Companies, companySummary)
	}

	summary.TotalMatched = totalMatched
	summary.Percentage = percent(totalMatched, totalRecords)

	return summary
}

func companyTotalRecords(company *report.CompanyNode) int {
	total := 0
	for _, branch := range company.Branches {
		for _, department := range branch.Departments {
			for _, emp := range department.Employees {
				total += len(emp.Attendance)
			}
		}
	}
	return total
}

// percent is count over total as a percentage rounded to two decimals,
// zero when the denominator is zero.
func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(count) / float64(total) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
