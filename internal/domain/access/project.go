package access

import "github.com/talenthive/hr-assistant-go/internal/domain/employee"

// Project returns a copy of the record containing only the identity fields
// plus the categories the level is allowed to see. Disallowed categories are
// dropped silently: projection is a declassification filter, never an error
// path. The input record is not modified.
func Project(level Level, rec employee.Record) employee.Record {
	out := employee.Record{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		FirstName:  rec.FirstName,
		LastName:   rec.LastName,
		UserName:   rec.UserName,
	}

	for _, cat := range AllowedCategories(level) {
		switch cat {
		case employee.CategoryBasic:
			out.OrganizationID = rec.OrganizationID
			out.CompanyID = rec.CompanyID
			out.BranchID = rec.BranchID
			out.DepartmentID = rec.DepartmentID
			out.Grade = rec.Grade
			out.Role = rec.Role
			out.Position = rec.Position
		case employee.CategoryContact:
			out.Contact = rec.Contact
		case employee.CategorySalary:
			out.Salary = rec.Salary
		case employee.CategoryLeave:
			out.Leave = rec.Leave
		case employee.CategoryAttendance:
			// Attendance events are fetched separately; the category gates
			// the attendance operations, not a profile field.
		case employee.CategoryBanking:
			out.Banking = rec.Banking
		case employee.CategoryFamily:
			out.Family = rec.Family
		case employee.CategoryDocuments:
			out.Documents = rec.Documents
			// Unrecognized upstream fields ride with the documents-level
			// trust tier rather than leaking to everyone.
			out.Extra = rec.Extra
		case employee.CategoryContract:
			out.Contract = rec.Contract
		case employee.CategoryAssets:
			out.Assets = rec.Assets
		case employee.CategoryLoan:
			out.Loan = rec.Loan
		}
	}

	return out
}
