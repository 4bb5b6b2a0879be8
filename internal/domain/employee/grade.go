package employee

import "strings"

// Grade is the ordinal seniority tier. L0 carries the highest authority,
// L4 is the base employee tier.
type Grade string

const (
	GradeL0 Grade = "L0"
	GradeL1 Grade = "L1"
	GradeL2 Grade = "L2"
	GradeL3 Grade = "L3"
	GradeL4 Grade = "L4"
)

// ParseGrade normalizes a grade string. Unknown values report ok=false so
// callers can fail closed.
func ParseGrade(s string) (Grade, bool) {
	switch Grade(strings.ToUpper(strings.TrimSpace(s))) {
	case GradeL0:
		return GradeL0, true
	case GradeL1:
		return GradeL1, true
	case GradeL2:
		return GradeL2, true
	case GradeL3:
		return GradeL3, true
	case GradeL4:
		return GradeL4, true
	}
	return GradeL4, false
}

// Category labels the closed set of data categories a profile is split into
// for access control.
type Category string

const (
	CategoryBasic      Category = "basic_info"
	CategoryContact    Category = "contact_info"
	CategorySalary     Category = "salary_info"
	CategoryLeave      Category = "leave_data"
	CategoryAttendance Category = "attendance_data"
	CategoryBanking    Category = "banking_info"
	CategoryFamily     Category = "family_info"
	CategoryDocuments  Category = "documents"
	CategoryContract   Category = "contract_info"
	CategoryAssets     Category = "assets_info"
	CategoryLoan       Category = "loan_info"
)

// Categories lists every known category in declaration order.
var Categories = []Category{
	CategoryBasic,
	CategoryContact,
	CategorySalary,
	CategoryLeave,
	CategoryAttendance,
	CategoryBanking,
	CategoryFamily,
	CategoryDocuments,
	CategoryContract,
	CategoryAssets,
	CategoryLoan,
}
