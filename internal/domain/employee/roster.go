package employee

// TeamMember is the slim listing the record source returns for a
// manager's roster.
type TeamMember struct {
	EmployeeID string `json:"employee_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Position   string `json:"position,omitempty"`
}

// TeamRoster is a manager's team with the member ids pre-extracted for
// access checks.
type TeamRoster struct {
	Members   []TeamMember `json:"members"`
	MemberIDs []string     `json:"member_ids"`
}

// Contains reports whether the roster includes the employee id.
func (r TeamRoster) Contains(employeeID string) bool {
	for _, id := range r.MemberIDs {
		if id == employeeID {
			return true
		}
	}
	return false
}
