package attendance

import "time"

// Status of a single attendance day as reported by the HR system.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half_day"
	StatusLeave   Status = "leave"
	StatusWeekend Status = "weekend"
	StatusHoliday Status = "holiday"
	StatusUnknown Status = "unknown"
)

// ParseStatus normalizes the upstream status labels, which arrive in mixed
// case and with "half day" spelled with a space.
func ParseStatus(s string) Status {
	switch normalized := Status(normalize(s)); normalized {
	case StatusPresent, StatusAbsent, StatusHalfDay, StatusLeave, StatusWeekend, StatusHoliday:
		return normalized
	}
	return StatusUnknown
}

func normalize(s string) string {
	b := []byte(s)
	for i, c := range b {
		switch {
		case c >= 'A' && c <= 'Z':
			b[i] = c + ('a' - 'A')
		case c == ' ':
			b[i] = '_'
		}
	}
	return string(b)
}

// Event is one attendance record for one employee on one date. Events are
// immutable once produced by the record source.
type Event struct {
	EmployeeID   string     `json:"employee_id"`
	EmployeeName string     `json:"employee_name,omitempty"`
	CompanyID    string     `json:"company_id,omitempty"`
	BranchID     string     `json:"branch_id,omitempty"`
	DepartmentID string     `json:"department_id,omitempty"`
	Date         string     `json:"date"`
	PunchIn      *time.Time `json:"punch_in,omitempty"`
	PunchOut     *time.Time `json:"punch_out,omitempty"`
	Status       Status     `json:"status"`
	WorkingHours float64    `json:"working_hours"`
	Late         bool       `json:"late"`
	LateMinutes  int        `json:"late_minutes,omitempty"`
}

// MissingPunch reports a present day with an incomplete in/out pair.
func (e Event) MissingPunch() bool {
	return e.Status == StatusPresent && (e.PunchIn == nil || e.PunchOut == nil)
}
