package query

import "github.com/talenthive/hr-assistant-go/internal/domain/employee"

// Intent classifies what a free-text request is asking for.
type Intent string

const (
	IntentEmployeeInfo    Intent = "get_employee_info"
	IntentSalaryInfo      Intent = "get_salary_info"
	IntentLeaveBalance    Intent = "get_leave_balance"
	IntentContactInfo     Intent = "get_contact_info"
	IntentDepartmentInfo  Intent = "get_department_info"
	IntentSearchEmployees Intent = "search_employees"
	IntentUnknown         Intent = "unknown"
)

// Params holds every parameter extracted from a query. When several
// candidates match, the first is primary and the rest are kept as
// additional values rather than discarded.
type Params struct {
	EmployeeID            string   `json:"employee_id,omitempty"`
	AdditionalEmployeeIDs []string `json:"additional_employee_ids,omitempty"`
	Name                  string   `json:"name,omitempty"`
	AdditionalNames       []string `json:"additional_names,omitempty"`
	Department            string   `json:"department,omitempty"`
	Role                  string   `json:"role,omitempty"`
	Grade                 string   `json:"grade,omitempty"`
	IsSelfQuery           bool     `json:"is_self_query,omitempty"`
}

// HasIdentifier reports whether the params pin down a concrete subject.
func (p Params) HasIdentifier() bool {
	return p.EmployeeID != "" || p.Name != ""
}

// ParsedQuery is the structured output of the interpreter.
type ParsedQuery struct {
	Original      string              `json:"original_query"`
	Intent        Intent              `json:"intent"`
	Params        Params              `json:"parameters"`
	RequestedData []employee.Category `json:"data_requested,omitempty"`
	Confidence    float64             `json:"confidence"`
}

// Strategy picks the lookup path the orchestrator should use.
type Strategy string

const (
	StrategyDirectLookup   Strategy = "direct_lookup"
	StrategyCriteriaSearch Strategy = "criteria_search"
	StrategySemanticSearch Strategy = "semantic_search"
)
