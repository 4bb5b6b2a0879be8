package employee

// Record is an employee profile as returned by the remote HR system.
// Sub-documents are opaque to everything except the access-control
// projection: they are carried or dropped as a whole.
type Record struct {
	ID             string `json:"_id"`
	EmployeeID     string `json:"employee_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	UserName       string `json:"user_name,omitempty"`
	OrganizationID string `json:"organization_id,omitempty"`
	CompanyID      string `json:"company_id,omitempty"`
	BranchID       string `json:"branch_id,omitempty"`
	DepartmentID   string `json:"department_id,omitempty"`
	Grade          Grade  `json:"grade"`
	Role           string `json:"role,omitempty"`
	Position       string `json:"position,omitempty"`

	Contact   *ContactInfo   `json:"contact,omitempty"`
	Salary    *SalaryInfo    `json:"salary,omitempty"`
	Leave     *LeaveInfo     `json:"leave,omitempty"`
	Banking   *BankingInfo   `json:"banking,omitempty"`
	Family    *FamilyInfo    `json:"family,omitempty"`
	Documents []Document     `json:"documents,omitempty"`
	Contract  *ContractInfo  `json:"contract,omitempty"`
	Assets    []Asset        `json:"assets,omitempty"`
	Loan      *LoanInfo      `json:"loan,omitempty"`
	Extra     map[string]any `json:"extra,omitempty"`
}

// FullName joins first and last name, tolerating a missing last name.
func (r Record) FullName() string {
	if r.LastName == "" {
		return r.FirstName
	}
	return r.FirstName + " " + r.LastName
}

type ContactInfo struct {
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Address     string `json:"address,omitempty"`
}

type SalaryInfo struct {
	BasicSalary float64            `json:"basic_salary"`
	NetSalary   float64            `json:"net_salary"`
	Currency    string             `json:"currency,omitempty"`
	Allowances  map[string]float64 `json:"allowances,omitempty"`
	Deductions  map[string]float64 `json:"deductions,omitempty"`
}

type LeaveInfo struct {
	AnnualBalance float64 `json:"annual_balance"`
	SickBalance   float64 `json:"sick_balance"`
	CasualBalance float64 `json:"casual_balance"`
	TakenThisYear float64 `json:"taken_this_year"`
}

type BankingInfo struct {
	BankName      string `json:"bank_name,omitempty"`
	AccountHolder string `json:"account_holder,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	IBAN          string `json:"iban,omitempty"`
}

type FamilyInfo struct {
	MaritalStatus    string          `json:"marital_status,omitempty"`
	Dependents       int             `json:"dependents,omitempty"`
	EmergencyContact *EmergencyEntry `json:"emergency_contact,omitempty"`
}

type EmergencyEntry struct {
	Name        string `json:"name"`
	Relation    string `json:"relation,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

type Document struct {
	Type     string `json:"type"`
	Number   string `json:"number,omitempty"`
	IssuedAt string `json:"issued_at,omitempty"`
	URL      string `json:"url,omitempty"`
}

type ContractInfo struct {
	Type      string `json:"type,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

type Asset struct {
	Name       string `json:"name"`
	Tag        string `json:"tag,omitempty"`
	AssignedAt string `json:"assigned_at,omitempty"`
}

type LoanInfo struct {
	Outstanding       float64 `json:"outstanding"`
	MonthlyDeduction  float64 `json:"monthly_deduction,omitempty"`
	RemainingPayments int     `json:"remaining_payments,omitempty"`
}
