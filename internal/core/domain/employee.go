package domain

// Employee is a company staff member. It shares the soft lifecycle with resources.
type Employee struct {
	ID          string `json:"id"`
	CompanyID   string `json:"company_id"`
	Name        string `json:"name"`
	EmpID       string `json:"emp_id"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
	Email       string `json:"email"`
	Lifecycle
	AuditFields
}

// Legacy two-valued status still shown by older employee tables.
const (
	EmployeeStatusActive   = "active"
	EmployeeStatusInactive = "inactive"
)

// Status maps the lifecycle onto the legacy active/inactive column.
func (e Employee) Status() string {
	if e.State() == StateActive {
		return EmployeeStatusActive
	}
	return EmployeeStatusInactive
}
