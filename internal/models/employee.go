package models

// Employee is a row of the employees table.
type Employee struct {
	ID          string `db:"id"`
	CompanyID   string `db:"company_id"`
	Name        string `db:"name"`
	EmpID       string `db:"emp_id"`
	Department  string `db:"department"`
	Designation string `db:"designation"`
	Email       string `db:"email"`
	Lifecycle
	AuditFields
}
