package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is an HR record eligible for payroll runs.
type Employee struct {
	EmployeeID string          `json:"employeeID"` // Primary key (UUID)
	Matricule  string          `json:"matricule"`  // Unique employee number
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	Email      string          `json:"email,omitempty"`
	Position   string          `json:"position,omitempty"`
	Department string          `json:"department,omitempty"`
	BaseSalary decimal.Decimal `json:"baseSalary"`
	HireDate   time.Time       `json:"hireDate"`
	IsActive   bool            `json:"isActive"`
	AuditFields
}

// FullName returns the display name used on payslips.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
