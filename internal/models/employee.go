package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the persistence shape of an HR record.
type Employee struct {
	EmployeeID string          `db:"employee_id"`
	Matricule  string          `db:"matricule"` // Unique
	FirstName  string          `db:"first_name"`
	LastName   string          `db:"last_name"`
	Email      string          `db:"email"`
	Position   string          `db:"position"`
	Department string          `db:"department"`
	BaseSalary decimal.Decimal `db:"base_salary"`
	HireDate   time.Time       `db:"hire_date"`
	IsActive   bool            `db:"is_active"`
	AuditFields
}
