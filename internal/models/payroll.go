package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollRun is the persistence shape of one payroll computation.
// (employee_id, period) is unique; rows are append-only.
type PayrollRun struct {
	RunID              string          `db:"run_id"`
	EmployeeID         string          `db:"employee_id"`
	Period             string          `db:"period"` // "YYYY-MM"
	BaseSalary         decimal.Decimal `db:"base_salary"`
	Bonuses            decimal.Decimal `db:"bonuses"`
	GrossSalary        decimal.Decimal `db:"gross_salary"`
	RetirementEmployee decimal.Decimal `db:"retirement_employee"`
	RetirementEmployer decimal.Decimal `db:"retirement_employer"`
	HealthEmployee     decimal.Decimal `db:"health_employee"`
	HealthEmployer     decimal.Decimal `db:"health_employer"`
	HousingEmployer    decimal.Decimal `db:"housing_employer"`
	IncomeTax          decimal.Decimal `db:"income_tax"`
	FixedLevy          decimal.Decimal `db:"fixed_levy"`
	NetSalary          decimal.Decimal `db:"net_salary"`
	CreatedAt          time.Time       `db:"created_at"`
	CreatedBy          string          `db:"created_by"`
}
