package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statutory line-item names as they appear on Senegalese payslips.
const (
	DeductionRetirement    = "IPRES Employé"
	DeductionHealth        = "CSS Employé"
	DeductionIncomeTax     = "IR"
	DeductionFixedLevy     = "TRIMF"
	ContributionRetirement = "IPRES Employeur"
	ContributionHealth     = "CSS Employeur"
	ContributionHousing    = "FNR"
)

// PayrollLine is one named deduction (employee-side withholding) or
// contribution (employer-side cost).
type PayrollLine struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// PayrollResult is the outcome of one gross-to-net computation. It is a pure
// value: the same employee snapshot, period, bonuses and schedule always
// produce the same result.
type PayrollResult struct {
	EmployeeID    string          `json:"employeeID"`
	EmployeeName  string          `json:"employeeName"`
	Matricule     string          `json:"matricule"`
	Period        string          `json:"period"` // "YYYY-MM"
	BaseSalary    decimal.Decimal `json:"baseSalary"`
	Bonuses       decimal.Decimal `json:"bonuses"`
	GrossSalary   decimal.Decimal `json:"grossSalary"`
	Deductions    []PayrollLine   `json:"deductions"`
	Contributions []PayrollLine   `json:"contributions"`
	NetSalary     decimal.Decimal `json:"netSalary"`
}

// TotalDeductions sums the employee-side withholdings.
func (r PayrollResult) TotalDeductions() decimal.Decimal {
	total := decimal.Zero
	for _, d := range r.Deductions {
		total = total.Add(d.Amount)
	}
	return total
}

// TotalContributions sums the employer-side costs.
func (r PayrollResult) TotalContributions() decimal.Decimal {
	total := decimal.Zero
	for _, c := range r.Contributions {
		total = total.Add(c.Amount)
	}
	return total
}

// Deduction returns the named deduction amount, zero if absent.
func (r PayrollResult) Deduction(name string) decimal.Decimal {
	for _, d := range r.Deductions {
		if d.Name == name {
			return d.Amount
		}
	}
	return decimal.Zero
}

// Contribution returns the named contribution amount, zero if absent.
func (r PayrollResult) Contribution(name string) decimal.Decimal {
	for _, c := range r.Contributions {
		if c.Name == name {
			return c.Amount
		}
	}
	return decimal.Zero
}

// PayrollRun is the persisted, append-only record of one computation for one
// (employee, period) pair. The pair is unique; reprocessing a period is
// rejected, never overwritten.
type PayrollRun struct {
	RunID              string          `json:"runID"` // Primary key (UUID)
	EmployeeID         string          `json:"employeeID"`
	Period             string          `json:"period"` // "YYYY-MM"
	BaseSalary         decimal.Decimal `json:"baseSalary"`
	Bonuses            decimal.Decimal `json:"bonuses"`
	GrossSalary        decimal.Decimal `json:"grossSalary"`
	RetirementEmployee decimal.Decimal `json:"retirementEmployee"`
	RetirementEmployer decimal.Decimal `json:"retirementEmployer"`
	HealthEmployee     decimal.Decimal `json:"healthEmployee"`
	HealthEmployer     decimal.Decimal `json:"healthEmployer"`
	HousingEmployer    decimal.Decimal `json:"housingEmployer"`
	IncomeTax          decimal.Decimal `json:"incomeTax"`
	FixedLevy          decimal.Decimal `json:"fixedLevy"`
	NetSalary          decimal.Decimal `json:"netSalary"`
	CreatedAt          time.Time       `json:"createdAt"`
	CreatedBy          string          `json:"createdBy"`
}
