package dto

import (
	"time"

	"github.com/M231111107561100/erp-tiin/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RunPayrollRequest defines the data needed to run payroll for one employee.
// Period uses the "YYYY-MM" form.
type RunPayrollRequest struct {
	Period  string          `json:"period" binding:"required,payrollperiod"`
	Bonuses decimal.Decimal `json:"bonuses"`
}

// PayrollLineResponse is one named deduction or contribution.
type PayrollLineResponse struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// PayrollRunResponse defines the data returned for a payroll run.
type PayrollRunResponse struct {
	RunID         string                `json:"runID"`
	EmployeeID    string                `json:"employeeID"`
	Period        string                `json:"period"`
	BaseSalary    decimal.Decimal       `json:"baseSalary"`
	Bonuses       decimal.Decimal       `json:"bonuses"`
	GrossSalary   decimal.Decimal       `json:"grossSalary"`
	Deductions    []PayrollLineResponse `json:"deductions"`
	Contributions []PayrollLineResponse `json:"contributions"`
	NetSalary     decimal.Decimal       `json:"netSalary"`
	CreatedAt     time.Time             `json:"createdAt"`
}

// ToPayrollRunResponse converts a domain.PayrollRun to its response DTO,
// rebuilding the named line items from the stored columns.
func ToPayrollRunResponse(run *domain.PayrollRun) PayrollRunResponse {
	return PayrollRunResponse{
		RunID:       run.RunID,
		EmployeeID:  run.EmployeeID,
		Period:      run.Period,
		BaseSalary:  run.BaseSalary,
		Bonuses:     run.Bonuses,
		GrossSalary: run.GrossSalary,
		Deductions: []PayrollLineResponse{
			{Name: domain.DeductionRetirement, Amount: run.RetirementEmployee},
			{Name: domain.DeductionHealth, Amount: run.HealthEmployee},
			{Name: domain.DeductionIncomeTax, Amount: run.IncomeTax},
			{Name: domain.DeductionFixedLevy, Amount: run.FixedLevy},
		},
		Contributions: []PayrollLineResponse{
			{Name: domain.ContributionRetirement, Amount: run.RetirementEmployer},
			{Name: domain.ContributionHealth, Amount: run.HealthEmployer},
			{Name: domain.ContributionHousing, Amount: run.HousingEmployer},
		},
		NetSalary: run.NetSalary,
		CreatedAt: run.CreatedAt,
	}
}

// ToListPayrollRunResponse converts a slice of runs to response DTOs.
func ToListPayrollRunResponse(runs []domain.PayrollRun) []PayrollRunResponse {
	res := make([]PayrollRunResponse, len(runs))
	for i := range runs {
		res[i] = ToPayrollRunResponse(&runs[i])
	}
	return res
}

// ListPayrollRunsParams defines query parameters for listing payroll runs.
type ListPayrollRunsParams struct {
	Limit  int `form:"limit,default=24"`
	Offset int `form:"offset,default=0"`
}
