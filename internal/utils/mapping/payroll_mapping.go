package mapping

import (
	"github.com/M231111107561100/erp-tiin/internal/core/domain"
	"github.com/M231111107561100/erp-tiin/internal/models"
)

// ToModelPayrollRun converts a domain PayrollRun to a model PayrollRun.
func ToModelPayrollRun(d domain.PayrollRun) models.PayrollRun {
	return models.PayrollRun{
		RunID:              d.RunID,
		EmployeeID:         d.EmployeeID,
		Period:             d.Period,
		BaseSalary:         d.BaseSalary,
		Bonuses:            d.Bonuses,
		GrossSalary:        d.GrossSalary,
		RetirementEmployee: d.RetirementEmployee,
		RetirementEmployer: d.RetirementEmployer,
		HealthEmployee:     d.HealthEmployee,
		HealthEmployer:     d.HealthEmployer,
		HousingEmployer:    d.HousingEmployer,
		IncomeTax:          d.IncomeTax,
		FixedLevy:          d.FixedLevy,
		NetSalary:          d.NetSalary,
		CreatedAt:          d.CreatedAt,
		CreatedBy:          d.CreatedBy,
	}
}

// ToDomainPayrollRun converts a model PayrollRun to a domain PayrollRun.
func ToDomainPayrollRun(m models.PayrollRun) domain.PayrollRun {
	return domain.PayrollRun{
		RunID:              m.RunID,
		EmployeeID:         m.EmployeeID,
		Period:             m.Period,
		BaseSalary:         m.BaseSalary,
		Bonuses:            m.Bonuses,
		GrossSalary:        m.GrossSalary,
		RetirementEmployee: m.RetirementEmployee,
		RetirementEmployer: m.RetirementEmployer,
		HealthEmployee:     m.HealthEmployee,
		HealthEmployer:     m.HealthEmployer,
		HousingEmployer:    m.HousingEmployer,
		IncomeTax:          m.IncomeTax,
		FixedLevy:          m.FixedLevy,
		NetSalary:          m.NetSalary,
		CreatedAt:          m.CreatedAt,
		CreatedBy:          m.CreatedBy,
	}
}

// RunFromResult builds the persisted PayrollRun record from a computed result.
func RunFromResult(runID string, result domain.PayrollResult, actorID string) domain.PayrollRun {
	return domain.PayrollRun{
		RunID:              runID,
		EmployeeID:         result.EmployeeID,
		Period:             result.Period,
		BaseSalary:         result.BaseSalary,
		Bonuses:            result.Bonuses,
		GrossSalary:        result.GrossSalary,
		RetirementEmployee: result.Deduction(domain.DeductionRetirement),
		RetirementEmployer: result.Contribution(domain.ContributionRetirement),
		HealthEmployee:     result.Deduction(domain.DeductionHealth),
		HealthEmployer:     result.Contribution(domain.ContributionHealth),
		HousingEmployer:    result.Contribution(domain.ContributionHousing),
		IncomeTax:          result.Deduction(domain.DeductionIncomeTax),
		FixedLevy:          result.Deduction(domain.DeductionFixedLevy),
		NetSalary:          result.NetSalary,
		CreatedBy:          actorID,
	}
}
