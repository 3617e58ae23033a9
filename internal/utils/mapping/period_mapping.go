package mapping

import (
	"github.com/M231111107561100/erp-tiin/internal/core/domain"
	"github.com/M231111107561100/erp-tiin/internal/models"
)

// ToModelPeriod converts a domain FinancialPeriod to a model FinancialPeriod.
func ToModelPeriod(d domain.FinancialPeriod) models.FinancialPeriod {
	return models.FinancialPeriod{
		PeriodID:    d.PeriodID,
		Name:        d.Name,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		Status:      models.PeriodStatus(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPeriod converts a model FinancialPeriod to a domain FinancialPeriod.
func ToDomainPeriod(m models.FinancialPeriod) domain.FinancialPeriod {
	return domain.FinancialPeriod{
		PeriodID:    m.PeriodID,
		Name:        m.Name,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Status:      domain.PeriodStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
