package dto

import (
	"time"

	"github.com/M231111107561100/erp-tiin/internal/core/domain"
)

// CreatePeriodRequest defines the data needed to open a new financial period.
type CreatePeriodRequest struct {
	Name      string    `json:"name" binding:"required"`
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
}

// PeriodResponse defines the data returned for a financial period.
type PeriodResponse struct {
	PeriodID  string              `json:"periodID"`
	Name      string              `json:"name"`
	StartDate time.Time           `json:"startDate"`
	EndDate   time.Time           `json:"endDate"`
	Status    domain.PeriodStatus `json:"status"`
}

// ToPeriodResponse converts a domain.FinancialPeriod to PeriodResponse.
func ToPeriodResponse(p *domain.FinancialPeriod) PeriodResponse {
	return PeriodResponse{
		PeriodID:  p.PeriodID,
		Name:      p.Name,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Status:    p.Status,
	}
}

// ToListPeriodResponse converts a slice of periods to response DTOs.
func ToListPeriodResponse(periods []domain.FinancialPeriod) []PeriodResponse {
	res := make([]PeriodResponse, len(periods))
	for i := range periods {
		res[i] = ToPeriodResponse(&periods[i])
	}
	return res
}

// ListPeriodsParams defines query parameters for listing periods.
type ListPeriodsParams struct {
	Limit  int `form:"limit,default=24"`
	Offset int `form:"offset,default=0"`
}
