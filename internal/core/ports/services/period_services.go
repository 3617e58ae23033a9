package services

import (
	"context"
	"time"

	"github.com/M231111107561100/erp-tiin/internal/core/domain"
	"github.com/M231111107561100/erp-tiin/internal/dto"
)

// PeriodReaderSvc defines read operations for financial periods.
type PeriodReaderSvc interface {
	// GetPeriodByID retrieves a period by identifier.
	GetPeriodByID(ctx context.Context, periodID string) (*domain.FinancialPeriod, error)

	// GetOpenPeriodContaining retrieves the open period covering a date.
	GetOpenPeriodContaining(ctx context.Context, date time.Time) (*domain.FinancialPeriod, error)

	// ListPeriods retrieves periods ordered by start date descending.
	ListPeriods(ctx context.Context, limit int, offset int) ([]domain.FinancialPeriod, error)
}

// PeriodWriterSvc defines write operations for financial periods.
type PeriodWriterSvc interface {
	// CreatePeriod persists a new period after overlap checks.
	CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest, creatorUserID string) (*domain.FinancialPeriod, error)

	// ClosePeriod transitions a period to CLOSED.
	ClosePeriod(ctx context.Context, periodID string, userID string) (*domain.FinancialPeriod, error)
}

// PeriodSvcFacade combines all period service interfaces.
type PeriodSvcFacade interface {
	PeriodReaderSvc
	PeriodWriterSvc
}
