package repositories

import (
	"context"
	"time"

	"github.com/M231111107561100/erp-tiin/internal/core/domain"
)

// PeriodReader defines read operations for financial-period data.
type PeriodReader interface {
	// FindPeriodByID retrieves a period by its identifier.
	FindPeriodByID(ctx context.Context, periodID string) (*domain.FinancialPeriod, error)

	// FindOpenPeriodContaining retrieves the open period whose window contains
	// the given date. Returns apperrors.ErrNotFound when no open period covers it.
	FindOpenPeriodContaining(ctx context.Context, date time.Time) (*domain.FinancialPeriod, error)

	// FindPeriodOverlapping retrieves any period whose [start, end] window
	// intersects the given range, regardless of status. Returns
	// apperrors.ErrNotFound when no period intersects it.
	FindPeriodOverlapping(ctx context.Context, start time.Time, end time.Time) (*domain.FinancialPeriod, error)

	// ListPeriods retrieves periods ordered by start date descending.
	ListPeriods(ctx context.Context, limit int, offset int) ([]domain.FinancialPeriod, error)
}

// PeriodWriter defines write operations for financial-period data.
type PeriodWriter interface {
	// SavePeriod persists a new period.
	SavePeriod(ctx context.Context, period domain.FinancialPeriod) error

	// ClosePeriod transitions a period to CLOSED.
	ClosePeriod(ctx context.Context, periodID string, userID string, now time.Time) error
}

// PeriodRepositoryFacade combines all period repository interfaces.
type PeriodRepositoryFacade interface {
	PeriodReader
	PeriodWriter
}
