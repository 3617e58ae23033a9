package repositories

import (
	"context"

	"github.com/M231111107561100/erp-tiin/internal/core/domain"
)

// PayrollRunReader defines read operations for payroll history.
type PayrollRunReader interface {
	// FindRunByID retrieves a payroll run by identifier.
	FindRunByID(ctx context.Context, runID string) (*domain.PayrollRun, error)

	// FindRunForPeriod retrieves the run for an (employee, period) pair.
	// Returns apperrors.ErrNotFound when the period has not been processed.
	FindRunForPeriod(ctx context.Context, employeeID string, period string) (*domain.PayrollRun, error)

	// ListRunsByEmployee retrieves an employee's runs ordered by period descending.
	ListRunsByEmployee(ctx context.Context, employeeID string, limit int, offset int) ([]domain.PayrollRun, error)
}

// PayrollRunWriter defines write operations for payroll history.
type PayrollRunWriter interface {
	// SavePayrollRun appends one run. A second run for the same
	// (employee, period) pair surfaces as apperrors.ErrDuplicate.
	SavePayrollRun(ctx context.Context, run domain.PayrollRun) error
}

// PayrollRepositoryFacade combines all payroll repository interfaces.
type PayrollRepositoryFacade interface {
	PayrollRunReader
	PayrollRunWriter
}
