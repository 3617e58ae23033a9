package services

import (
	"context"

	"github.com/M231111107561100/erp-tiin/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PayrollCalculatorSvc defines the pure gross-to-net computation.
type PayrollCalculatorSvc interface {
	// Compute derives a PayrollResult for an employee snapshot. It performs no
	// persistence and reads no state other than the configured schedule.
	Compute(employee domain.Employee, period string, bonuses decimal.Decimal) (domain.PayrollResult, error)
}

// PayrollRunnerSvc defines the persisted payroll operation.
type PayrollRunnerSvc interface {
	// RunPayroll computes and appends one payroll run for (employee, period).
	RunPayroll(ctx context.Context, employeeID string, period string, bonuses decimal.Decimal, actorID string) (*domain.PayrollRun, error)
}

// PayrollReaderSvc defines read operations for payroll history.
type PayrollReaderSvc interface {
	// GetRunByID retrieves a run by its identifier.
	GetRunByID(ctx context.Context, runID string) (*domain.PayrollRun, error)

	// GetRunForPeriod retrieves the run for an (employee, period) pair.
	GetRunForPeriod(ctx context.Context, employeeID string, period string) (*domain.PayrollRun, error)

	// ListRunsByEmployee retrieves an employee's payroll history.
	ListRunsByEmployee(ctx context.Context, employeeID string, limit int, offset int) ([]domain.PayrollRun, error)
}

// PayrollSvcFacade combines all payroll service interfaces.
type PayrollSvcFacade interface {
	PayrollCalculatorSvc
	PayrollRunnerSvc
	PayrollReaderSvc
}
