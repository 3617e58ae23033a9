package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/M231111107561100/erp-tiin/internal/apperrors"
	"github.com/M231111107561100/erp-tiin/internal/core/domain"
	portsrepo "github.com/M231111107561100/erp-tiin/internal/core/ports/repositories"
	portssvc "github.com/M231111107561100/erp-tiin/internal/core/ports/services"
	"github.com/M231111107561100/erp-tiin/internal/middleware"
	"github.com/M231111107561100/erp-tiin/internal/utils/mapping"
)

var (
	ErrInvalidEmployee           = errors.New("invalid employee")
	ErrMissingEmployeeIdentifier = errors.New("employee matricule is missing")
	ErrEmployeeInactive          = errors.New("employee is not active")
	ErrInvalidPeriodFormat       = errors.New("period must use the YYYY-MM format")
	ErrPeriodAlreadyProcessed    = errors.New("payroll already processed for this period")
)

var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// payrollService computes gross-to-net results under a statutory schedule and
// appends one run per (employee, period).
type payrollService struct {
	employeeRepo portsrepo.EmployeeRepositoryFacade
	payrollRepo  portsrepo.PayrollRepositoryFacade
	auditRepo    portsrepo.AuditRepository
	schedule     domain.PayrollSchedule
	now          func() time.Time
}

// NewPayrollService creates a new PayrollService bound to one schedule.
func NewPayrollService(payrollRepo portsrepo.PayrollRepositoryFacade, employeeRepo portsrepo.EmployeeRepositoryFacade, auditRepo portsrepo.AuditRepository, schedule domain.PayrollSchedule) portssvc.PayrollSvcFacade {
	return &payrollService{
		employeeRepo: employeeRepo,
		payrollRepo:  payrollRepo,
		auditRepo:    auditRepo,
		schedule:     schedule,
		now:          time.Now,
	}
}

var _ portssvc.PayrollSvcFacade = (*payrollService)(nil)

// Compute derives the payroll result for one employee snapshot. Pure given
// the schedule: no state is read, nothing is written.
func (s *payrollService) Compute(employee domain.Employee, period string, bonuses decimal.Decimal) (domain.PayrollResult, error) {
	if employee.EmployeeID == "" {
		return domain.PayrollResult{}, ErrInvalidEmployee
	}
	if employee.Matricule == "" {
		return domain.PayrollResult{}, ErrMissingEmployeeIdentifier
	}
	return s.schedule.Compute(employee, period, bonuses), nil
}

// RunPayroll computes and persists one payroll run for (employee, period).
// A period that was already processed is rejected, never overwritten.
func (s *payrollService) RunPayroll(ctx context.Context, employeeID string, period string, bonuses decimal.Decimal, actorID string) (*domain.PayrollRun, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !periodPattern.MatchString(period) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPeriodFormat, period)
	}
	if bonuses.IsNegative() {
		return nil, fmt.Errorf("%w: bonuses must not be negative", apperrors.ErrValidation)
	}

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidEmployee, employeeID)
		}
		logger.Error("Failed to fetch employee for payroll", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to fetch employee %s: %w", employeeID, err)
	}
	if !employee.IsActive {
		return nil, fmt.Errorf("%w: %s", ErrEmployeeInactive, employee.Matricule)
	}

	// Reject reprocessing up front; the unique (employee_id, period) index
	// still backstops a concurrent duplicate at insert time.
	if _, err := s.payrollRepo.FindRunForPeriod(ctx, employeeID, period); err == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrPeriodAlreadyProcessed, employee.Matricule, period)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check existing payroll run", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to check existing run: %w", err)
	}

	result, err := s.Compute(*employee, period, bonuses)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	run := mapping.RunFromResult(uuid.NewString(), result, actorID)
	run.CreatedAt = now

	if err := s.payrollRepo.SavePayrollRun(ctx, run); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %s %s", ErrPeriodAlreadyProcessed, employee.Matricule, period)
		}
		logger.Error("Failed to save payroll run", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to save payroll run: %w", err)
	}

	s.recordAudit(ctx, domain.AuditLog{
		ActorID:  actorID,
		Action:   domain.AuditPayrollRun,
		Entity:   "payroll_run",
		EntityID: run.RunID,
		Meta: map[string]any{
			"matricule": employee.Matricule,
			"period":    period,
		},
		At: now,
	})

	logger.Info("Payroll run recorded",
		slog.String("run_id", run.RunID),
		slog.String("matricule", employee.Matricule),
		slog.String("period", period))

	return &run, nil
}

// recordAudit appends an audit row after the run committed. Audit failures
// are logged and swallowed.
func (s *payrollService) recordAudit(ctx context.Context, log domain.AuditLog) {
	if s.auditRepo == nil {
		return
	}
	log.AuditID = uuid.NewString()
	if err := s.auditRepo.RecordAudit(ctx, log); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to record audit log",
			slog.String("action", log.Action),
			slog.String("entity_id", log.EntityID),
			slog.String("error", err.Error()))
	}
}

// GetRunByID retrieves a run by its identifier.
func (s *payrollService) GetRunByID(ctx context.Context, runID string) (*domain.PayrollRun, error) {
	run, err := s.payrollRepo.FindRunByID(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to find payroll run %s: %w", runID, err)
	}
	return run, nil
}

// GetRunForPeriod retrieves the run for an (employee, period) pair.
func (s *payrollService) GetRunForPeriod(ctx context.Context, employeeID string, period string) (*domain.PayrollRun, error) {
	run, err := s.payrollRepo.FindRunForPeriod(ctx, employeeID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to find payroll run for %s %s: %w", employeeID, period, err)
	}
	return run, nil
}

// ListRunsByEmployee retrieves an employee's payroll history.
func (s *payrollService) ListRunsByEmployee(ctx context.Context, employeeID string, limit int, offset int) ([]domain.PayrollRun, error) {
	if limit <= 0 || limit > 100 {
		limit = 24
	}
	if offset < 0 {
		offset = 0
	}
	return s.payrollRepo.ListRunsByEmployee(ctx, employeeID, limit, offset)
}
