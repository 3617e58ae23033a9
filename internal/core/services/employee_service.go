package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/M231111107561100/erp-tiin/internal/apperrors"
	"github.com/M231111107561100/erp-tiin/internal/core/domain"
	portsrepo "github.com/M231111107561100/erp-tiin/internal/core/ports/repositories"
	portssvc "github.com/M231111107561100/erp-tiin/internal/core/ports/services"
	"github.com/M231111107561100/erp-tiin/internal/dto"
	"github.com/M231111107561100/erp-tiin/internal/middleware"
)

var (
	ErrDuplicateMatricule = errors.New("matricule already registered")
	ErrNegativeBaseSalary = errors.New("base salary cannot be negative")
)

// employeeService manages the employee registry.
type employeeService struct {
	employeeRepo portsrepo.EmployeeRepositoryFacade
	now          func() time.Time
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade) portssvc.EmployeeSvcFacade {
	return &employeeService{
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

// CreateEmployee registers a new employee. The matricule is the business key
// and must be unique across the registry.
func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, creatorUserID string) (*domain.Employee, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.BaseSalary.IsNegative() {
		return nil, ErrNegativeBaseSalary
	}

	now := s.now().UTC()
	employee := domain.Employee{
		EmployeeID: uuid.NewString(),
		Matricule:  req.Matricule,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Position:   req.Position,
		Department: req.Department,
		BaseSalary: req.BaseSalary,
		HireDate:   req.HireDate,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateMatricule, req.Matricule)
		}
		logger.Error("Failed to save employee", slog.String("error", err.Error()), slog.String("matricule", req.Matricule))
		return nil, fmt.Errorf("failed to save employee: %w", err)
	}

	logger.Info("Employee registered", slog.String("employee_id", employee.EmployeeID), slog.String("matricule", employee.Matricule))
	return &employee, nil
}

// GetEmployeeByID retrieves an employee by identifier.
func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find employee %s: %w", employeeID, err)
	}
	return employee, nil
}

// ListEmployees retrieves employees, optionally active only.
func (s *employeeService) ListEmployees(ctx context.Context, activeOnly bool, limit int, offset int) ([]domain.Employee, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.employeeRepo.ListEmployees(ctx, activeOnly, limit, offset)
}

// UpdateEmployee updates an employee's details. Only the fields present in
// the request are changed; the matricule and hire date are immutable.
func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, userID string) (*domain.Employee, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find employee %s: %w", employeeID, err)
	}

	if req.FirstName != nil {
		employee.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		employee.LastName = *req.LastName
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.Position != nil {
		employee.Position = *req.Position
	}
	if req.Department != nil {
		employee.Department = *req.Department
	}
	if req.BaseSalary != nil {
		if req.BaseSalary.IsNegative() {
			return nil, ErrNegativeBaseSalary
		}
		employee.BaseSalary = *req.BaseSalary
	}
	employee.LastUpdatedAt = s.now().UTC()
	employee.LastUpdatedBy = userID

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		logger.Error("Failed to update employee", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to update employee %s: %w", employeeID, err)
	}

	return employee, nil
}

// DeactivateEmployee marks an employee as inactive. Payroll refuses to run
// for inactive employees; existing runs are untouched.
func (s *employeeService) DeactivateEmployee(ctx context.Context, employeeID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID); err != nil {
		return fmt.Errorf("failed to find employee %s: %w", employeeID, err)
	}

	if err := s.employeeRepo.DeactivateEmployee(ctx, employeeID, userID, s.now().UTC()); err != nil {
		logger.Error("Failed to deactivate employee", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		return fmt.Errorf("failed to deactivate employee %s: %w", employeeID, err)
	}

	logger.Info("Employee deactivated", slog.String("employee_id", employeeID))
	return nil
}
