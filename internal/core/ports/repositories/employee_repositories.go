package repositories

import (
	"context"
	"time"

	"github.com/M231111107561100/erp-tiin/internal/core/domain"
)

// EmployeeReader defines read operations for employee data.
type EmployeeReader interface {
	// FindEmployeeByID retrieves an employee by identifier.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// FindEmployeeByMatricule retrieves an employee by employee number.
	FindEmployeeByMatricule(ctx context.Context, matricule string) (*domain.Employee, error)

	// ListEmployees retrieves employees ordered by matricule. When activeOnly
	// is true, inactive employees are filtered out.
	ListEmployees(ctx context.Context, activeOnly bool, limit int, offset int) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employee data.
type EmployeeWriter interface {
	// SaveEmployee persists a new employee. A duplicate matricule surfaces as
	// apperrors.ErrDuplicate.
	SaveEmployee(ctx context.Context, employee domain.Employee) error

	// UpdateEmployee updates an existing employee's details.
	UpdateEmployee(ctx context.Context, employee domain.Employee) error

	// DeactivateEmployee marks an employee as inactive.
	DeactivateEmployee(ctx context.Context, employeeID string, userID string, now time.Time) error
}

// EmployeeRepositoryFacade combines all employee repository interfaces.
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}
