package services

import (
	"context"

	"github.com/M231111107561100/erp-tiin/internal/core/domain"
	"github.com/M231111107561100/erp-tiin/internal/dto"
)

// EmployeeReaderSvc defines read operations for employee data.
type EmployeeReaderSvc interface {
	// GetEmployeeByID retrieves an employee by identifier.
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// ListEmployees retrieves employees, optionally active only.
	ListEmployees(ctx context.Context, activeOnly bool, limit int, offset int) ([]domain.Employee, error)
}

// EmployeeWriterSvc defines write operations for employee data.
type EmployeeWriterSvc interface {
	// CreateEmployee persists a new employee.
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, creatorUserID string) (*domain.Employee, error)

	// UpdateEmployee updates an employee's details.
	UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, userID string) (*domain.Employee, error)

	// DeactivateEmployee marks an employee as inactive.
	DeactivateEmployee(ctx context.Context, employeeID string, userID string) error
}

// EmployeeSvcFacade combines all employee service interfaces.
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
}
