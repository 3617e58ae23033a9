package dto

import (
	"time"

	"github.com/M231111107561100/erp-tiin/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest defines the data needed to register an employee.
type CreateEmployeeRequest struct {
	Matricule  string          `json:"matricule" binding:"required"`
	FirstName  string          `json:"firstName" binding:"required"`
	LastName   string          `json:"lastName" binding:"required"`
	Email      string          `json:"email" binding:"omitempty,email"`
	Position   string          `json:"position"`
	Department string          `json:"department"`
	BaseSalary decimal.Decimal `json:"baseSalary" binding:"required"`
	HireDate   time.Time       `json:"hireDate" binding:"required"`
}

// UpdateEmployeeRequest defines the data allowed for updating an employee.
type UpdateEmployeeRequest struct {
	FirstName  *string          `json:"firstName"`
	LastName   *string          `json:"lastName"`
	Email      *string          `json:"email"`
	Position   *string          `json:"position"`
	Department *string          `json:"department"`
	BaseSalary *decimal.Decimal `json:"baseSalary"`
}

// EmployeeResponse defines the data returned for an employee.
type EmployeeResponse struct {
	EmployeeID string          `json:"employeeID"`
	Matricule  string          `json:"matricule"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	Email      string          `json:"email,omitempty"`
	Position   string          `json:"position,omitempty"`
	Department string          `json:"department,omitempty"`
	BaseSalary decimal.Decimal `json:"baseSalary"`
	HireDate   time.Time       `json:"hireDate"`
	IsActive   bool            `json:"isActive"`
}

// ToEmployeeResponse converts a domain.Employee to EmployeeResponse.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID: e.EmployeeID,
		Matricule:  e.Matricule,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Email:      e.Email,
		Position:   e.Position,
		Department: e.Department,
		BaseSalary: e.BaseSalary,
		HireDate:   e.HireDate,
		IsActive:   e.IsActive,
	}
}

// ToListEmployeeResponse converts a slice of employees to response DTOs.
func ToListEmployeeResponse(employees []domain.Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i := range employees {
		res[i] = ToEmployeeResponse(&employees[i])
	}
	return res
}

// ListEmployeesParams defines query parameters for listing employees.
type ListEmployeesParams struct {
	ActiveOnly bool `form:"activeOnly,default=false"`
	Limit      int  `form:"limit,default=50"`
	Offset     int  `form:"offset,default=0"`
}
