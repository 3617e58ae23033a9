package mapping

import (
	"github.com/M231111107561100/erp-tiin/internal/core/domain"
	"github.com/M231111107561100/erp-tiin/internal/models"
)

// ToModelEmployee converts a domain Employee to a model Employee.
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:  d.EmployeeID,
		Matricule:   d.Matricule,
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Email:       d.Email,
		Position:    d.Position,
		Department:  d.Department,
		BaseSalary:  d.BaseSalary,
		HireDate:    d.HireDate,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEmployee converts a model Employee to a domain Employee.
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:  m.EmployeeID,
		Matricule:   m.Matricule,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Email:       m.Email,
		Position:    m.Position,
		Department:  m.Department,
		BaseSalary:  m.BaseSalary,
		HireDate:    m.HireDate,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
