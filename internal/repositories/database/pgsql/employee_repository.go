package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/M231111107561100/erp-tiin/internal/apperrors"
	"github.com/M231111107561100/erp-tiin/internal/core/domain"
	portsrepo "github.com/M231111107561100/erp-tiin/internal/core/ports/repositories"
	"github.com/M231111107561100/erp-tiin/internal/models"
	"github.com/M231111107561100/erp-tiin/internal/utils/mapping"
)

type PgxEmployeeRepository struct {
	pool *pgxpool.Pool
}

// newPgxEmployeeRepository creates a new repository for employee data.
func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{pool: pool}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const employeeColumns = `employee_id, matricule, first_name, last_name, email, position, department, base_salary, hire_date, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanEmployee(row pgx.Row) (models.Employee, error) {
	var m models.Employee
	err := row.Scan(
		&m.EmployeeID,
		&m.Matricule,
		&m.FirstName,
		&m.LastName,
		&m.Email,
		&m.Position,
		&m.Department,
		&m.BaseSalary,
		&m.HireDate,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveEmployee inserts a new employee. A duplicate matricule surfaces as
// apperrors.ErrDuplicate.
func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)

	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.pool.Exec(ctx, query,
		m.EmployeeID,
		m.Matricule,
		m.FirstName,
		m.LastName,
		m.Email,
		m.Position,
		m.Department,
		m.BaseSalary,
		m.HireDate,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: matricule %s already registered", apperrors.ErrDuplicate, m.Matricule)
		}
		return fmt.Errorf("failed to save employee %s: %w", m.EmployeeID, err)
	}
	return nil
}

// FindEmployeeByID retrieves an employee by identifier.
func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE employee_id = $1;
	`
	m, err := scanEmployee(r.pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by ID %s: %w", employeeID, err)
	}

	d := mapping.ToDomainEmployee(m)
	return &d, nil
}

// FindEmployeeByMatricule retrieves an employee by employee number.
func (r *PgxEmployeeRepository) FindEmployeeByMatricule(ctx context.Context, matricule string) (*domain.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE matricule = $1;
	`
	m, err := scanEmployee(r.pool.QueryRow(ctx, query, matricule))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by matricule %s: %w", matricule, err)
	}

	d := mapping.ToDomainEmployee(m)
	return &d, nil
}

// ListEmployees retrieves employees ordered by matricule.
func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, activeOnly bool, limit int, offset int) ([]domain.Employee, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE ($1 = FALSE OR is_active = TRUE)
		ORDER BY matricule
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.pool.Query(ctx, query, activeOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		m, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, mapping.ToDomainEmployee(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", err)
	}
	return employees, nil
}

// UpdateEmployee updates an existing employee's mutable fields.
func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)

	query := `
		UPDATE employees
		SET first_name = $2, last_name = $3, email = $4, position = $5, department = $6,
		    base_salary = $7, last_updated_at = $8, last_updated_by = $9
		WHERE employee_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.EmployeeID,
		m.FirstName,
		m.LastName,
		m.Email,
		m.Position,
		m.Department,
		m.BaseSalary,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee %s: %w", m.EmployeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateEmployee marks an employee as inactive.
func (r *PgxEmployeeRepository) DeactivateEmployee(ctx context.Context, employeeID string, userID string, now time.Time) error {
	query := `
		UPDATE employees
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE employee_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, employeeID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate employee %s: %w", employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
