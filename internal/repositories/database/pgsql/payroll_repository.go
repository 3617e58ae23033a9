package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/M231111107561100/erp-tiin/internal/apperrors"
	"github.com/M231111107561100/erp-tiin/internal/core/domain"
	portsrepo "github.com/M231111107561100/erp-tiin/internal/core/ports/repositories"
	"github.com/M231111107561100/erp-tiin/internal/models"
	"github.com/M231111107561100/erp-tiin/internal/utils/mapping"
)

type PgxPayrollRepository struct {
	pool *pgxpool.Pool
}

// newPgxPayrollRepository creates a new repository for payroll-run data.
func newPgxPayrollRepository(pool *pgxpool.Pool) portsrepo.PayrollRepositoryFacade {
	return &PgxPayrollRepository{pool: pool}
}

var _ portsrepo.PayrollRepositoryFacade = (*PgxPayrollRepository)(nil)

const payrollColumns = `run_id, employee_id, period, base_salary, bonuses, gross_salary, retirement_employee, retirement_employer, health_employee, health_employer, housing_employer, income_tax, fixed_levy, net_salary, created_at, created_by`

func scanPayrollRun(row pgx.Row) (models.PayrollRun, error) {
	var m models.PayrollRun
	err := row.Scan(
		&m.RunID,
		&m.EmployeeID,
		&m.Period,
		&m.BaseSalary,
		&m.Bonuses,
		&m.GrossSalary,
		&m.RetirementEmployee,
		&m.RetirementEmployer,
		&m.HealthEmployee,
		&m.HealthEmployer,
		&m.HousingEmployer,
		&m.IncomeTax,
		&m.FixedLevy,
		&m.NetSalary,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	return m, err
}

// SavePayrollRun appends one run. A second run for the same (employee, period)
// pair hits the unique constraint and surfaces as apperrors.ErrDuplicate.
func (r *PgxPayrollRepository) SavePayrollRun(ctx context.Context, run domain.PayrollRun) error {
	m := mapping.ToModelPayrollRun(run)

	query := `
		INSERT INTO payroll_runs (` + payrollColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.pool.Exec(ctx, query,
		m.RunID,
		m.EmployeeID,
		m.Period,
		m.BaseSalary,
		m.Bonuses,
		m.GrossSalary,
		m.RetirementEmployee,
		m.RetirementEmployer,
		m.HealthEmployee,
		m.HealthEmployer,
		m.HousingEmployer,
		m.IncomeTax,
		m.FixedLevy,
		m.NetSalary,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: payroll already processed for employee %s period %s", apperrors.ErrDuplicate, m.EmployeeID, m.Period)
		}
		return fmt.Errorf("failed to save payroll run %s: %w", m.RunID, err)
	}
	return nil
}

// FindRunByID retrieves a payroll run by identifier.
func (r *PgxPayrollRepository) FindRunByID(ctx context.Context, runID string) (*domain.PayrollRun, error) {
	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_runs
		WHERE run_id = $1;
	`
	m, err := scanPayrollRun(r.pool.QueryRow(ctx, query, runID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payroll run by ID %s: %w", runID, err)
	}

	d := mapping.ToDomainPayrollRun(m)
	return &d, nil
}

// FindRunForPeriod retrieves the run for an (employee, period) pair.
func (r *PgxPayrollRepository) FindRunForPeriod(ctx context.Context, employeeID string, period string) (*domain.PayrollRun, error) {
	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_runs
		WHERE employee_id = $1 AND period = $2;
	`
	m, err := scanPayrollRun(r.pool.QueryRow(ctx, query, employeeID, period))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payroll run for employee %s period %s: %w", employeeID, period, err)
	}

	d := mapping.ToDomainPayrollRun(m)
	return &d, nil
}

// ListRunsByEmployee retrieves an employee's runs ordered by period descending.
func (r *PgxPayrollRepository) ListRunsByEmployee(ctx context.Context, employeeID string, limit int, offset int) ([]domain.PayrollRun, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_runs
		WHERE employee_id = $1
		ORDER BY period DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.pool.Query(ctx, query, employeeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll runs for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	var runs []domain.PayrollRun
	for rows.Next() {
		m, err := scanPayrollRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll run row: %w", err)
		}
		runs = append(runs, mapping.ToDomainPayrollRun(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payroll run rows: %w", err)
	}
	return runs, nil
}
