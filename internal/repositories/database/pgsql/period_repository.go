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

type PgxPeriodRepository struct {
	pool *pgxpool.Pool
}

// newPgxPeriodRepository creates a new repository for financial-period data.
func newPgxPeriodRepository(pool *pgxpool.Pool) portsrepo.PeriodRepositoryFacade {
	return &PgxPeriodRepository{pool: pool}
}

var _ portsrepo.PeriodRepositoryFacade = (*PgxPeriodRepository)(nil)

const periodColumns = `period_id, name, start_date, end_date, status, created_at, created_by, last_updated_at, last_updated_by`

func scanPeriod(row pgx.Row) (models.FinancialPeriod, error) {
	var m models.FinancialPeriod
	err := row.Scan(
		&m.PeriodID,
		&m.Name,
		&m.StartDate,
		&m.EndDate,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SavePeriod inserts a new period.
func (r *PgxPeriodRepository) SavePeriod(ctx context.Context, period domain.FinancialPeriod) error {
	m := mapping.ToModelPeriod(period)

	query := `
		INSERT INTO financial_periods (` + periodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		m.PeriodID,
		m.Name,
		m.StartDate,
		m.EndDate,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: period %s already exists", apperrors.ErrDuplicate, m.PeriodID)
		}
		return fmt.Errorf("failed to save period %s: %w", m.PeriodID, err)
	}
	return nil
}

// FindPeriodByID retrieves a period by its identifier.
func (r *PgxPeriodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.FinancialPeriod, error) {
	query := `
		SELECT ` + periodColumns + `
		FROM financial_periods
		WHERE period_id = $1;
	`
	m, err := scanPeriod(r.pool.QueryRow(ctx, query, periodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find period by ID %s: %w", periodID, err)
	}

	d := mapping.ToDomainPeriod(m)
	return &d, nil
}

// FindOpenPeriodContaining retrieves the open period whose window contains
// the given date. Both boundary days are inclusive, so the comparison is on
// the calendar day of date.
func (r *PgxPeriodRepository) FindOpenPeriodContaining(ctx context.Context, date time.Time) (*domain.FinancialPeriod, error) {
	query := `
		SELECT ` + periodColumns + `
		FROM financial_periods
		WHERE status = $1
		  AND start_date::date <= $2::date
		  AND end_date::date >= $2::date
		ORDER BY start_date
		LIMIT 1;
	`
	m, err := scanPeriod(r.pool.QueryRow(ctx, query, models.PeriodOpen, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find open period containing %s: %w", date.Format("2006-01-02"), err)
	}

	d := mapping.ToDomainPeriod(m)
	return &d, nil
}

// FindPeriodOverlapping retrieves any period whose window intersects
// [start, end]. Status is ignored: a closed period still owns its dates.
func (r *PgxPeriodRepository) FindPeriodOverlapping(ctx context.Context, start time.Time, end time.Time) (*domain.FinancialPeriod, error) {
	query := `
		SELECT ` + periodColumns + `
		FROM financial_periods
		WHERE start_date::date <= $2::date
		  AND end_date::date >= $1::date
		ORDER BY start_date
		LIMIT 1;
	`
	m, err := scanPeriod(r.pool.QueryRow(ctx, query, start, end))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find period overlapping %s..%s: %w",
			start.Format("2006-01-02"), end.Format("2006-01-02"), err)
	}

	d := mapping.ToDomainPeriod(m)
	return &d, nil
}

// ListPeriods retrieves periods ordered by start date descending.
func (r *PgxPeriodRepository) ListPeriods(ctx context.Context, limit int, offset int) ([]domain.FinancialPeriod, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + periodColumns + `
		FROM financial_periods
		ORDER BY start_date DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query periods: %w", err)
	}
	defer rows.Close()

	var periods []domain.FinancialPeriod
	for rows.Next() {
		m, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan period row: %w", err)
		}
		periods = append(periods, mapping.ToDomainPeriod(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating period rows: %w", err)
	}
	return periods, nil
}

// ClosePeriod transitions a period to CLOSED.
func (r *PgxPeriodRepository) ClosePeriod(ctx context.Context, periodID string, userID string, now time.Time) error {
	query := `
		UPDATE financial_periods
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE period_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, periodID, models.PeriodClosed, now, userID)
	if err != nil {
		return fmt.Errorf("failed to close period %s: %w", periodID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
