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
	"github.com/M231111107561100/erp-tiin/internal/utils/accounting"
	"github.com/M231111107561100/erp-tiin/internal/utils/mapping"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal-entry data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryWithTx {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

const entryColumns = `entry_id, entry_number, sequence, entry_date, reference, memo, journal_type, period_id, total_debit, total_credit, is_posted, posted_at, created_at, created_by, last_updated_at, last_updated_by`

const lineColumns = `line_id, entry_id, account_code, debit, credit, auxiliary, cost_center, description, line_number`

func scanEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.EntryNumber,
		&m.Sequence,
		&m.EntryDate,
		&m.Reference,
		&m.Memo,
		&m.JournalType,
		&m.PeriodID,
		&m.TotalDebit,
		&m.TotalCredit,
		&m.IsPosted,
		&m.PostedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanLine(row pgx.Row) (models.JournalLine, error) {
	var m models.JournalLine
	err := row.Scan(
		&m.LineID,
		&m.EntryID,
		&m.AccountCode,
		&m.Debit,
		&m.Credit,
		&m.Auxiliary,
		&m.CostCenter,
		&m.Description,
		&m.LineNumber,
	)
	return m, err
}

// SaveEntry persists an entry and all its lines in a single transaction.
// Nothing is written for an unbalanced line set. A collision on the
// (journal_type, entry_date, sequence) unique constraint rolls everything
// back and surfaces as apperrors.ErrDuplicate so the poster can renumber.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	if err := accounting.ValidateEntryBalance(lines); err != nil {
		return fmt.Errorf("refusing to persist entry %s: %w", entry.EntryID, err)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelJournalEntry(entry)
	entryQuery := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err = tx.Exec(ctx, entryQuery,
		m.EntryID,
		m.EntryNumber,
		m.Sequence,
		m.EntryDate,
		m.Reference,
		m.Memo,
		m.JournalType,
		m.PeriodID,
		m.TotalDebit,
		m.TotalCredit,
		m.IsPosted,
		m.PostedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: entry number %s already taken", apperrors.ErrDuplicate, m.EntryNumber)
		}
		return fmt.Errorf("failed to insert entry %s: %w", m.EntryID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_lines (` + lineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	for _, line := range lines {
		ml := mapping.ToModelJournalLine(line)
		batch.Queue(lineQuery,
			ml.LineID,
			ml.EntryID,
			ml.AccountCode,
			ml.Debit,
			ml.Credit,
			ml.Auxiliary,
			ml.CostCenter,
			ml.Description,
			ml.LineNumber,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for range lines {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to insert line for entry %s: %w", m.EntryID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close line batch for entry %s: %w", m.EntryID, err)
	}

	return r.Commit(ctx, tx)
}

// FindEntryByID retrieves an entry header by its identifier.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE entry_id = $1;
	`
	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry by ID %s: %w", entryID, err)
	}

	d := mapping.ToDomainJournalEntry(m)
	return &d, nil
}

// FindLinesByEntryID retrieves the lines of an entry ordered by line number.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	query := `
		SELECT ` + lineColumns + `
		FROM journal_lines
		WHERE entry_id = $1
		ORDER BY line_number;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for entry %s: %w", entryID, err)
	}
	defer rows.Close()

	var lines []domain.JournalLine
	for rows.Next() {
		m, err := scanLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan line row for entry %s: %w", entryID, err)
		}
		lines = append(lines, mapping.ToDomainJournalLine(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating line rows for entry %s: %w", entryID, err)
	}
	return lines, nil
}

// CountEntries returns the number of entries already posted for the given
// journal type on the calendar day of date.
func (r *PgxJournalRepository) CountEntries(ctx context.Context, journalType domain.JournalType, date time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM journal_entries
		WHERE journal_type = $1
		  AND entry_date::date = $2::date;
	`
	var count int
	if err := r.Pool.QueryRow(ctx, query, models.JournalType(journalType), date).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count entries for journal %s on %s: %w", journalType, date.Format("2006-01-02"), err)
	}
	return count, nil
}

// ListEntriesByPeriod retrieves entry headers for a period ordered by entry number.
func (r *PgxJournalRepository) ListEntriesByPeriod(ctx context.Context, periodID string, limit int, offset int) ([]domain.JournalEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE period_id = $1
		ORDER BY entry_number
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, periodID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries for period %s: %w", periodID, err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		entries = append(entries, mapping.ToDomainJournalEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry rows: %w", err)
	}
	return entries, nil
}
