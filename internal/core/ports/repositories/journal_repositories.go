package repositories

import (
	"context"
	"time"

	"github.com/M231111107561100/erp-tiin/internal/core/domain"
)

// JournalReader defines read operations for posted entries.
type JournalReader interface {
	// FindEntryByID retrieves an entry header by its identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// FindLinesByEntryID retrieves the lines of an entry ordered by line number.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)

	// CountEntries returns the number of entries already posted for the given
	// journal type on the given date. Only the calendar day of date is significant.
	CountEntries(ctx context.Context, journalType domain.JournalType, date time.Time) (int, error)

	// ListEntriesByPeriod retrieves entry headers for a period ordered by entry number.
	ListEntriesByPeriod(ctx context.Context, periodID string, limit int, offset int) ([]domain.JournalEntry, error)
}

// JournalWriter defines write operations for posted entries.
type JournalWriter interface {
	// SaveEntry persists an entry and all its lines in a single database
	// transaction. A collision on the (journal_type, entry_date, sequence)
	// unique constraint surfaces as apperrors.ErrDuplicate with nothing written.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error
}

// JournalRepositoryFacade combines all journal repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}

// JournalRepositoryWithTx extends JournalRepositoryFacade with transaction capabilities.
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}
