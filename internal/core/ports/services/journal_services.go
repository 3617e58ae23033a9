package services

import (
	"context"

	"github.com/M231111107561100/erp-tiin/internal/core/domain"
	"github.com/M231111107561100/erp-tiin/internal/dto"
)

// JournalReaderSvc defines read operations for posted entries.
type JournalReaderSvc interface {
	// GetEntryByID retrieves an entry with its lines populated.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntriesByPeriod retrieves entry headers for a period.
	ListEntriesByPeriod(ctx context.Context, periodID string, limit int, offset int) ([]domain.JournalEntry, error)
}

// JournalWriterSvc defines the posting operation.
type JournalWriterSvc interface {
	// PostEntry validates and atomically persists a balanced journal entry.
	PostEntry(ctx context.Context, cmd dto.PostEntryCommand) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal service interfaces.
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
