package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/M231111107561100/erp-tiin/internal/apperrors"
	"github.com/M231111107561100/erp-tiin/internal/core/domain"
	portsrepo "github.com/M231111107561100/erp-tiin/internal/core/ports/repositories"
	portssvc "github.com/M231111107561100/erp-tiin/internal/core/ports/services"
	"github.com/M231111107561100/erp-tiin/internal/dto"
	"github.com/M231111107561100/erp-tiin/internal/middleware"
	"github.com/M231111107561100/erp-tiin/internal/utils/accounting"
)

var (
	ErrEntryMinLines            = errors.New("entry must have at least two lines")
	ErrLineNotExclusive         = errors.New("line must carry exactly one nonzero side")
	ErrUnbalancedEntry          = errors.New("entry debits and credits do not balance")
	ErrUnknownOrInactiveAccount = errors.New("account does not exist or is not active")
	ErrNoOpenPeriod             = errors.New("no open financial period found")
	ErrDateOutsidePeriod        = errors.New("entry date is outside the period window")
	ErrConcurrentPostConflict   = errors.New("concurrent posting conflict on entry number")
)

// maxPostAttempts bounds the retries when two concurrent posts collide on the
// (journalType, entryDate, sequence) unique constraint.
const maxPostAttempts = 3

// journalService implements double-entry posting against open periods.
type journalService struct {
	accountSvc  portssvc.AccountSvcFacade
	periodSvc   portssvc.PeriodSvcFacade
	journalRepo portsrepo.JournalRepositoryFacade
	auditRepo   portsrepo.AuditRepository
	now         func() time.Time
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountSvc portssvc.AccountSvcFacade, periodSvc portssvc.PeriodSvcFacade, auditRepo portsrepo.AuditRepository) portssvc.JournalSvcFacade {
	return &journalService{
		accountSvc:  accountSvc,
		periodSvc:   periodSvc,
		journalRepo: journalRepo,
		auditRepo:   auditRepo,
		now:         time.Now,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// PostEntry validates and persists one journal entry.
//
// Validation is fail-fast: balance, then account existence/activity, then
// period resolution and window, then numbering and atomic persistence. Any
// failure leaves nothing written. A unique-constraint collision on the entry
// number is retried with a fresh sequence before giving up.
func (s *journalService) PostEntry(ctx context.Context, cmd dto.PostEntryCommand) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !cmd.JournalType.IsValid() {
		return nil, fmt.Errorf("%w: unknown journal type %q", apperrors.ErrValidation, cmd.JournalType)
	}
	if cmd.PostedBy == "" {
		return nil, fmt.Errorf("%w: posting actor is required", apperrors.ErrValidation)
	}
	if len(cmd.Lines) < 2 {
		return nil, ErrEntryMinLines
	}

	now := s.now().UTC()
	entryID := uuid.NewString()

	// Materialize lines with 1-based numbers matching input order.
	lines := make([]domain.JournalLine, len(cmd.Lines))
	for i, spec := range cmd.Lines {
		lines[i] = domain.JournalLine{
			LineID:      uuid.NewString(),
			EntryID:     entryID,
			AccountCode: spec.AccountCode,
			Debit:       spec.Debit,
			Credit:      spec.Credit,
			Auxiliary:   spec.Auxiliary,
			CostCenter:  spec.CostCenter,
			Description: spec.Description,
			LineNumber:  i + 1,
		}
		if lines[i].Debit.IsNegative() || lines[i].Credit.IsNegative() {
			return nil, fmt.Errorf("%w: line %d amounts must not be negative", apperrors.ErrValidation, i+1)
		}
		if lines[i].Debit.IsPositive() == lines[i].Credit.IsPositive() {
			return nil, fmt.Errorf("%w: line %d", ErrLineNotExclusive, i+1)
		}
	}

	// Balance check, exact decimal equality.
	totalDebit := accounting.SumDebits(lines)
	totalCredit := accounting.SumCredits(lines)
	if !totalDebit.Equal(totalCredit) {
		return nil, fmt.Errorf("%w: debits total %s, credits total %s", ErrUnbalancedEntry, totalDebit.String(), totalCredit.String())
	}

	// Every distinct account code must resolve to an active account.
	seen := make(map[string]bool, len(lines))
	codes := make([]string, 0, len(lines))
	for _, line := range lines {
		if !seen[line.AccountCode] {
			seen[line.AccountCode] = true
			codes = append(codes, line.AccountCode)
		}
	}
	accounts, err := s.accountSvc.GetAccountsByCodes(ctx, codes)
	if err != nil {
		logger.Error("Failed to fetch accounts for posting", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, code := range codes {
		acc, found := accounts[code]
		if !found || !acc.IsActive {
			return nil, fmt.Errorf("%w: %s", ErrUnknownOrInactiveAccount, code)
		}
	}

	// Resolve the target period: explicit when given, otherwise the open
	// period covering the entry date.
	period, err := s.resolvePeriod(ctx, cmd)
	if err != nil {
		return nil, err
	}
	if !period.ContainsDate(cmd.EntryDate) {
		return nil, fmt.Errorf("%w: date %s, period %s to %s",
			ErrDateOutsidePeriod,
			cmd.EntryDate.Format("2006-01-02"),
			period.StartDate.Format("2006-01-02"),
			period.EndDate.Format("2006-01-02"))
	}

	entry := domain.JournalEntry{
		EntryID:     entryID,
		EntryDate:   cmd.EntryDate,
		Reference:   cmd.Reference,
		Memo:        cmd.Memo,
		JournalType: cmd.JournalType,
		PeriodID:    period.PeriodID,
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		IsPosted:    true,
		PostedAt:    now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     cmd.PostedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: cmd.PostedBy,
		},
	}

	// Re-check totals against the materialized lines before writing.
	if !entry.IsBalanced() {
		return nil, fmt.Errorf("%w: totals diverged after materialization", ErrUnbalancedEntry)
	}

	// Sequence = 1 + count of entries for the same (journalType, entryDate).
	// Two concurrent posts can compute the same sequence; the unique
	// constraint catches that and the whole numbering+insert is retried.
	for attempt := 1; ; attempt++ {
		count, err := s.journalRepo.CountEntries(ctx, cmd.JournalType, cmd.EntryDate)
		if err != nil {
			logger.Error("Failed to count entries for numbering", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to generate entry number: %w", err)
		}
		entry.Sequence = count + 1
		entry.EntryNumber = domain.FormatEntryNumber(cmd.JournalType, cmd.EntryDate, entry.Sequence)

		err = s.journalRepo.SaveEntry(ctx, entry, lines)
		if err == nil {
			break
		}
		if errors.Is(err, apperrors.ErrDuplicate) && attempt < maxPostAttempts {
			logger.Warn("Entry number collision, retrying",
				slog.String("entry_number", entry.EntryNumber),
				slog.Int("attempt", attempt))
			continue
		}
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %s", ErrConcurrentPostConflict, entry.EntryNumber)
		}
		logger.Error("Failed to save entry", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	s.recordAudit(ctx, domain.AuditLog{
		ActorID:  cmd.PostedBy,
		Action:   domain.AuditJournalPost,
		Entity:   "journal_entry",
		EntityID: entry.EntryID,
		Meta: map[string]any{
			"entry_number": entry.EntryNumber,
			"journal_type": string(entry.JournalType),
			"period_id":    entry.PeriodID,
		},
		At: now,
	})

	logger.Info("Journal entry posted",
		slog.String("entry_id", entry.EntryID),
		slog.String("entry_number", entry.EntryNumber))

	entry.Lines = lines
	return &entry, nil
}

// resolvePeriod locates the posting period for a command. An explicit period
// must exist and be open; otherwise the open period containing the entry date
// is used.
func (s *journalService) resolvePeriod(ctx context.Context, cmd dto.PostEntryCommand) (*domain.FinancialPeriod, error) {
	if cmd.PeriodID != "" {
		period, err := s.periodSvc.GetPeriodByID(ctx, cmd.PeriodID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: period %s", ErrNoOpenPeriod, cmd.PeriodID)
			}
			return nil, fmt.Errorf("failed to resolve period %s: %w", cmd.PeriodID, err)
		}
		if !period.IsOpen() {
			return nil, fmt.Errorf("%w: period %s is closed", ErrNoOpenPeriod, cmd.PeriodID)
		}
		return period, nil
	}

	period, err := s.periodSvc.GetOpenPeriodContaining(ctx, cmd.EntryDate)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: no open period covers %s", ErrNoOpenPeriod, cmd.EntryDate.Format("2006-01-02"))
		}
		return nil, fmt.Errorf("failed to resolve open period: %w", err)
	}
	return period, nil
}

// recordAudit appends an audit row after the entry committed. Audit failures
// are logged and swallowed; they must not undo a posted entry.
func (s *journalService) recordAudit(ctx context.Context, log domain.AuditLog) {
	if s.auditRepo == nil {
		return
	}
	log.AuditID = uuid.NewString()
	if err := s.auditRepo.RecordAudit(ctx, log); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to record audit log",
			slog.String("action", log.Action),
			slog.String("entity_id", log.EntityID),
			slog.String("error", err.Error()))
	}
}

// GetEntryByID retrieves an entry with its lines populated.
func (s *journalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find entry by ID", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		logger.Error("Failed to fetch lines for entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to retrieve lines for entry %s: %w", entryID, err)
	}
	entry.Lines = lines

	return entry, nil
}

// ListEntriesByPeriod retrieves entry headers for a period.
func (s *journalService) ListEntriesByPeriod(ctx context.Context, periodID string, limit int, offset int) ([]domain.JournalEntry, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.journalRepo.ListEntriesByPeriod(ctx, periodID, limit, offset)
}
