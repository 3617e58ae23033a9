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
)

var (
	ErrPeriodBoundsInverted = errors.New("period end date precedes start date")
	ErrPeriodOverlap        = errors.New("period overlaps an existing period")
	ErrPeriodAlreadyClosed  = errors.New("period is already closed")
)

// periodService manages financial periods.
type periodService struct {
	periodRepo portsrepo.PeriodRepositoryFacade
	now        func() time.Time
}

// NewPeriodService creates a new PeriodService.
func NewPeriodService(periodRepo portsrepo.PeriodRepositoryFacade) portssvc.PeriodSvcFacade {
	return &periodService{
		periodRepo: periodRepo,
		now:        time.Now,
	}
}

var _ portssvc.PeriodSvcFacade = (*periodService)(nil)

// CreatePeriod opens a new period. The window must be coherent and must not
// intersect any existing period, open or closed; the check is a range
// intersection so a window that fully contains an existing one is rejected
// too.
func (s *periodService) CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest, creatorUserID string) (*domain.FinancialPeriod, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.EndDate.Before(req.StartDate) {
		return nil, ErrPeriodBoundsInverted
	}

	existing, err := s.periodRepo.FindPeriodOverlapping(ctx, req.StartDate, req.EndDate)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check period overlap: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrPeriodOverlap, existing.Name)
	}

	now := s.now().UTC()
	period := domain.FinancialPeriod{
		PeriodID:  uuid.NewString(),
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    domain.PeriodOpen,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.periodRepo.SavePeriod(ctx, period); err != nil {
		logger.Error("Failed to save period", slog.String("error", err.Error()), slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save period: %w", err)
	}

	logger.Info("Period opened", slog.String("period_id", period.PeriodID), slog.String("name", period.Name))
	return &period, nil
}

// GetPeriodByID retrieves a period by identifier.
func (s *periodService) GetPeriodByID(ctx context.Context, periodID string) (*domain.FinancialPeriod, error) {
	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to find period %s: %w", periodID, err)
	}
	return period, nil
}

// GetOpenPeriodContaining retrieves the open period covering a date.
func (s *periodService) GetOpenPeriodContaining(ctx context.Context, date time.Time) (*domain.FinancialPeriod, error) {
	return s.periodRepo.FindOpenPeriodContaining(ctx, date)
}

// ListPeriods retrieves periods ordered by start date descending.
func (s *periodService) ListPeriods(ctx context.Context, limit int, offset int) ([]domain.FinancialPeriod, error) {
	if limit <= 0 || limit > 100 {
		limit = 24
	}
	if offset < 0 {
		offset = 0
	}
	return s.periodRepo.ListPeriods(ctx, limit, offset)
}

// ClosePeriod transitions a period to CLOSED. Closed periods stop accepting
// postings; the transition is not reversible through this service.
func (s *periodService) ClosePeriod(ctx context.Context, periodID string, userID string) (*domain.FinancialPeriod, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to find period %s: %w", periodID, err)
	}
	if period.Status == domain.PeriodClosed {
		return nil, fmt.Errorf("%w: %s", ErrPeriodAlreadyClosed, period.Name)
	}

	now := s.now().UTC()
	if err := s.periodRepo.ClosePeriod(ctx, periodID, userID, now); err != nil {
		logger.Error("Failed to close period", slog.String("error", err.Error()), slog.String("period_id", periodID))
		return nil, fmt.Errorf("failed to close period %s: %w", periodID, err)
	}

	period.Status = domain.PeriodClosed
	period.LastUpdatedAt = now
	period.LastUpdatedBy = userID

	logger.Info("Period closed", slog.String("period_id", periodID), slog.String("name", period.Name))
	return period, nil
}
