package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/M231111107561100/erp-tiin/internal/apperrors"
	"github.com/M231111107561100/erp-tiin/internal/core/domain"
	portsrepo "github.com/M231111107561100/erp-tiin/internal/core/ports/repositories"
	portssvc "github.com/M231111107561100/erp-tiin/internal/core/ports/services"
	"github.com/M231111107561100/erp-tiin/internal/dto"
	"github.com/M231111107561100/erp-tiin/internal/middleware"
)

// accountService manages the chart of accounts.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	now         func() time.Time
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: accountRepo,
		now:         time.Now,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount persists a new account. Account codes are unique.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := s.now().UTC()
	account := domain.Account{
		AccountCode: req.AccountCode,
		Name:        req.Name,
		Nature:      req.Nature,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: account code %s", apperrors.ErrDuplicate, req.AccountCode)
		}
		logger.Error("Failed to save account", slog.String("error", err.Error()), slog.String("account_code", req.AccountCode))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	logger.Info("Account created", slog.String("account_code", account.AccountCode))
	return &account, nil
}

// GetAccountByCode retrieves an account by its business key.
func (s *accountService) GetAccountByCode(ctx context.Context, accountCode string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, accountCode)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountCode, err)
	}
	return account, nil
}

// GetAccountsByCodes retrieves multiple accounts keyed by code.
func (s *accountService) GetAccountsByCodes(ctx context.Context, accountCodes []string) (map[string]domain.Account, error) {
	if len(accountCodes) == 0 {
		return map[string]domain.Account{}, nil
	}
	return s.accountRepo.FindAccountsByCodes(ctx, accountCodes)
}

// ListAccounts retrieves accounts ordered by code.
func (s *accountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.accountRepo.ListAccounts(ctx, limit, offset)
}

// UpdateAccount updates an account's name or nature.
func (s *accountService) UpdateAccount(ctx context.Context, accountCode string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByCode(ctx, accountCode)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountCode, err)
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Nature != nil {
		account.Nature = *req.Nature
	}
	account.LastUpdatedAt = s.now().UTC()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to update account", slog.String("error", err.Error()), slog.String("account_code", accountCode))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return account, nil
}

// DeactivateAccount marks an account as inactive; posted lines keep
// referencing it but no new lines may.
func (s *accountService) DeactivateAccount(ctx context.Context, accountCode string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.accountRepo.DeactivateAccount(ctx, accountCode, userID, s.now().UTC()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to deactivate account", slog.String("error", err.Error()), slog.String("account_code", accountCode))
		}
		return fmt.Errorf("failed to deactivate account %s: %w", accountCode, err)
	}

	logger.Info("Account deactivated", slog.String("account_code", accountCode))
	return nil
}
