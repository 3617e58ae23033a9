package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/M231111107561100/erp-tiin/internal/apperrors"
	"github.com/M231111107561100/erp-tiin/internal/core/domain"
	portssvc "github.com/M231111107561100/erp-tiin/internal/core/ports/services"
	"github.com/M231111107561100/erp-tiin/internal/core/services"
	"github.com/M231111107561100/erp-tiin/internal/dto"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, accountCode string) (*domain.Account, error) {
	args := m.Called(ctx, accountCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByCodes(ctx context.Context, accountCodes []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountCodes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, accountCode string, userID string, now time.Time) error {
	args := m.Called(ctx, accountCode, userID, now)
	return args.Error(0)
}

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
	userID   string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
	suite.userID = uuid.NewString()
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{AccountCode: "411", Name: "Clients", Nature: domain.Actif}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal("411", account.AccountCode)
	suite.Equal("Clients", account.Name)
	suite.Equal(domain.Actif, account.Nature)
	suite.True(account.IsActive)
	suite.Equal(suite.userID, account.CreatedBy)
	suite.WithinDuration(time.Now().UTC(), account.CreatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{AccountCode: "411", Name: "Clients", Nature: domain.Actif}

	suite.mockRepo.On("SaveAccount", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.Contains(err.Error(), "411")
}

func (suite *AccountServiceTestSuite) TestGetAccountByCode_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindAccountByCode", ctx, "999").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetAccountByCode(ctx, "999")

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestGetAccountsByCodes_EmptyInput() {
	ctx := context.Background()

	accounts, err := suite.service.GetAccountsByCodes(ctx, nil)

	suite.Require().NoError(err)
	suite.Empty(accounts)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindAccountsByCodes", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestListAccounts_ClampsLimit() {
	ctx := context.Background()

	suite.mockRepo.On("ListAccounts", ctx, 50, 0).Return([]domain.Account{}, nil).Once()

	_, err := suite.service.ListAccounts(ctx, 0, -10)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_PartialPatch() {
	ctx := context.Background()
	existing := &domain.Account{AccountCode: "701", Name: "Ventes", Nature: domain.Produit, IsActive: true}
	newName := "Ventes de marchandises"
	req := dto.UpdateAccountRequest{Name: &newName}

	suite.mockRepo.On("FindAccountByCode", ctx, "701").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Name == newName && a.Nature == domain.Produit
	})).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, "701", req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.Equal(domain.Produit, updated.Nature)
	suite.Equal(suite.userID, updated.LastUpdatedBy)
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("DeactivateAccount", ctx, "999", suite.userID, mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeactivateAccount(ctx, "999", suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
