package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/M231111107561100/erp-tiin/internal/apperrors"
	"github.com/M231111107561100/erp-tiin/internal/core/domain"
	portssvc "github.com/M231111107561100/erp-tiin/internal/core/ports/services"
	"github.com/M231111107561100/erp-tiin/internal/core/services"
	"github.com/M231111107561100/erp-tiin/internal/dto"
)

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// --- User service ---

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func (suite *UserServiceTestSuite) TestCreateUser_HashesPassword() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Username: "comptable1", Name: "Awa Ndiaye", Password: "s3cret-passphrase"}

	var saved domain.User
	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.User)
		}).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.Equal("comptable1", user.Username)
	suite.True(user.IsActive)
	suite.NotEqual("s3cret-passphrase", saved.PasswordHash)
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("s3cret-passphrase")))
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Username: "comptable1", Name: "Awa Ndiaye", Password: "s3cret-passphrase"}

	suite.mockRepo.On("SaveUser", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateUser(ctx, req, uuid.NewString())

	suite.Require().ErrorIs(err, services.ErrDuplicateUsername)
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetUserByID(ctx, userID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

// --- Auth service ---

type AuthServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.AuthSvcFacade
	cfg      services.AuthConfig
	user     domain.User
	password string
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.cfg = services.AuthConfig{
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
		JWTIssuer: "erp-tiin-test",
	}
	suite.service = services.NewAuthService(suite.mockRepo, suite.cfg)

	suite.password = "s3cret-passphrase"
	hash, err := bcrypt.GenerateFromPassword([]byte(suite.password), bcrypt.MinCost)
	suite.Require().NoError(err)
	suite.user = domain.User{
		UserID:       uuid.NewString(),
		Username:     "comptable1",
		Name:         "Awa Ndiaye",
		PasswordHash: string(hash),
		IsActive:     true,
	}
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByUsername", ctx, "comptable1").Return(&suite.user, nil).Once()

	token, user, err := suite.service.Login(ctx, "comptable1", suite.password)

	suite.Require().NoError(err)
	suite.Equal(suite.user.UserID, user.UserID)
	suite.NotEmpty(token)

	// The token must carry the user ID as subject, signed with our secret.
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		return []byte(suite.cfg.JWTSecret), nil
	})
	suite.Require().NoError(err)
	claims := parsed.Claims.(*jwt.RegisteredClaims)
	suite.Equal(suite.user.UserID, claims.Subject)
	suite.Equal(suite.cfg.JWTIssuer, claims.Issuer)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByUsername", ctx, "comptable1").Return(&suite.user, nil).Once()

	_, _, err := suite.service.Login(ctx, "comptable1", "not-the-password")

	suite.Require().ErrorIs(err, services.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownUser() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.Login(ctx, "ghost", suite.password)

	suite.Require().ErrorIs(err, services.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestLogin_InactiveUser() {
	ctx := context.Background()
	inactive := suite.user
	inactive.IsActive = false

	suite.mockRepo.On("FindUserByUsername", ctx, "comptable1").Return(&inactive, nil).Once()

	_, _, err := suite.service.Login(ctx, "comptable1", suite.password)

	suite.Require().ErrorIs(err, services.ErrInvalidCredentials)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
