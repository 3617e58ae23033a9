package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/M231111107561100/erp-tiin/internal/apperrors"
	"github.com/M231111107561100/erp-tiin/internal/core/domain"
	portsrepo "github.com/M231111107561100/erp-tiin/internal/core/ports/repositories"
	portssvc "github.com/M231111107561100/erp-tiin/internal/core/ports/services"
	"github.com/M231111107561100/erp-tiin/internal/middleware"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthConfig carries the token-signing parameters for the auth service.
type AuthConfig struct {
	JWTSecret string
	JWTExpiry time.Duration
	JWTIssuer string
}

// authService verifies credentials and issues bearer tokens.
type authService struct {
	userRepo portsrepo.UserRepositoryFacade
	cfg      AuthConfig
	now      func() time.Time
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, cfg AuthConfig) portssvc.AuthSvcFacade {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
		now:      time.Now,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies the credentials and returns a signed JWT whose subject is
// the user ID. Lookup failures and bad passwords collapse into the same
// error so the response does not reveal which usernames exist.
func (s *authService) Login(ctx context.Context, username string, password string) (string, *domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		logger.Error("Failed to find user for login", slog.String("error", err.Error()))
		return "", nil, fmt.Errorf("failed to find user: %w", err)
	}
	if !user.IsActive {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Warn("Password mismatch on login", slog.String("username", username))
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.signToken(user.UserID)
	if err != nil {
		logger.Error("Failed to sign token", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	return token, user, nil
}

func (s *authService) signToken(userID string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Issuer:    s.cfg.JWTIssuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
