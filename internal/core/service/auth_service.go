package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/threadmarket/marketplace-api/internal/core/auth"
	"github.com/threadmarket/marketplace-api/internal/core/domain"
	"github.com/threadmarket/marketplace-api/internal/core/ports"
)

// AuthService implements registration, login, and seller listing.
type AuthService struct {
	repo   ports.AuthRepository
	tokens *auth.Issuer
	log    zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, tokens *auth.Issuer, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, log: log}
}

// Register hashes the plaintext password exactly once and inserts the new
// identity. Uniqueness of username and email is enforced by the store's
// atomic indexes, so a concurrent duplicate registration loses cleanly with
// ErrUsernameTaken or ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, username, email, password, role string) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and issues a session token. Unknown email
// and wrong password both surface as ErrInvalidCredentials so the API cannot
// be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !auth.VerifyPassword(user.PasswordHash, password) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Username, user.Role)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("username", user.Username).Msg("login succeeded")
	return token, user, nil
}

// Sellers returns every identity registered with the seller role.
func (s *AuthService) Sellers(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindByRole(ctx, domain.RoleSeller)
}
