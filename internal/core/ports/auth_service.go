package ports

import (
	"context"

	"github.com/threadmarket/marketplace-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Sellers(ctx context.Context) ([]domain.User, error)
}
