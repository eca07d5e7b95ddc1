package ports

import (
	"context"

	"github.com/threadmarket/marketplace-api/internal/core/domain"
)

// AuthRepository defines the persistence operations behind registration and
// login. Create must rely on the store's atomic uniqueness constraints:
// concurrent inserts with the same username or email resolve to exactly one
// success and one ErrUsernameTaken/ErrEmailTaken.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByRole(ctx context.Context, role string) ([]domain.User, error)
}
