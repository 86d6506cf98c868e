package ports

import (
	"context"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// UserRepository defines the persistence operations for user accounts.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
