package ports

import (
	"context"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// RegisterInput carries the fields needed to create a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// AuthService handles registration, login, and bearer-token resolution.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token.
	Login(ctx context.Context, username, password string) (string, error)
	// CurrentUser resolves a bearer token to the user it was issued for.
	// Fails with domain.ErrInvalidToken when the token is malformed, expired,
	// or the subject no longer exists.
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
}
