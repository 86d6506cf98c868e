package ports

import (
	"context"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// CreateSweetInput carries all data needed to add a sweet to the catalog.
type CreateSweetInput struct {
	Name        string
	Category    string
	Price       float64
	Quantity    int
	Description string
	ImageURL    string
}

// SweetService defines the use-case operations over the sweets catalog.
type SweetService interface {
	Create(ctx context.Context, input CreateSweetInput) (*domain.Sweet, error)
	List(ctx context.Context, skip, limit int) ([]*domain.Sweet, error)
	Get(ctx context.Context, id uint) (*domain.Sweet, error)
	Update(ctx context.Context, id uint, patch SweetPatch) (*domain.Sweet, error)
	Delete(ctx context.Context, id uint) error
	Search(ctx context.Context, filter SearchFilter) ([]*domain.Sweet, error)
	// Purchase decrements stock all-or-nothing; oversell is rejected with
	// domain.ErrSweetUnavailable and no mutation takes place.
	Purchase(ctx context.Context, id uint, quantity int) (*domain.Sweet, error)
	// Restock increments stock with no upper bound.
	Restock(ctx context.Context, id uint, quantity int) (*domain.Sweet, error)
}
