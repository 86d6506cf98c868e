package ports

import (
	"context"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// SweetPatch is a partial update: only non-nil fields are applied, every
// other column keeps its previous value.
type SweetPatch struct {
	Name        *string
	Category    *string
	Price       *float64
	Quantity    *int
	Description *string
	ImageURL    *string
}

// SearchFilter carries the optional search criteria. All provided filters
// combine with AND; name and category match as case-insensitive substrings,
// the price bounds are inclusive.
type SearchFilter struct {
	Name     string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

// SweetRepository defines persistence operations for the sweets catalog.
// Each call is a single transactional unit against the relational store.
type SweetRepository interface {
	List(ctx context.Context, offset, limit int) ([]*domain.Sweet, error)
	Get(ctx context.Context, id uint) (*domain.Sweet, error)
	Create(ctx context.Context, sweet *domain.Sweet) (*domain.Sweet, error)
	// Update applies the patch and returns the updated row, or
	// domain.ErrSweetNotFound when the id is absent.
	Update(ctx context.Context, id uint, patch SweetPatch) (*domain.Sweet, error)
	Delete(ctx context.Context, id uint) error
	Search(ctx context.Context, filter SearchFilter) ([]*domain.Sweet, error)
	// DecrementStock atomically subtracts quantity if enough stock is on hand.
	// Returns domain.ErrSweetUnavailable when the row is absent or the
	// decrement would drive quantity below zero; the row is left untouched.
	DecrementStock(ctx context.Context, id uint, quantity int) (*domain.Sweet, error)
	// IncrementStock adds quantity unconditionally, failing only when the id
	// is absent.
	IncrementStock(ctx context.Context, id uint, quantity int) (*domain.Sweet, error)
}
