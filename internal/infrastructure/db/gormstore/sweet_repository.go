package gormstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

// SweetRepository persists the sweets catalog. Every mutation runs inside a
// transaction so no partial write is ever observable.
type SweetRepository struct {
	db *gorm.DB
}

func NewSweetRepository(db *gorm.DB) *SweetRepository {
	return &SweetRepository{db: db}
}

func (r *SweetRepository) List(ctx context.Context, offset, limit int) ([]*domain.Sweet, error) {
	var sweets []*domain.Sweet
	err := r.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&sweets).Error
	if err != nil {
		return nil, fmt.Errorf("list sweets: %w", err)
	}
	return sweets, nil
}

func (r *SweetRepository) Get(ctx context.Context, id uint) (*domain.Sweet, error) {
	var s domain.Sweet
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSweetNotFound
		}
		return nil, fmt.Errorf("get sweet: %w", err)
	}
	return &s, nil
}

func (r *SweetRepository) Create(ctx context.Context, sweet *domain.Sweet) (*domain.Sweet, error) {
	if err := r.db.WithContext(ctx).Create(sweet).Error; err != nil {
		return nil, fmt.Errorf("insert sweet: %w", err)
	}
	return sweet, nil
}

// Update applies only the fields present in the patch; everything else keeps
// its prior value. The existence check and the write share one transaction.
func (r *SweetRepository) Update(ctx context.Context, id uint, patch ports.SweetPatch) (*domain.Sweet, error) {
	var updated domain.Sweet
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&updated, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrSweetNotFound
			}
			return err
		}

		changes := patchChanges(patch)
		if len(changes) == 0 {
			return nil
		}
		changes["updated_at"] = time.Now().UTC()

		if err := tx.Model(&domain.Sweet{}).Where("id = ?", id).Updates(changes).Error; err != nil {
			return err
		}
		return tx.First(&updated, id).Error
	})
	if err != nil {
		if errors.Is(err, domain.ErrSweetNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update sweet: %w", err)
	}
	return &updated, nil
}

func (r *SweetRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Sweet{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete sweet: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrSweetNotFound
	}
	return nil
}

func (r *SweetRepository) Search(ctx context.Context, filter ports.SearchFilter) ([]*domain.Sweet, error) {
	q := r.db.WithContext(ctx).Model(&domain.Sweet{})

	// LOWER + LIKE keeps substring matching case-insensitive across both
	// SQLite and MySQL regardless of collation.
	if filter.Name != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.Category != "" {
		q = q.Where("LOWER(category) LIKE ?", "%"+strings.ToLower(filter.Category)+"%")
	}
	if filter.MinPrice != nil {
		q = q.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price <= ?", *filter.MaxPrice)
	}

	var sweets []*domain.Sweet
	if err := q.Order("id").Find(&sweets).Error; err != nil {
		return nil, fmt.Errorf("search sweets: %w", err)
	}
	return sweets, nil
}

// DecrementStock performs the purchase as an atomic conditional decrement:
//
//	UPDATE sweets SET quantity = quantity - ? WHERE id = ? AND quantity >= ?
//
// Zero affected rows means the sweet is absent or under-stocked; the two are
// indistinguishable here and the row is never driven negative, even under
// concurrent purchases.
func (r *SweetRepository) DecrementStock(ctx context.Context, id uint, quantity int) (*domain.Sweet, error) {
	var updated domain.Sweet
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Sweet{}).
			Where("id = ? AND quantity >= ?", id, quantity).
			Updates(map[string]any{
				"quantity":   gorm.Expr("quantity - ?", quantity),
				"updated_at": time.Now().UTC(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrSweetUnavailable
		}
		return tx.First(&updated, id).Error
	})
	if err != nil {
		if errors.Is(err, domain.ErrSweetUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("decrement stock: %w", err)
	}
	return &updated, nil
}

// IncrementStock adds quantity unconditionally; only an absent id fails.
func (r *SweetRepository) IncrementStock(ctx context.Context, id uint, quantity int) (*domain.Sweet, error) {
	var updated domain.Sweet
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Sweet{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"quantity":   gorm.Expr("quantity + ?", quantity),
				"updated_at": time.Now().UTC(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrSweetNotFound
		}
		return tx.First(&updated, id).Error
	})
	if err != nil {
		if errors.Is(err, domain.ErrSweetNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("increment stock: %w", err)
	}
	return &updated, nil
}

func patchChanges(patch ports.SweetPatch) map[string]any {
	changes := make(map[string]any)
	if patch.Name != nil {
		changes["name"] = *patch.Name
	}
	if patch.Category != nil {
		changes["category"] = *patch.Category
	}
	if patch.Price != nil {
		changes["price"] = *patch.Price
	}
	if patch.Quantity != nil {
		changes["quantity"] = *patch.Quantity
	}
	if patch.Description != nil {
		changes["description"] = *patch.Description
	}
	if patch.ImageURL != nil {
		changes["image_url"] = *patch.ImageURL
	}
	return changes
}
