package gormstore

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// EnsureAdmin creates the admin account if the username is not yet taken.
// Called at startup; a pre-existing account is left untouched.
func EnsureAdmin(ctx context.Context, db *gorm.DB, username, email, password string) error {
	var existing domain.User
	err := db.WithContext(ctx).Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check admin account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
	if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
		return fmt.Errorf("create admin account: %w", err)
	}
	return nil
}

// SeedCatalog inserts the given sweets when the catalog is empty. Used by
// cmd/seed to load the sample catalog; a non-empty catalog is never touched.
func SeedCatalog(ctx context.Context, db *gorm.DB, sweets []domain.Sweet) (int, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&domain.Sweet{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count sweets: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	if err := db.WithContext(ctx).Create(&sweets).Error; err != nil {
		return 0, fmt.Errorf("seed catalog: %w", err)
	}
	return len(sweets), nil
}
