package domain

import "time"

// User models an authenticated actor in the system. Registration always
// produces a regular user; the admin flag is only set by seeding.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:191;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:191;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	IsAdmin      bool      `json:"is_admin" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"created_at"`
}
