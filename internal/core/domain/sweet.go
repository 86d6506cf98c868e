package domain

import "time"

// Sweet is the single inventory aggregate: one row per product with the
// on-hand quantity tracked in place.
//
// Quantity never goes negative: the store layer only decrements through an
// atomic conditional update (see gormstore.SweetRepository.DecrementStock).
type Sweet struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"size:191;not null"`
	Category    string     `json:"category" gorm:"size:191;not null"`
	Price       float64    `json:"price" gorm:"not null"`
	Quantity    int        `json:"quantity" gorm:"not null;default:0"`
	Description string     `json:"description,omitempty" gorm:"size:1024"`
	ImageURL    string     `json:"image_url,omitempty" gorm:"size:512"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty" gorm:"autoUpdateTime:false"`
}
