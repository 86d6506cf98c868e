package handler

import (
	"time"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Request types ---

// Price and quantity are pointers so that an explicit zero survives the
// required check.
type createSweetRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Category    string   `json:"category"    validate:"required"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
	Quantity    *int     `json:"quantity"    validate:"required,gte=0"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
}

// updateSweetRequest is a partial update: absent fields keep their prior
// value, so every field is optional and independently present.
type updateSweetRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"    validate:"omitempty,gte=0"`
	Quantity    *int     `json:"quantity" validate:"omitempty,gte=0"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image_url"`
}

type purchaseRequest struct {
	// Defaults to 1 when the body omits it.
	Quantity *int `json:"quantity" validate:"omitempty,gt=0"`
}

type restockRequest struct {
	Quantity *int `json:"quantity" validate:"required,gt=0"`
}

// --- Response types ---

// Response types are owned by the transport layer and intentionally separate
// from the domain entities, so the JSON contract is not coupled to internal
// changes. The password hash has no field here and can never serialize.

type userResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

type sweetResponse struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Price       float64    `json:"price"`
	Quantity    int        `json:"quantity"`
	Description string     `json:"description,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

func toSweetResponse(s *domain.Sweet) sweetResponse {
	return sweetResponse{
		ID:          s.ID,
		Name:        s.Name,
		Category:    s.Category,
		Price:       s.Price,
		Quantity:    s.Quantity,
		Description: s.Description,
		ImageURL:    s.ImageURL,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toSweetResponses(sweets []*domain.Sweet) []sweetResponse {
	out := make([]sweetResponse, 0, len(sweets))
	for _, s := range sweets {
		out = append(out, toSweetResponse(s))
	}
	return out
}
