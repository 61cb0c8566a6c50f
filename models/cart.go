package models

import (
	"time"

	"github.com/google/uuid"
)

// CartLine is one product (optionally a variant) plus a quantity awaiting
// checkout.
type CartLine struct {
	ProductID uuid.UUID  `json:"product_id" binding:"required"`
	VariantID *uuid.UUID `json:"variant_id,omitempty"`
	Quantity  int        `json:"quantity" binding:"required,min=1"`
}

// Cart is the per-user cart snapshot stored in Redis.
type Cart struct {
	UserID    string     `json:"user_id"`
	Lines     []CartLine `json:"lines"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// UpdateQuantityRequest changes the quantity of an existing cart line.
type UpdateQuantityRequest struct {
	ProductID uuid.UUID  `json:"product_id" binding:"required"`
	VariantID *uuid.UUID `json:"variant_id,omitempty"`
	Quantity  int        `json:"quantity" binding:"required,min=1"`
}
