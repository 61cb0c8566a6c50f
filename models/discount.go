package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DiscountType represents how a discount reduces the order subtotal.
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// Rejection codes returned when a discount cannot be applied. These are
// surfaced verbatim to the storefront so the customer can correct the cart
// or try another code.
const (
	DiscountNotFound  = "DISCOUNT_NOT_FOUND"
	DiscountInactive  = "DISCOUNT_INACTIVE"
	DiscountExpired   = "DISCOUNT_EXPIRED"
	MinOrderNotMet    = "MIN_ORDER_NOT_MET"
	UsageLimitReached = "USAGE_LIMIT_REACHED"
)

// Discount is a promotional code stored in Postgres. Codes are upper-cased
// on creation and unique.
type Discount struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Code           string         `gorm:"type:varchar(64);uniqueIndex;not null" json:"code"`
	Type           DiscountType   `gorm:"type:varchar(20);not null" json:"type"`
	Value          float64        `gorm:"not null" json:"value"`
	MinOrderAmount float64        `gorm:"not null;default:0" json:"min_order_amount"`
	MaxDiscount    *float64       `json:"max_discount,omitempty"` // percentage-only cap
	UsageLimit     *int           `json:"usage_limit,omitempty"`  // nil = unlimited
	UsedCount      int            `gorm:"not null;default:0" json:"used_count"`
	ValidFrom      time.Time      `gorm:"not null" json:"valid_from"`
	ValidUntil     time.Time      `gorm:"not null" json:"valid_until"`
	Active         bool           `gorm:"not null;default:true" json:"active"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// CreateDiscountRequest is the admin payload for creating a discount.
type CreateDiscountRequest struct {
	Code           string       `json:"code" binding:"required,min=3,max=64"`
	Type           DiscountType `json:"type" binding:"required,oneof=percentage fixed"`
	Value          float64      `json:"value" binding:"required,gt=0"`
	MinOrderAmount float64      `json:"min_order_amount" binding:"gte=0"`
	MaxDiscount    *float64     `json:"max_discount"`
	UsageLimit     *int         `json:"usage_limit"`
	ValidFrom      time.Time    `json:"valid_from" binding:"required"`
	ValidUntil     time.Time    `json:"valid_until" binding:"required"`
}

// ValidateDiscountRequest is the payload for validating a code against the
// current cart subtotal.
type ValidateDiscountRequest struct {
	Code     string  `json:"code" binding:"required"`
	Subtotal float64 `json:"subtotal" binding:"required,gt=0"`
}

// ValidateDiscountResponse is the outcome of a validation attempt. When Valid
// is false, Reason carries a stable machine code and Message a human-readable
// explanation.
type ValidateDiscountResponse struct {
	Valid          bool         `json:"valid"`
	Code           string       `json:"code"`
	Type           DiscountType `json:"type,omitempty"`
	DiscountAmount float64      `json:"discount_amount"`
	Reason         string       `json:"reason,omitempty"`
	Message        string       `json:"message,omitempty"`
}
