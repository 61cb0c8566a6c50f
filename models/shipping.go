package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PincodeLength is the fixed width of Indian postal codes. Range comparisons
// rely on every stored code having exactly this width.
const PincodeLength = 6

// ShippingRule maps a contiguous pincode range to delivery terms. A pincode is
// covered by a rule iff pincodeStart <= pincode <= pincodeEnd under plain
// string comparison, which is numeric order at fixed width.
type ShippingRule struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PincodeStart   string         `gorm:"type:varchar(6);not null;index" json:"pincode_start"`
	PincodeEnd     string         `gorm:"type:varchar(6);not null;index" json:"pincode_end"`
	State          string         `gorm:"type:varchar(100);not null" json:"state"`
	DeliveryDays   int            `gorm:"not null" json:"delivery_days"`
	ShippingCharge float64        `gorm:"not null" json:"shipping_charge"`
	CodAvailable   bool           `gorm:"not null;default:true" json:"cod_available"`
	Active         bool           `gorm:"not null;default:true" json:"active"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// CreateShippingRuleRequest is the admin payload for creating a shipping rule.
type CreateShippingRuleRequest struct {
	PincodeStart   string  `json:"pincode_start" binding:"required,len=6,numeric"`
	PincodeEnd     string  `json:"pincode_end" binding:"required,len=6,numeric"`
	State          string  `json:"state" binding:"required,min=1,max=100"`
	DeliveryDays   int     `json:"delivery_days" binding:"required,min=1"`
	ShippingCharge float64 `json:"shipping_charge" binding:"gte=0"`
	CodAvailable   bool    `json:"cod_available"`
}

// PincodeCheckResponse is returned to the storefront when a pincode is
// serviceable.
type PincodeCheckResponse struct {
	Pincode        string  `json:"pincode"`
	State          string  `json:"state"`
	DeliveryDays   int     `json:"delivery_days"`
	ShippingCharge float64 `json:"shipping_charge"`
	CodAvailable   bool    `json:"cod_available"`
}
