package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order lifecycle statuses.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Payment statuses.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

// Address is the shipping/billing address captured at checkout and stored as
// JSON on the order.
type Address struct {
	Name    string `json:"name" binding:"required"`
	Line1   string `json:"line1" binding:"required"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	Pincode string `json:"pincode" binding:"required,len=6,numeric"`
	Phone   string `json:"phone" binding:"required"`
}

// Order owns an immutable snapshot of the price breakdown computed at
// checkout. Later catalog or discount changes never alter it.
type Order struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderNumber    string         `gorm:"type:varchar(32);uniqueIndex;not null" json:"order_number"`
	UserID         string         `gorm:"type:varchar(128);not null;index" json:"user_id"`
	Status         string         `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Subtotal       float64        `gorm:"not null" json:"subtotal"`
	DiscountAmount float64        `gorm:"not null;default:0" json:"discount_amount"`
	DiscountCode   *string        `gorm:"type:varchar(64)" json:"discount_code,omitempty"`
	ShippingCharge float64        `gorm:"not null" json:"shipping_charge"`
	TaxAmount      float64        `gorm:"not null;default:0" json:"tax_amount"`
	TotalAmount    float64        `gorm:"not null" json:"total_amount"`
	PaymentMethod  string         `gorm:"type:varchar(32);not null" json:"payment_method"`
	PaymentStatus  string         `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"`
	ShippingAddr   string         `gorm:"type:jsonb;not null" json:"-"`
	BillingAddr    string         `gorm:"type:jsonb;not null" json:"-"`
	Pincode        string         `gorm:"type:varchar(6);not null" json:"pincode"`
	CustomerName   string         `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail  string         `gorm:"type:varchar(255);not null" json:"customer_email"`
	CustomerPhone  string         `gorm:"type:varchar(32);not null" json:"customer_phone"`
	Items          []OrderItem    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// OrderItem denormalizes product and variant names plus the unit price at the
// time of purchase so historical orders survive catalog changes.
type OrderItem struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID   uuid.UUID  `gorm:"type:uuid;not null" json:"product_id"`
	VariantID   *uuid.UUID `gorm:"type:uuid" json:"variant_id,omitempty"`
	ProductName string     `gorm:"type:varchar(255);not null" json:"product_name"`
	VariantName *string    `gorm:"type:varchar(255)" json:"variant_name,omitempty"`
	Quantity    int        `gorm:"not null" json:"quantity"`
	UnitPrice   float64    `gorm:"not null" json:"unit_price"`
	TotalPrice  float64    `gorm:"not null" json:"total_price"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

// PriceBreakdown is the computed pricing for a checkout attempt. It is
// persisted as fields on the Order, never recomputed afterward.
type PriceBreakdown struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discount_amount"`
	ShippingCharge float64 `json:"shipping_charge"`
	TaxAmount      float64 `json:"tax_amount"`
	TotalAmount    float64 `json:"total_amount"`
}

// PlaceOrderRequest is the checkout payload. The cart itself is read
// server-side; the request carries only address, contact and payment intent.
type PlaceOrderRequest struct {
	ShippingAddress Address  `json:"shipping_address" binding:"required"`
	BillingAddress  *Address `json:"billing_address"` // defaults to shipping
	PaymentMethod   string   `json:"payment_method" binding:"required,oneof=cod razorpay"`
	DiscountCode    *string  `json:"discount_code"`
	CustomerName    string   `json:"customer_name" binding:"required"`
	CustomerEmail   string   `json:"customer_email" binding:"required,email"`
	CustomerPhone   string   `json:"customer_phone" binding:"required"`
}

// UpdateOrderStatusRequest transitions the order lifecycle or payment status.
type UpdateOrderStatusRequest struct {
	Status        *string `json:"status" binding:"omitempty,oneof=pending confirmed shipped delivered cancelled"`
	PaymentStatus *string `json:"payment_status" binding:"omitempty,oneof=pending paid failed refunded"`
}

// OrderPlacedEvent is published to Kafka after an order is persisted.
type OrderPlacedEvent struct {
	Event        string    `json:"event"` // "order.placed"
	OrderID      string    `json:"order_id"`
	OrderNumber  string    `json:"order_number"`
	UserID       string    `json:"user_id"`
	TotalAmount  float64   `json:"total_amount"`
	DiscountCode *string   `json:"discount_code,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// OrderStatusChangedEvent is published to Kafka on lifecycle transitions.
type OrderStatusChangedEvent struct {
	Event       string    `json:"event"` // "order.status_changed"
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
}
