package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is a sellable catalog item stored in Postgres.
type Product struct {
	ID            uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name          string           `gorm:"type:varchar(255);not null" json:"name"`
	Slug          string           `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Description   string           `gorm:"type:text" json:"description,omitempty"`
	BasePrice     float64          `gorm:"not null" json:"base_price"`
	SKU           string           `gorm:"type:varchar(64);uniqueIndex;not null" json:"sku"`
	CategoryID    *uuid.UUID       `gorm:"type:uuid;index" json:"category_id,omitempty"`
	StockQuantity int              `gorm:"not null;default:0" json:"stock_quantity"`
	Featured      bool             `gorm:"not null;default:false" json:"featured"`
	Active        bool             `gorm:"not null;default:true" json:"active"`
	Variants      []ProductVariant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variants,omitempty"`
	CreatedAt     time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt   `gorm:"index" json:"-"`
}

// ProductVariant is a priced sub-SKU of a product (e.g. size or color).
// Its price overrides the product's base price when added to a cart.
type ProductVariant struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProductID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	VariantName   string         `gorm:"type:varchar(255);not null" json:"variant_name"`
	SKU           string         `gorm:"type:varchar(64);uniqueIndex;not null" json:"sku"`
	Price         float64        `gorm:"not null" json:"price"`
	StockQuantity int            `gorm:"not null;default:0" json:"stock_quantity"`
	Active        bool           `gorm:"not null;default:true" json:"active"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// CreateProductRequest is the admin payload for creating a product.
type CreateProductRequest struct {
	Name          string     `json:"name" binding:"required,min=1,max=255"`
	Slug          string     `json:"slug" binding:"required,min=1,max=255"`
	Description   string     `json:"description"`
	BasePrice     float64    `json:"base_price" binding:"required,gt=0"`
	SKU           string     `json:"sku" binding:"required,min=1,max=64"`
	CategoryID    *uuid.UUID `json:"category_id"`
	StockQuantity int        `json:"stock_quantity" binding:"gte=0"`
	Featured      bool       `json:"featured"`
}

// CreateVariantRequest is the admin payload for adding a variant to a product.
type CreateVariantRequest struct {
	VariantName   string  `json:"variant_name" binding:"required,min=1,max=255"`
	SKU           string  `json:"sku" binding:"required,min=1,max=64"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	StockQuantity int     `json:"stock_quantity" binding:"gte=0"`
}
