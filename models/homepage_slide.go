package models

import (
	"time"

	"github.com/google/uuid"
)

// HomepageSlide is a hero carousel entry rendered on the storefront homepage,
// shown in ascending display order.
type HomepageSlide struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title        string    `gorm:"type:varchar(255);not null" json:"title"`
	Subtitle     string    `gorm:"type:varchar(255)" json:"subtitle,omitempty"`
	ImageURL     string    `gorm:"type:varchar(512);not null" json:"image_url"`
	LinkURL      string    `gorm:"type:varchar(512)" json:"link_url,omitempty"`
	ButtonText   string    `gorm:"type:varchar(64)" json:"button_text,omitempty"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	Active       bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// CreateSlideRequest is the admin payload for creating a homepage slide.
type CreateSlideRequest struct {
	Title        string `json:"title" binding:"required,min=1,max=255"`
	Subtitle     string `json:"subtitle"`
	ImageURL     string `json:"image_url" binding:"required,min=1,max=512"`
	LinkURL      string `json:"link_url"`
	ButtonText   string `json:"button_text"`
	DisplayOrder int    `json:"display_order"`
}
