package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is a catalog item available for booking.
type Product struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name         string         `gorm:"not null;size:255;index" json:"name"`
	Description  string         `gorm:"type:text" json:"description,omitempty"`
	ImageURL     string         `gorm:"type:text" json:"img,omitempty"`
	Price        float64        `gorm:"not null" json:"price"`
	MinOrderQty  int            `gorm:"not null;default:1" json:"min_order_quantity"`
	AvailableQty int            `gorm:"not null;default:0" json:"available_quantity"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
