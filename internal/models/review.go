package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is customer feedback, optionally tied to a product.
type Review struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email     string     `gorm:"not null;size:255;index" json:"email"`
	Name      string     `gorm:"size:255" json:"name,omitempty"`
	ProductID *uuid.UUID `gorm:"type:uuid;index" json:"product_id,omitempty"`
	Rating    int        `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment   string     `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
