package models

import (
	"time"

	"github.com/google/uuid"
)

// Booking is an order placed by a customer for a product.
// A booking is unique on (name, email, product, price, date); a repeat
// submission with the same tuple is answered with the existing row.
type Booking struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name          string    `gorm:"not null;size:255" json:"name"`
	Email         string    `gorm:"not null;size:255;index" json:"email"`
	ProductID     uuid.UUID `gorm:"type:uuid;index" json:"product_id"`
	ProductName   string    `gorm:"not null;size:255" json:"product_name"`
	Quantity      int       `gorm:"not null;default:1" json:"quantity"`
	Price         float64   `gorm:"not null" json:"price"`
	Date          string    `gorm:"size:64" json:"date"`
	Phone         string    `gorm:"size:64" json:"phone,omitempty"`
	Address       string    `gorm:"size:500" json:"address,omitempty"`
	Paid          bool      `gorm:"not null;default:false" json:"paid"`
	TransactionID string    `gorm:"size:255;index" json:"transaction_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Payment records a completed gateway charge against a booking.
type Payment struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BookingID     uuid.UUID `gorm:"type:uuid;index" json:"booking_id"`
	Email         string    `gorm:"size:255;index" json:"email"`
	Amount        float64   `gorm:"not null" json:"amount"`
	TransactionID string    `gorm:"not null;size:255;uniqueIndex" json:"transaction_id"`
	CreatedAt     time.Time `json:"created_at"`
}
