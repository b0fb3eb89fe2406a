package dto

import "github.com/rumanislam/plex-backend/internal/models"

// PaymentUpdateRequest is the body of PATCH /api/bookings/:id, sent by
// the frontend after the gateway confirms the charge.
type PaymentUpdateRequest struct {
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
	Email         string  `json:"email"`
}

type BookingResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Booking *models.Booking `json:"booking,omitempty"`
}

type OrdersResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	Orders  []models.Booking `json:"orders,omitempty"`
}

type CreatePaymentIntentRequest struct {
	Price float64 `json:"price"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
