package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/rumanislam/plex-backend/internal/dto"
	"github.com/rumanislam/plex-backend/internal/services"
)

type PaymentHandler struct {
	paymentService *services.PaymentService
}

func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreateIntent handles POST /api/create-payment-intent: asks the
// gateway for a card intent over the product price and returns the
// client secret for the frontend to confirm.
func (h *PaymentHandler) CreateIntent(c *fiber.Ctx) error {
	var req dto.CreatePaymentIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.Price <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "A positive price is required",
		})
	}

	clientSecret, err := h.paymentService.CreateIntent(req.Price)
	if err != nil {
		slog.Error("payment intent creation failed", "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create payment intent",
		})
	}
	return c.JSON(dto.PaymentIntentResponse{ClientSecret: clientSecret})
}
