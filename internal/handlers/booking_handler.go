package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rumanislam/plex-backend/internal/dto"
	"github.com/rumanislam/plex-backend/internal/middleware"
	"github.com/rumanislam/plex-backend/internal/models"
	"github.com/rumanislam/plex-backend/internal/services"
)

type BookingHandler struct {
	bookingService *services.BookingService
}

func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// CreateBooking handles POST /api/bookings. The booking email must be
// the caller's own; a duplicate submission returns the existing
// booking with success=false rather than inserting a second row.
func (h *BookingHandler) CreateBooking(c *fiber.Ctx) error {
	var booking models.Booking
	if err := c.BodyParser(&booking); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if booking.Email != middleware.CurrentEmail(c) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Forbidden",
		})
	}
	if booking.Name == "" || booking.ProductName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Name and product name are required",
		})
	}

	saved, created, err := h.bookingService.Create(&booking)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create booking",
		})
	}
	if !created {
		return c.JSON(dto.BookingResponse{
			Success: false,
			Message: "Booking already exists",
			Booking: saved,
		})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.BookingResponse{
		Success: true,
		Booking: saved,
	})
}

// MyOrders handles GET /api/my-orders?email=. The email query must
// match the authenticated identity (enforced by RequireSelf).
func (h *BookingHandler) MyOrders(c *fiber.Ctx) error {
	orders, err := h.bookingService.ListByEmail(c.Query("email"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list orders",
		})
	}
	if len(orders) == 0 {
		return c.JSON(dto.OrdersResponse{Success: false, Message: "No orders"})
	}
	return c.JSON(dto.OrdersResponse{Success: true, Orders: orders})
}

// PaymentUpdate handles PATCH /api/bookings/:id after the gateway
// confirms the charge: stores the payment and flips the booking to
// paid.
func (h *BookingHandler) PaymentUpdate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid booking id",
		})
	}
	var req dto.PaymentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.TransactionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Transaction id is required",
		})
	}

	email := req.Email
	if email == "" {
		email = middleware.CurrentEmail(c)
	}
	booking, err := h.bookingService.RecordPayment(id, email, req.TransactionID, req.Amount)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Booking not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to record payment",
		})
	}
	return c.JSON(booking)
}

// DeleteBooking handles DELETE /api/bookings/:id.
func (h *BookingHandler) DeleteBooking(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid booking id",
		})
	}
	if err := h.bookingService.Delete(id); err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Booking not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete booking",
		})
	}
	return c.JSON(fiber.Map{"message": "Booking deleted"})
}
