package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rumanislam/plex-backend/internal/dto"
	"github.com/rumanislam/plex-backend/internal/middleware"
	"github.com/rumanislam/plex-backend/internal/models"
	"github.com/rumanislam/plex-backend/internal/services"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// CreateReview handles POST /api/reviews. The review is always
// attributed to the authenticated caller.
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	var review models.Review
	if err := c.BodyParser(&review); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	review.Email = middleware.CurrentEmail(c)

	if err := h.reviewService.Create(&review); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create review",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"review":  review,
	})
}

// ListReviews handles GET /api/reviews?product_id=. Public.
func (h *ReviewHandler) ListReviews(c *fiber.Ctx) error {
	var productID *uuid.UUID
	if raw := c.Query("product_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid product id",
			})
		}
		productID = &id
	}

	reviews, err := h.reviewService.List(productID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list reviews",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"reviews": reviews,
	})
}
