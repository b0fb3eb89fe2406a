package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rumanislam/plex-backend/internal/dto"
	"github.com/rumanislam/plex-backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// UpsertUser handles PUT /api/users/:email — the identity request.
// It saves the profile, lazily creating the account on first sight,
// and returns a fresh token. Public by design: possession of the
// token is what proves identity on later requests.
func (h *AuthHandler) UpsertUser(c *fiber.Ctx) error {
	email := c.Params("email")

	var req dto.UpsertUserRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid request body",
			})
		}
	}

	token, account, err := h.authService.IssueToken(email, req.Name, req.Profile)
	if err != nil {
		if errors.Is(err, services.ErrEmailRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save user",
		})
	}

	return c.JSON(dto.TokenResponse{
		Token: token,
		User: dto.UserResponse{
			Email: account.Email,
			Role:  string(account.EffectiveRole()),
			Name:  account.Name,
		},
	})
}
