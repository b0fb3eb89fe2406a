package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rumanislam/plex-backend/internal/dto"
	"github.com/rumanislam/plex-backend/internal/services"
)

type AccountHandler struct {
	accountService *services.AccountService
}

func NewAccountHandler(accountService *services.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// ListUsers handles GET /api/users (admin only).
func (h *AccountHandler) ListUsers(c *fiber.Ctx) error {
	accounts, err := h.accountService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list users",
		})
	}
	return c.JSON(accounts)
}

// GetUser handles GET /api/users/:email (self only).
func (h *AccountHandler) GetUser(c *fiber.Ctx) error {
	account, err := h.accountService.Get(c.Params("email"))
	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load user",
		})
	}
	return c.JSON(account)
}

// CheckAdmin handles GET /api/users/:email/admin. Any authenticated
// caller may ask; the frontend uses it to decide whether to show the
// admin panel.
func (h *AccountHandler) CheckAdmin(c *fiber.Ctx) error {
	isAdmin, err := h.accountService.IsAdmin(c.Params("email"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to check role",
		})
	}
	return c.JSON(dto.AdminCheckResponse{Admin: isAdmin})
}

// Promote handles PUT /api/users/:email/admin (admin only).
func (h *AccountHandler) Promote(c *fiber.Ctx) error {
	if err := h.accountService.Promote(c.Params("email")); err != nil {
		return accountError(c, err, "Failed to promote user")
	}
	return c.JSON(fiber.Map{"message": "User promoted to admin"})
}

// Demote handles PUT /api/users/:email/demote (admin only, super
// admin excluded).
func (h *AccountHandler) Demote(c *fiber.Ctx) error {
	if err := h.accountService.Demote(c.Params("email")); err != nil {
		return accountError(c, err, "Failed to demote user")
	}
	return c.JSON(fiber.Map{"message": "Admin demoted to user"})
}

// DeleteUser handles DELETE /api/users/:email (admin only, super
// admin excluded).
func (h *AccountHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.accountService.Delete(c.Params("email")); err != nil {
		return accountError(c, err, "Failed to delete user")
	}
	return c.JSON(fiber.Map{"message": "User deleted"})
}

func accountError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrProtectedAccount):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrAccountNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "User not found",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: fallback,
		})
	}
}
