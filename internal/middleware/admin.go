package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rumanislam/plex-backend/internal/dto"
	"github.com/rumanislam/plex-backend/internal/store"
)

// AdminRequired gates a route on the admin role. The token only
// carries an email, so the role is read from the account store on
// every request; a role change is effective immediately for new
// requests while outstanding tokens stay valid.
//
// Must run after Protected: the email claim is only trusted once the
// signature has been checked.
func AdminRequired(accounts store.AccountStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := CurrentEmail(c)
		if email == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		account, err := accounts.FindByEmail(email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
					Error: true, Message: "Admin access required",
				})
			}
			return fiber.ErrInternalServerError
		}
		if !account.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Admin access required",
			})
		}
		return c.Next()
	}
}
