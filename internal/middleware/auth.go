package middleware

import (
	"net/url"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rumanislam/plex-backend/internal/auth"
	"github.com/rumanislam/plex-backend/internal/dto"
)

// Protected rejects requests without a valid bearer token. A missing,
// malformed or expired token is answered 401 before the handler runs;
// on success the decoded token is left in c.Locals("user").
func Protected(tokens *auth.TokenService) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: tokens.Secret()},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})
}

// CurrentEmail returns the authenticated email set by Protected, or
// "" when the request carried no verified token.
func CurrentEmail(c *fiber.Ctx) string {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	email, _ := claims["email"].(string)
	return email
}

// RequireSelf enforces that the email named in the route matches the
// authenticated identity. Role is irrelevant here: an admin acting on
// someone else's orders still goes through AdminRequired routes.
func RequireSelf(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Path params arrive percent-encoded ("a%40x.com"); the claim
		// never is. Query values are already decoded by fasthttp.
		target := c.Params(param)
		if unescaped, err := url.PathUnescape(target); err == nil {
			target = unescaped
		}
		if target == "" {
			target = c.Query(param)
		}
		if target == "" || target != CurrentEmail(c) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Forbidden",
			})
		}
		return c.Next()
	}
}
