package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/rumanislam/plex-backend/internal/auth"
	"github.com/rumanislam/plex-backend/internal/handlers"
	"github.com/rumanislam/plex-backend/internal/middleware"
	"github.com/rumanislam/plex-backend/internal/store"
)

func Setup(
	app *fiber.App,
	accounts store.AccountStore,
	tokens *auth.TokenService,
	authHandler *handlers.AuthHandler,
	accountHandler *handlers.AccountHandler,
	productHandler *handlers.ProductHandler,
	bookingHandler *handlers.BookingHandler,
	paymentHandler *handlers.PaymentHandler,
	reviewHandler *handlers.ReviewHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Server is running well")
	})

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Catalog and reviews — public reads
	api.Get("/products", productHandler.ListProducts)
	api.Get("/products/:id", productHandler.GetProduct)
	api.Get("/reviews", reviewHandler.ListReviews)

	protected := middleware.Protected(tokens)
	admin := middleware.AdminRequired(accounts)

	// Identity request: public, stricter rate limit. Issues the token
	// and lazily creates the account.
	api.Put("/users/:email", limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}), authHandler.UpsertUser)

	// Account routes. Admin-role checks always come after Protected so
	// the email claim is trusted before the store lookup.
	api.Get("/users", protected, admin, accountHandler.ListUsers)
	api.Get("/users/:email/admin", protected, accountHandler.CheckAdmin)
	api.Put("/users/:email/admin", protected, admin, accountHandler.Promote)
	api.Put("/users/:email/demote", protected, admin, accountHandler.Demote)
	api.Get("/users/:email", protected, middleware.RequireSelf("email"), accountHandler.GetUser)
	api.Delete("/users/:email", protected, admin, accountHandler.DeleteUser)

	// Catalog management (admin)
	api.Post("/products", protected, admin, productHandler.CreateProduct)
	api.Delete("/products/:id", protected, admin, productHandler.DeleteProduct)

	// Bookings and payments (authenticated)
	api.Post("/bookings", protected, bookingHandler.CreateBooking)
	api.Get("/my-orders", protected, middleware.RequireSelf("email"), bookingHandler.MyOrders)
	api.Patch("/bookings/:id", protected, bookingHandler.PaymentUpdate)
	api.Delete("/bookings/:id", protected, bookingHandler.DeleteBooking)
	api.Post("/create-payment-intent", protected, paymentHandler.CreateIntent)

	// Reviews (authenticated writes)
	api.Post("/reviews", protected, reviewHandler.CreateReview)
}
