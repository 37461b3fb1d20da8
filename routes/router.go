package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"

	"rsvp.link/handlers"
)

// Handlers bundles the wired handler set for route registration.
type Handlers struct {
	Auth   *handlers.AuthHandler
	RSVP   *handlers.RSVPHandler
	Admin  *handlers.AdminHandler
	Health *handlers.HealthHandler
}

// SetupRoutes registers the global middleware and the full API surface.
func SetupRoutes(app *fiber.App, h Handlers, sessions *session.Store) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())

	api := app.Group("/api")
	api.Get("/health", h.Health.Check)

	auth := api.Group("/auth")
	auth.Post("/login", h.Auth.Login)
	auth.Post("/logout", h.Auth.Logout)
	auth.Get("/me", h.Auth.Me)

	rsvp := api.Group("/rsvp", RequireAuth(sessions))
	rsvp.Get("/family-rsvp", h.RSVP.FamilyRSVP)
	rsvp.Get("/my-rsvp", h.RSVP.MyRSVP)
	rsvp.Post("/submit", h.RSVP.Submit)

	admin := api.Group("/admin", RequireAdmin(sessions))
	admin.Get("/families", h.Admin.Families)
	admin.Get("/rsvps", h.Admin.RSVPs)
	admin.Get("/stats", h.Admin.Stats)
	admin.Post("/add-family", h.Admin.AddFamily)
	admin.Delete("/guest/:guestId", h.Admin.RemoveGuest)
	admin.Delete("/family/:familyId", h.Admin.RemoveFamily)
	admin.Put("/guest/:guestId", h.Admin.UpdateGuest)

	app.Use(notFoundHandler)
}

func notFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Resource not found"})
}
