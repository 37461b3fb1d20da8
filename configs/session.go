package configs

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

// SetupSession builds the cookie-backed session store used by the auth
// middleware. The cookie is httpOnly with a 24 hour expiry and is not marked
// Secure so it works behind plain HTTP locally.
func SetupSession() *session.Store {
	return session.New(session.Config{
		Expiration:     24 * time.Hour,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		KeyLookup:      "cookie:rsvp_session",
	})
}
