package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"

	"rsvp.link/configs/configslog"
	"rsvp.link/services"
)

// Session keys shared with the route middleware.
const (
	SessionKeyGuestID    = "guest_id"
	SessionKeyFirstName  = "first_name"
	SessionKeyLastName   = "last_name"
	SessionKeyIsAdmin    = "is_admin"
	SessionKeyFamilyID   = "family_id"
	SessionKeyFamilyName = "family_name"
)

// AuthHandler implements name-based login against the guest list. There are
// no credentials: knowing a name on the list is the whole proof.
type AuthHandler struct {
	guestService services.IGuestService
	sessions     *session.Store
}

func NewAuthHandler(guestService services.IGuestService, sessions *session.Store) *AuthHandler {
	return &AuthHandler{guestService: guestService, sessions: sessions}
}

type loginRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Login (POST /api/auth/login)
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "First name and last name are required"})
	}

	guest, err := h.guestService.FindByName(c.UserContext(), req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, services.ErrGuestNameRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "First name and last name are required"})
		}
		if errors.Is(err, services.ErrGuestNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Guest not found. Please check your name spelling or contact the host.",
			})
		}
		configslog.Log.Error("AuthHandler.Login: lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error during login"})
	}

	sess, err := h.sessions.Get(c)
	if err != nil {
		configslog.Log.Error("AuthHandler.Login: session start failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error during login"})
	}
	sess.Set(SessionKeyGuestID, guest.ID)
	sess.Set(SessionKeyFirstName, guest.FirstName)
	sess.Set(SessionKeyLastName, guest.LastName)
	sess.Set(SessionKeyIsAdmin, guest.IsAdmin)
	sess.Set(SessionKeyFamilyID, guest.FamilyID)
	sess.Set(SessionKeyFamilyName, guest.FamilyName)
	if err := sess.Save(); err != nil {
		configslog.Log.Error("AuthHandler.Login: session save failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error during login"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"guest": fiber.Map{
			"id":         guest.ID,
			"firstName":  guest.FirstName,
			"lastName":   guest.LastName,
			"isAdmin":    guest.IsAdmin,
			"familyId":   guest.FamilyID,
			"familyName": guest.FamilyName,
		},
	})
}

// Logout (POST /api/auth/logout)
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not log out"})
	}
	if err := sess.Destroy(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not log out"})
	}
	return c.JSON(fiber.Map{"success": true})
}

// Me (GET /api/auth/me)
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return c.JSON(fiber.Map{"authenticated": false})
	}
	guestID, ok := sess.Get(SessionKeyGuestID).(uint)
	if !ok {
		return c.JSON(fiber.Map{"authenticated": false})
	}
	return c.JSON(fiber.Map{
		"authenticated": true,
		"guest": fiber.Map{
			"id":         guestID,
			"firstName":  sess.Get(SessionKeyFirstName),
			"lastName":   sess.Get(SessionKeyLastName),
			"isAdmin":    sess.Get(SessionKeyIsAdmin),
			"familyId":   sess.Get(SessionKeyFamilyID),
			"familyName": sess.Get(SessionKeyFamilyName),
		},
	})
}
