package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"

	"rsvp.link/configs/configslog"
	"rsvp.link/models"
	"rsvp.link/services"
)

// RSVPHandler serves the guest-facing RSVP endpoints.
type RSVPHandler struct {
	guestService services.IGuestService
	rsvpService  services.IRSVPService
	sessions     *session.Store
}

func NewRSVPHandler(guestService services.IGuestService, rsvpService services.IRSVPService, sessions *session.Store) *RSVPHandler {
	return &RSVPHandler{guestService: guestService, rsvpService: rsvpService, sessions: sessions}
}

// FamilyRSVP (GET /api/rsvp/family-rsvp) shows every member of the caller's
// family with each member's own RSVP row, so the family sees who holds the
// shared response.
func (h *RSVPHandler) FamilyRSVP(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	guestID, _ := sess.Get(SessionKeyGuestID).(uint)
	familyID, _ := sess.Get(SessionKeyFamilyID).(uint)
	familyName, _ := sess.Get(SessionKeyFamilyName).(string)

	members, err := h.guestService.ListByFamily(c.UserContext(), familyID)
	if err != nil {
		configslog.Log.Error("RSVPHandler.FamilyRSVP: member list failed", zap.Uint("familyID", familyID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	rsvps, err := h.rsvpService.List(c.UserContext())
	if err != nil {
		configslog.Log.Error("RSVPHandler.FamilyRSVP: rsvp list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	byGuest := make(map[uint]models.RSVP, len(rsvps))
	for _, r := range rsvps {
		if _, ok := byGuest[r.GuestID]; !ok {
			byGuest[r.GuestID] = r
		}
	}

	memberRows := make([]fiber.Map, 0, len(members))
	for _, g := range members {
		row := fiber.Map{
			"guestId":   g.ID,
			"firstName": g.FirstName,
			"lastName":  g.LastName,
			"rsvp":      nil,
		}
		if r, ok := byGuest[g.ID]; ok {
			row["rsvp"] = fiber.Map{
				"id":                  r.ID,
				"willAttend":          r.WillAttend,
				"dietaryRestrictions": r.DietaryRestrictions,
				"individualNotes":     r.IndividualNotes,
				"createdAt":           r.CreatedAt,
				"updatedAt":           r.UpdatedAt,
			}
		}
		memberRows = append(memberRows, row)
	}

	return c.JSON(fiber.Map{
		"familyData": fiber.Map{
			"familyName":     familyName,
			"familyId":       familyID,
			"currentGuestId": guestID,
			"members":        memberRows,
		},
	})
}

// MyRSVP (GET /api/rsvp/my-rsvp) returns the caller's own RSVP row or null.
// Kept for backwards compatibility with the pre-consolidation client.
func (h *RSVPHandler) MyRSVP(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	guestID, _ := sess.Get(SessionKeyGuestID).(uint)

	if _, err := h.guestService.Get(c.UserContext(), guestID); err != nil {
		if errors.Is(err, services.ErrGuestNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Guest not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	rsvp, err := h.rsvpService.FindByGuest(c.UserContext(), guestID)
	if err != nil {
		if errors.Is(err, services.ErrRSVPNotFound) {
			return c.JSON(fiber.Map{"rsvp": nil})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	return c.JSON(fiber.Map{"rsvp": rsvp})
}

type submitRequest struct {
	GuestID             *uint  `json:"guestId"`
	WillAttend          *bool  `json:"willAttend"`
	DietaryRestrictions string `json:"dietaryRestrictions"`
	IndividualNotes     string `json:"individualNotes"`
}

// Submit (POST /api/rsvp/submit) accepts a consolidated submission for the
// caller or any member of the caller's family.
func (h *RSVPHandler) Submit(c *fiber.Ctx) error {
	var req submitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.WillAttend == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Please specify if you will attend"})
	}

	sess, err := h.sessions.Get(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error saving RSVP"})
	}
	currentGuestID, _ := sess.Get(SessionKeyGuestID).(uint)
	currentFamilyID, _ := sess.Get(SessionKeyFamilyID).(uint)

	targetGuestID := currentGuestID
	if req.GuestID != nil && *req.GuestID != 0 {
		targetGuestID = *req.GuestID
	}

	targetGuest, err := h.guestService.Get(c.UserContext(), targetGuestID)
	if err != nil || targetGuest.FamilyID != currentFamilyID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You can only RSVP for members of your family"})
	}

	if _, err := h.rsvpService.Submit(c.UserContext(), targetGuestID, *req.WillAttend, req.DietaryRestrictions, req.IndividualNotes); err != nil {
		configslog.Log.Error("RSVPHandler.Submit: save failed", zap.Uint("guestID", targetGuestID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error saving RSVP"})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "RSVP saved successfully",
		"guestName": targetGuest.FirstName + " " + targetGuest.LastName,
	})
}
