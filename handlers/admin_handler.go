package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"rsvp.link/configs/configslog"
	"rsvp.link/services"
)

// AdminHandler serves the admin reporting and guest-list management
// endpoints. All routes behind it require an admin session.
type AdminHandler struct {
	familyService services.IFamilyService
	guestService  services.IGuestService
	reportService services.IReportService
}

func NewAdminHandler(familyService services.IFamilyService, guestService services.IGuestService, reportService services.IReportService) *AdminHandler {
	return &AdminHandler{familyService: familyService, guestService: guestService, reportService: reportService}
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return uint(id), nil
}

// Families (GET /api/admin/families)
func (h *AdminHandler) Families(c *fiber.Ctx) error {
	families, err := h.reportService.FamilyRoster(c.UserContext())
	if err != nil {
		configslog.Log.Error("AdminHandler.Families: roster failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	return c.JSON(fiber.Map{"families": families})
}

// RSVPs (GET /api/admin/rsvps) serves the legacy flat roster.
func (h *AdminHandler) RSVPs(c *fiber.Ctx) error {
	entries, err := h.reportService.FlatRoster(c.UserContext())
	if err != nil {
		configslog.Log.Error("AdminHandler.RSVPs: roster failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	return c.JSON(fiber.Map{"rsvps": entries})
}

// Stats (GET /api/admin/stats)
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.reportService.Stats(c.UserContext())
	if err != nil {
		configslog.Log.Error("AdminHandler.Stats: stats failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	return c.JSON(fiber.Map{"stats": stats})
}

type addFamilyRequest struct {
	FamilyName string               `json:"familyName"`
	Members    []services.NewMember `json:"members"`
}

// AddFamily (POST /api/admin/add-family)
func (h *AdminHandler) AddFamily(c *fiber.Ctx) error {
	var req addFamilyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Family name and at least one member are required"})
	}

	family, added, err := h.familyService.AddWithMembers(c.UserContext(), req.FamilyName, req.Members)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFamilyNameRequired), errors.Is(err, services.ErrFamilyMembersRequired):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Family name and at least one member are required"})
		case errors.Is(err, services.ErrFamilyNameTaken):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Family name already exists"})
		default:
			configslog.Log.Error("AdminHandler.AddFamily: create failed", zap.String("familyName", req.FamilyName), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error adding family"})
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"family":  family,
		"members": added,
		"message": fmt.Sprintf("Added family %q with %d members", family.FamilyName, len(added)),
	})
}

// RemoveGuest (DELETE /api/admin/guest/:guestId)
func (h *AdminHandler) RemoveGuest(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "guestId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	removed, err := h.guestService.Remove(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, services.ErrGuestNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("AdminHandler.RemoveGuest: delete failed", zap.Uint("guestID", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error removing guest"})
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"message":      fmt.Sprintf("Removed %s %s from the guest list", removed.FirstName, removed.LastName),
		"removedGuest": removed,
	})
}

// RemoveFamily (DELETE /api/admin/family/:familyId)
func (h *AdminHandler) RemoveFamily(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "familyId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	family, memberCount, err := h.familyService.Remove(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, services.ErrFamilyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("AdminHandler.RemoveFamily: delete failed", zap.Uint("familyID", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error removing family"})
	}

	return c.JSON(fiber.Map{
		"success":             true,
		"message":             fmt.Sprintf("Removed family %q and %d members", family.FamilyName, memberCount),
		"removedFamily":       family,
		"removedMembersCount": memberCount,
	})
}

type updateGuestRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// UpdateGuest (PUT /api/admin/guest/:guestId)
func (h *AdminHandler) UpdateGuest(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "guestId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var req updateGuestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "First name and last name are required"})
	}

	updated, err := h.guestService.UpdateName(c.UserContext(), id, req.FirstName, req.LastName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrGuestNameRequired):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "First name and last name are required"})
		case errors.Is(err, services.ErrGuestNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		default:
			configslog.Log.Error("AdminHandler.UpdateGuest: update failed", zap.Uint("guestID", id), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error updating guest"})
		}
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"message":      fmt.Sprintf("Updated guest name to %s %s", updated.FirstName, updated.LastName),
		"updatedGuest": updated,
	})
}
