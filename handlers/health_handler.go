package handlers

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"rsvp.link/configs"
)

// HealthHandler reports process status and, on the flat-file backend, the
// state of the durable medium. Because bulk reads fail open, this is the
// only endpoint that can tell "healthy and empty" apart from "missing
// files".
type HealthHandler struct {
	backend configs.Backend
	dataDir string
}

func NewHealthHandler(backend configs.Backend, dataDir string) *HealthHandler {
	return &HealthHandler{backend: backend, dataDir: dataDir}
}

func fileStatus(path string) fiber.Map {
	info, err := os.Stat(path)
	status := fiber.Map{"path": path, "exists": err == nil, "size": int64(0)}
	if err == nil {
		status["size"] = info.Size()
	}
	return status
}

// Check (GET /api/health)
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	resp := fiber.Map{
		"status":  "ok",
		"backend": string(h.backend),
	}
	if h.backend == configs.BackendCSV {
		resp["files"] = fiber.Map{
			"families": fileStatus(filepath.Join(h.dataDir, "families.csv")),
			"guests":   fileStatus(filepath.Join(h.dataDir, "guests.csv")),
			"rsvps":    fileStatus(filepath.Join(h.dataDir, "rsvps.csv")),
		}
	}
	return c.JSON(resp)
}
