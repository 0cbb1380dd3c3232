package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/elitekutzdev/elitekutz-sms/internal/service"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	staff       *service.StaffService
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, staff *service.StaffService) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, staff: staff}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports service readiness. The only dependency is the roster
// loaded at startup.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	rosterSize := len(h.staff.List())
	if rosterSize == 0 {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "DEPENDENCY_UNAVAILABLE",
				"message": "roster is empty",
			},
		})
	}
	return c.JSON(fiber.Map{
		"status":      "ready",
		"roster_size": rosterSize,
	})
}
