package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/elitekutzdev/elitekutz-sms/internal/api/dto"
	"github.com/elitekutzdev/elitekutz-sms/internal/domain"
	"github.com/elitekutzdev/elitekutz-sms/internal/service"
)

// StaffHandler exposes roster reads and availability updates.
type StaffHandler struct {
	staff *service.StaffService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(staff *service.StaffService) *StaffHandler {
	return &StaffHandler{staff: staff}
}

// List handles GET /staff.
func (h *StaffHandler) List(c *fiber.Ctx) error {
	members := h.staff.List()
	resp := make([]dto.StaffResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, dto.NewStaffResponse(m))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// UpdateStatus handles PATCH /staff/:id/status.
func (h *StaffHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Status == "" {
		return fiber.NewError(http.StatusBadRequest, "status required")
	}

	member, err := h.staff.SetStatus(c.Params("id"), domain.StaffStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewStaffResponse(member)})
}
