package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/elitekutzdev/elitekutz-sms/internal/api/dto"
	"github.com/elitekutzdev/elitekutz-sms/internal/events"
	"github.com/elitekutzdev/elitekutz-sms/internal/service"
)

// EventsHandler receives kiosk lifecycle events and reports aggregate
// send outcomes.
type EventsHandler struct {
	notifications *service.NotificationService
}

// NewEventsHandler constructs handler.
func NewEventsHandler(notifications *service.NotificationService) *EventsHandler {
	return &EventsHandler{notifications: notifications}
}

// Dispatch handles POST /events.
func (h *EventsHandler) Dispatch(c *fiber.Ctx) error {
	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	kind, err := events.ParseKind(req.Kind)
	if err != nil {
		return err
	}

	batch, err := h.notifications.Dispatch(c.UserContext(), kind, req.ToPayload())
	if err != nil {
		return err
	}
	return c.Status(http.StatusAccepted).JSON(fiber.Map{"data": batch})
}
