package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/elitekutzdev/elitekutz-sms/internal/api/http/handlers"
	"github.com/elitekutzdev/elitekutz-sms/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Events    *handlers.EventsHandler
	Inbound   *handlers.InboundHandler
	Staff     *handlers.StaffHandler
	KioskAuth *auth.KioskAuth
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	// provider webhook; authenticated by signature, not kiosk credentials
	app.Post("/sms/inbound", cfg.Inbound.Receive)

	kiosk := app.Group("", cfg.KioskAuth.Handle)
	kiosk.Post("/events", cfg.Events.Dispatch)
	kiosk.Get("/staff", cfg.Staff.List)
	kiosk.Patch("/staff/:id/status", cfg.Staff.UpdateStatus)
}
