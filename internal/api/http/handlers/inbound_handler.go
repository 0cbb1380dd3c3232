package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/elitekutzdev/elitekutz-sms/internal/api/dto"
	"github.com/elitekutzdev/elitekutz-sms/internal/auth"
	"github.com/elitekutzdev/elitekutz-sms/internal/config"
	"github.com/elitekutzdev/elitekutz-sms/internal/service"
)

// InboundHandler receives provider webhooks for inbound SMS.
type InboundHandler struct {
	inbound *service.InboundService
	cfg     config.TwilioConfig
	logger  *zap.Logger
}

// NewInboundHandler constructs handler.
func NewInboundHandler(inbound *service.InboundService, cfg config.TwilioConfig, logger *zap.Logger) *InboundHandler {
	return &InboundHandler{inbound: inbound, cfg: cfg, logger: logger}
}

// Receive handles POST /sms/inbound. Provider payload shapes are
// normalized to (from, text) here; the core never sees them.
func (h *InboundHandler) Receive(c *fiber.Ctx) error {
	msg, ok := h.parseMessage(c)
	if !ok {
		return fiber.NewError(http.StatusBadRequest, "unrecognized inbound payload")
	}

	if h.cfg.ValidateSignature && !h.validSignature(c) {
		return fiber.NewError(http.StatusForbidden, "invalid signature")
	}

	outcome, err := h.inbound.Handle(c.UserContext(), msg.From, msg.Text)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"action":  string(outcome.Action.Kind),
		"replied": outcome.ReplySent,
	}})
}

func (h *InboundHandler) parseMessage(c *fiber.Ctx) (dto.InboundMessage, bool) {
	contentType := string(c.Request().Header.ContentType())
	if strings.HasPrefix(contentType, fiber.MIMEApplicationForm) {
		return dto.FromForm(c.FormValue("From"), c.FormValue("Body"))
	}
	return dto.DecodeInboundJSON(c.Body())
}

func (h *InboundHandler) validSignature(c *fiber.Ctx) bool {
	params := make(map[string]string)
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		params[string(key)] = string(value)
	})
	requestURL := h.cfg.WebhookURL
	if requestURL == "" {
		requestURL = c.BaseURL() + c.OriginalURL()
	}
	valid := auth.ValidateTwilioSignature(h.cfg.AuthToken, requestURL, params, c.Get("X-Twilio-Signature"))
	if !valid {
		h.logger.Warn("inbound webhook signature rejected", zap.String("url", requestURL))
	}
	return valid
}
