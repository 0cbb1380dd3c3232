package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/elitekutzdev/elitekutz-sms/pkg/util/errorutil"
)

const kioskIDKey = "auth_kiosk_id"

// KioskAuth validates kiosk-originated calls. A caller presents either
// a bearer JWT or an X-Api-Key matched against the configured bcrypt
// hash.
type KioskAuth struct {
	tokens     *TokenManager
	apiKeyHash string
}

// NewKioskAuth constructs the middleware.
func NewKioskAuth(tokens *TokenManager, apiKeyHash string) *KioskAuth {
	return &KioskAuth{tokens: tokens, apiKeyHash: apiKeyHash}
}

// Handle enforces authentication for kiosk routes.
func (m *KioskAuth) Handle(c *fiber.Ctx) error {
	if key := c.Get("X-Api-Key"); key != "" {
		if m.apiKeyHash != "" && CompareAPIKey(m.apiKeyHash, key) {
			c.Locals(kioskIDKey, "api-key")
			return c.Next()
		}
		return apperrors.NewUnauthorized("invalid api key")
	}

	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}
	c.Locals(kioskIDKey, claims.KioskID)
	return c.Next()
}

// KioskFromContext retrieves the authenticated kiosk id.
func KioskFromContext(c *fiber.Ctx) (string, bool) {
	val := c.Locals(kioskIDKey)
	if val == nil {
		return "", false
	}
	id, ok := val.(string)
	return id, ok
}
