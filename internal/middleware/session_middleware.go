package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"allupro/internal/session"
)

// CookieName is the cookie carrying the opaque session token.
const CookieName = "session_token"

const localsIdentityKey = "identidade"

// SessionRequired is a Fiber middleware gating a route group behind the
// session store: requests without a resolvable session are answered with a
// uniform 401 before dispatch. The resolved identity travels in the request
// context, never in process-wide state.
func SessionRequired(store session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(CookieName)
		if token == "" {
			return unauthenticated(c)
		}

		identity, ok, err := store.Get(token)
		if err != nil {
			log.Printf("Session lookup failed: %v", err)
			return unauthenticated(c)
		}
		if !ok {
			return unauthenticated(c)
		}

		c.Locals(localsIdentityKey, identity)
		return c.Next()
	}
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"error":   "não autenticado",
	})
}

// IdentityFrom returns the identity bound by SessionRequired, if any.
func IdentityFrom(c *fiber.Ctx) (session.Identity, bool) {
	identity, ok := c.Locals(localsIdentityKey).(session.Identity)
	return identity, ok
}
