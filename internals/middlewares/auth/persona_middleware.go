// internals/middlewares/auth/persona_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "gymdesk_backend/internals/helpers"
)

// OnlyPersonas restricts a route group to the given persona claims. A wrong
// persona gets the same generic token message as an expired token.
func OnlyPersonas(personas ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(personas))
	for _, p := range personas {
		allowed[p] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		persona := helper.GetPersonaFromLocals(c)
		if _, ok := allowed[persona]; !ok {
			return fiber.NewError(fiber.StatusUnauthorized, MsgTokenInvalid)
		}
		return c.Next()
	}
}
