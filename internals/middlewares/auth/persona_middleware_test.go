package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymdesk_backend/internals/constants"
)

func personaApp(guarded ...string) *fiber.App {
	app := fiber.New()
	app.Get("/guarded/:persona",
		func(c *fiber.Ctx) error {
			c.Locals("persona", c.Params("persona"))
			return c.Next()
		},
		OnlyPersonas(guarded...),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	return app
}

func TestOnlyPersonasAllowsListedPersona(t *testing.T) {
	app := personaApp(constants.StaffOnly...)

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded/Staff", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestOnlyPersonasRejectsOtherPersonasWithGenericMessage(t *testing.T) {
	app := personaApp(constants.StaffOnly...)

	for _, persona := range []string{"User", "Coach", "nobody"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/guarded/"+persona, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, persona)
	}
}
