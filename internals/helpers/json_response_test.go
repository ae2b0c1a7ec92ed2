package helper

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolvePagingFor(t *testing.T, target string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()

	app := fiber.New()
	var got Paging
	app.Get("/paging", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePagingDefaults(t *testing.T) {
	p := resolvePagingFor(t, "/paging", 20, 100)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 0, p.Offset)
}

func TestResolvePagingOffset(t *testing.T) {
	p := resolvePagingFor(t, "/paging?page=3&per_page=10", 20, 100)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 10, p.PerPage)
	assert.Equal(t, 20, p.Offset)
}

func TestResolvePagingCapsPerPage(t *testing.T) {
	p := resolvePagingFor(t, "/paging?per_page=5000", 20, 100)
	assert.Equal(t, 100, p.PerPage)
}

func TestResolvePagingLimitAlias(t *testing.T) {
	p := resolvePagingFor(t, "/paging?limit=5", 20, 100)
	assert.Equal(t, 5, p.PerPage)
	assert.Equal(t, 5, p.Limit)
}

func TestResolvePagingInvalidValues(t *testing.T) {
	p := resolvePagingFor(t, "/paging?page=-2&per_page=abc", 20, 100)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
}

func TestFromFiberErrorAsAppErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: FromFiberError})
	app.Get("/denied", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusUnauthorized, "token expired or invalid")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return assert.AnError
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/denied", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"success":false`)
	assert.Contains(t, string(body), "token expired or invalid")

	// unknown errors collapse to a generic 500, no internals leak
	resp, err = app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "internal server error")
	assert.NotContains(t, string(body), assert.AnError.Error())
}
