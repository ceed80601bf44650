package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maytakahashi/pct-cup/app/config"
	"github.com/maytakahashi/pct-cup/app/models"
)

func init() {
	config.AppConfig = &config.Config{CookieName: "pctcup_session"}
}

func TestRequireUserRejectsMissingCookie(t *testing.T) {
	app := fiber.New()
	app.Get("/protected", RequireUser, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestRequireAdminRejectsBros(t *testing.T) {
	app := fiber.New()
	app.Get("/admin", func(c *fiber.Ctx) error {
		c.Locals("user", &models.User{Role: models.RoleBro})
		return c.Next()
	}, RequireAdmin, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestRequireAdminAllowsAdmins(t *testing.T) {
	app := fiber.New()
	app.Get("/admin", func(c *fiber.Ctx) error {
		c.Locals("user", &models.User{Role: models.RoleAdmin})
		return c.Next()
	}, RequireAdmin, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestTokenHashingIsStableAndOpaque(t *testing.T) {
	tok := randomToken()
	assert.Len(t, tok, 64)
	assert.Equal(t, hashToken(tok), hashToken(tok))
	assert.NotEqual(t, tok, hashToken(tok))
}
