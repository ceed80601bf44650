package roster

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maytakahashi/pct-cup/app/config"
)

func init() {
	config.AppConfig = &config.Config{CookieName: "pctcup_session"}
}

func TestRosterRoutesRejectAnonymous(t *testing.T) {
	app := fiber.New()
	SetupRosterRoutes(app)

	for _, r := range []struct{ method, path string }{
		{"GET", "/admin/roster"},
		{"GET", "/admin/roster/teams"},
		{"POST", "/admin/roster"},
		{"DELETE", "/admin/roster/9"},
	} {
		resp, err := app.Test(httptest.NewRequest(r.method, r.path, nil))
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode, "%s %s", r.method, r.path)
	}
}
