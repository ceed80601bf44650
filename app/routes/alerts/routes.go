package alerts

import (
	"github.com/gofiber/fiber/v2"

	"github.com/maytakahashi/pct-cup/app/routes/auth"
)

// SetupAlertRoutes sets up admin alert routes
func SetupAlertRoutes(app *fiber.App) {
	app.Get("/admin/alerts", auth.RequireUser, auth.RequireAdmin, GetAlertsAPI)
}
