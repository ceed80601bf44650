package schedule

import (
	"github.com/gofiber/fiber/v2"

	"github.com/maytakahashi/pct-cup/app/routes/auth"
)

// SetupScheduleRoutes sets up schedule routes
func SetupScheduleRoutes(app *fiber.App) {
	app.Get("/schedule", auth.RequireUser, GetScheduleAPI)
}
