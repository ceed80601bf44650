package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/maytakahashi/pct-cup/app/routes/auth"
)

// SetupDashboardRoutes sets up dashboard routes
func SetupDashboardRoutes(app *fiber.App) {
	dash := app.Group("/dashboard")
	dash.Use(auth.RequireUser)
	dash.Get("/me", GetMyDashboardAPI)
	dash.Get("/team", GetTeamDashboardAPI)
}
