package roster

import (
	"github.com/gofiber/fiber/v2"

	"github.com/maytakahashi/pct-cup/app/routes/auth"
)

// SetupRosterRoutes sets up admin roster routes
func SetupRosterRoutes(app *fiber.App) {
	admin := app.Group("/admin/roster")
	admin.Use(auth.RequireUser, auth.RequireAdmin)
	admin.Get("/", GetRosterAPI)
	admin.Get("/teams", GetTeamsAPI)
	admin.Post("/", CreateBroAPI)
	admin.Delete("/:id", RemoveBroAPI)
}
