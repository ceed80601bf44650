package checkpoints

import (
	"github.com/gofiber/fiber/v2"

	"github.com/maytakahashi/pct-cup/app/routes/auth"
)

// SetupCheckpointRoutes sets up admin checkpoint and requirement routes
func SetupCheckpointRoutes(app *fiber.App) {
	cps := app.Group("/admin/checkpoints")
	cps.Use(auth.RequireUser, auth.RequireAdmin)
	cps.Get("/", GetCheckpointsAPI)
	cps.Post("/", CreateCheckpointAPI)
	cps.Put("/:number", UpdateCheckpointAPI)
	cps.Delete("/:number", DeleteCheckpointAPI)

	reqs := app.Group("/admin/requirements")
	reqs.Use(auth.RequireUser, auth.RequireAdmin)
	reqs.Get("/", GetRequirementsAPI)
	reqs.Put("/", SaveRequirementsAPI)
}
