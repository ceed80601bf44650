package events

import (
	"github.com/gofiber/fiber/v2"

	"github.com/maytakahashi/pct-cup/app/routes/auth"
)

// SetupEventRoutes sets up admin event and attendance routes
func SetupEventRoutes(app *fiber.App) {
	admin := app.Group("/admin/events")
	admin.Use(auth.RequireUser, auth.RequireAdmin)
	admin.Get("/", GetEventsAPI)
	admin.Post("/", CreateEventAPI)
	admin.Put("/:id", UpdateEventAPI)
	admin.Delete("/:id", DeleteEventAPI)
	admin.Get("/:id/attendance", GetAttendanceAPI)
	admin.Post("/:id/attendance", SaveAttendanceAPI)
}
