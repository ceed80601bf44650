package auth

import "github.com/gofiber/fiber/v2"

// SetupAuthRoutes sets up authentication routes
func SetupAuthRoutes(app *fiber.App) {
	app.Post("/auth/login", LoginAPI)
	app.Post("/auth/logout", RequireUser, LogoutAPI)
	app.Get("/me", RequireUser, MeAPI)
}
