package leaderboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/maytakahashi/pct-cup/app/routes/auth"
)

// SetupLeaderboardRoutes sets up leaderboard routes
func SetupLeaderboardRoutes(app *fiber.App) {
	lb := app.Group("/leaderboard")
	lb.Use(auth.RequireUser)
	lb.Get("/", GetLeaderboardAPI)
	lb.Get("/teams", GetTeamLeaderboardAPI)
	lb.Get("/my-team", GetMyTeamAPI)
}
