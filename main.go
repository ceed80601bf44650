package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/maytakahashi/pct-cup/app/config"
	"github.com/maytakahashi/pct-cup/app/database"
	"github.com/maytakahashi/pct-cup/app/routes/alerts"
	"github.com/maytakahashi/pct-cup/app/routes/auth"
	"github.com/maytakahashi/pct-cup/app/routes/checkpoints"
	"github.com/maytakahashi/pct-cup/app/routes/dashboard"
	"github.com/maytakahashi/pct-cup/app/routes/events"
	"github.com/maytakahashi/pct-cup/app/routes/leaderboard"
	"github.com/maytakahashi/pct-cup/app/routes/roster"
	"github.com/maytakahashi/pct-cup/app/routes/schedule"
)

func main() {
	config.LoadEnv()

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.GetEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:5174"),
		AllowCredentials: true,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	// Routes
	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	schedule.SetupScheduleRoutes(app)
	leaderboard.SetupLeaderboardRoutes(app)
	events.SetupEventRoutes(app)
	checkpoints.SetupCheckpointRoutes(app)
	alerts.SetupAlertRoutes(app)
	roster.SetupRosterRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Start server
	addr := ":" + config.AppConfig.Port
	log.Println("Server starting on", addr)
	log.Fatal(app.Listen(addr))
}
