package alerts

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/maytakahashi/pct-cup/app/config"
	"github.com/maytakahashi/pct-cup/app/database"
	"github.com/maytakahashi/pct-cup/app/services"
)

// GetAlertsAPI emits one alert row per bro per unmet category for an
// explicit checkpoint number (default 1). Fully met users produce nothing.
func GetAlertsAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	now := time.Now()

	number, err := strconv.Atoi(c.Query("checkpoint", "1"))
	if err != nil || number <= 0 {
		number = 1
	}

	cps, err := database.GetCheckpoints(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	cp := services.FindCheckpoint(number, cps)
	if cp == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Checkpoint not found"})
	}

	boundary := services.EndOfDay(cp.EndDate)

	cats, err := database.GetCategories(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	reqs, err := database.GetRequirementSet(db, cp.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	opps, err := database.CountUpcomingEventsByCategory(db, now, boundary)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	users, err := database.GetBros(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	ids := make([]int, len(users))
	for i := range users {
		ids[i] = users[i].ID
	}
	completedByUser, err := database.CompletedByCategory(db, ids, boundary)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	alerts := []fiber.Map{}
	for i := range users {
		u := &users[i]
		completed := completedByUser[u.ID]

		for j := range cats {
			cat := &cats[j]
			required := reqs.Required(u.ClassType, cat.ID)
			remaining := services.RemainingNeeded(required, completed.Completed(cat))
			if remaining == 0 {
				continue
			}

			alerts = append(alerts, fiber.Map{
				"username":               u.Username,
				"name":                   u.Name(),
				"teamId":                 u.TeamID,
				"categoryKey":            cat.Key,
				"remainingNeeded":        remaining,
				"remainingOpportunities": opps[cat.ID],
				"status":                 services.GapStatus(remaining, opps[cat.ID]),
			})
		}
	}

	return c.JSON(fiber.Map{
		"checkpoint": fiber.Map{"number": cp.Number, "label": cp.Label},
		"alerts":     alerts,
	})
}
