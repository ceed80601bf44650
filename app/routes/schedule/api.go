package schedule

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/maytakahashi/pct-cup/app/config"
	"github.com/maytakahashi/pct-cup/app/database"
)

// GetScheduleAPI returns events from the last week onward, ascending.
func GetScheduleAPI(c *fiber.Ctx) error {
	since := time.Now().Add(-7 * 24 * time.Hour)

	events, err := database.GetEventsSince(config.GetDB(), since)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch events"})
	}

	out := make([]fiber.Map, 0, len(events))
	for _, e := range events {
		out = append(out, fiber.Map{
			"id":           e.ID,
			"title":        e.Title,
			"startsAt":     e.StartsAt,
			"categoryKey":  e.CategoryKey,
			"categoryName": e.CategoryName,
			"color":        e.Color,
			"mandatory":    e.Mandatory,
			"serviceHours": e.ServiceHours,
		})
	}

	return c.JSON(out)
}
