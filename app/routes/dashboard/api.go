package dashboard

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/maytakahashi/pct-cup/app/config"
	"github.com/maytakahashi/pct-cup/app/database"
	"github.com/maytakahashi/pct-cup/app/routes/auth"
	"github.com/maytakahashi/pct-cup/app/services"
)

// GetMyDashboardAPI returns the caller's per-category progress toward the
// resolved checkpoint.
func GetMyDashboardAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	db := config.GetDB()
	now := time.Now()

	cps, err := database.GetCheckpoints(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	number := services.ResolveCheckpointNumber(c.Query("checkpoint"), now, cps)
	cp := services.FindCheckpoint(number, cps)
	if cp == nil {
		return c.Status(404).JSON(fiber.Map{"error": "No upcoming checkpoint found"})
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
	completed, err := database.CompletedByCategoryForUser(db, user.ID, boundary)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	opps, err := database.CountUpcomingEventsByCategory(db, now, boundary)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	categories := make([]fiber.Map, 0, len(cats))
	for i := range cats {
		cat := &cats[i]
		required := reqs.Required(user.ClassType, cat.ID)
		done := completed.Completed(cat)
		remaining := services.RemainingNeeded(required, done)

		categories = append(categories, fiber.Map{
			"categoryKey":            cat.Key,
			"categoryName":           cat.Name,
			"color":                  cat.Color,
			"completed":              done,
			"required":               required,
			"remainingNeeded":        remaining,
			"remainingOpportunities": opps[cat.ID],
			"met":                    remaining == 0,
		})
	}

	return c.JSON(fiber.Map{
		"user": fiber.Map{
			"firstName": user.FirstName,
			"lastName":  user.LastName,
			"teamId":    user.TeamID,
		},
		"checkpoint": fiber.Map{"number": cp.Number, "label": cp.Label, "endDate": cp.EndDate},
		"categories": categories,
	})
}

// GetTeamDashboardAPI returns the status grid for every member of the
// caller's team. Member completion is aggregated in one bulk query.
func GetTeamDashboardAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	db := config.GetDB()
	now := time.Now()

	cps, err := database.GetCheckpoints(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	number := services.ResolveCheckpointNumber(c.Query("checkpoint"), now, cps)
	cp := services.FindCheckpoint(number, cps)
	if cp == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Checkpoint not found"})
	}

	passed := services.CheckpointPassed(now, cp)
	boundary := services.EndOfDay(cp.EndDate)

	checkpoint := fiber.Map{"number": cp.Number, "label": cp.Label, "endDate": cp.EndDate, "passed": passed}

	if user.TeamID == nil {
		return c.JSON(fiber.Map{"checkpoint": checkpoint, "teamId": nil, "members": []fiber.Map{}})
	}

	cats, err := database.GetCategories(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	reqs, err := database.GetRequirementSet(db, cp.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	teammates, err := database.GetTeamMembers(db, *user.TeamID, false)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	ids := make([]int, len(teammates))
	for i := range teammates {
		ids[i] = teammates[i].ID
	}
	completedByUser, err := database.CompletedByCategory(db, ids, boundary)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	members := make([]fiber.Map, 0, len(teammates))
	for i := range teammates {
		tm := &teammates[i]
		completed := completedByUser[tm.ID]

		perCategory := make([]fiber.Map, 0, len(cats))
		for j := range cats {
			cat := &cats[j]
			required := reqs.Required(tm.ClassType, cat.ID)
			done := completed.Completed(cat)
			remaining := services.RemainingNeeded(required, done)

			perCategory = append(perCategory, fiber.Map{
				"categoryKey": cat.Key,
				"completed":   done,
				"required":    required,
				"status":      services.TeamCellStatus(remaining, passed),
			})
		}

		members = append(members, fiber.Map{
			"username":    tm.Username,
			"name":        tm.Name(),
			"perCategory": perCategory,
		})
	}

	return c.JSON(fiber.Map{
		"checkpoint": checkpoint,
		"teamId":     user.TeamID,
		"members":    members,
	})
}
