package leaderboard

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/maytakahashi/pct-cup/app/config"
	"github.com/maytakahashi/pct-cup/app/database"
	"github.com/maytakahashi/pct-cup/app/models"
	"github.com/maytakahashi/pct-cup/app/routes/auth"
	"github.com/maytakahashi/pct-cup/app/services"
)

// GetLeaderboardAPI ranks every bro by score for an explicit checkpoint
// number (default 1).
func GetLeaderboardAPI(c *fiber.Ctx) error {
	db := config.GetDB()

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

	users, cats, reqs, completedByUser, err := loadStandings(cp)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{
		"checkpoint":  fiber.Map{"number": cp.Number, "label": cp.Label, "endDate": cp.EndDate},
		"leaderboard": services.RankIndividuals(users, cats, reqs, completedByUser),
	})
}

// GetTeamLeaderboardAPI ranks teams by members who have met every
// requirement for the next checkpoint.
func GetTeamLeaderboardAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	cps, err := database.GetCheckpoints(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	cp := services.NextCheckpoint(time.Now(), cps)
	if cp == nil {
		return c.Status(404).JSON(fiber.Map{"error": "No checkpoints found"})
	}

	users, cats, reqs, completedByUser, err := loadStandings(cp)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{
		"checkpoint": fiber.Map{"number": cp.Number, "label": cp.Label, "endDate": cp.EndDate},
		"teams":      services.RankTeams(users, cats, reqs, completedByUser),
	})
}

// GetMyTeamAPI lists the caller's teammates with the categories they are
// still missing for the next checkpoint.
func GetMyTeamAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	db := config.GetDB()

	cps, err := database.GetCheckpoints(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	cp := services.NextCheckpoint(time.Now(), cps)
	if cp == nil {
		return c.Status(404).JSON(fiber.Map{"error": "No checkpoints found"})
	}

	checkpoint := fiber.Map{"number": cp.Number, "label": cp.Label, "endDate": cp.EndDate}

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
	members, err := database.GetTeamMembers(db, *user.TeamID, true)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	ids := make([]int, len(members))
	for i := range members {
		ids[i] = members[i].ID
	}
	completedByUser, err := database.CompletedByCategory(db, ids, services.EndOfDay(cp.EndDate))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	out := make([]fiber.Map, 0, len(members))
	for i := range members {
		m := &members[i]
		completed := completedByUser[m.ID]

		missing := []fiber.Map{}
		for j := range cats {
			cat := &cats[j]
			required := reqs.Required(m.ClassType, cat.ID)
			remaining := services.RemainingNeeded(required, completed.Completed(cat))
			if remaining > 0 {
				missing = append(missing, fiber.Map{
					"categoryKey":     cat.Key,
					"categoryName":    cat.Name,
					"remainingNeeded": remaining,
					"unit":            cat.MissingUnit(),
				})
			}
		}

		out = append(out, fiber.Map{
			"username": m.Username,
			"name":     m.Name(),
			"metAll":   len(missing) == 0,
			"missing":  missing,
		})
	}

	return c.JSON(fiber.Map{
		"checkpoint": checkpoint,
		"teamId":     user.TeamID,
		"members":    out,
	})
}

// loadStandings fetches everything the ranking functions need for one
// checkpoint: the bros, the categories, the requirement set, and the bulk
// completion aggregate at the checkpoint's end-of-day boundary.
func loadStandings(cp *models.Checkpoint) ([]models.User, []models.Category, models.RequirementSet, map[int]models.CompletionMap, error) {
	db := config.GetDB()

	users, err := database.GetBros(db)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	cats, err := database.GetCategories(db)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	reqs, err := database.GetRequirementSet(db, cp.ID)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	ids := make([]int, len(users))
	for i := range users {
		ids[i] = users[i].ID
	}
	completedByUser, err := database.CompletedByCategory(db, ids, services.EndOfDay(cp.EndDate))
	if err != nil {
		return nil, nil, nil, nil, err
	}

	return users, cats, reqs, completedByUser, nil
}
