package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/maytakahashi/pct-cup/app/models"
)

// The semester calendar and requirement tables below come from the chapter's
// cup rules. Adjust the year when rolling the program over.
const seedYear = 2026

type seedCategory struct {
	Key   string
	Name  string
	Color string
	Unit  models.CategoryUnit
}

var seedCategories = []seedCategory{
	{"CHAPTER", "Chapter Meetings", "#EF4444", models.EventCount},
	{"RUSH", "Rush Events", "#F97316", models.EventCount},
	{"INTERNAL", "Mandatory Internal Events", "#EAB308", models.EventCount},
	{"CORPORATE", "Corporate Events", "#22C55E", models.EventCount},
	{"PLEDGE", "Pledge Meetings", "#3B82F6", models.EventCount},
	{"SERVICE", "Community Service Hours", "#8B5CF6", models.ServiceHours},
	{"CASUAL", "Casual Events", "#EC4899", models.EventCount},
}

type seedCheckpoint struct {
	Number    int
	Label     string
	StartDate string
	EndDate   string
}

var seedCheckpoints = []seedCheckpoint{
	{1, "Checkpoint 1", "%d-01-18T00:00:00Z", "%d-02-11T23:59:59Z"},
	{2, "Checkpoint 2", "%d-02-12T00:00:00Z", "%d-03-04T23:59:59Z"},
	{3, "Checkpoint 3", "%d-03-05T00:00:00Z", "%d-04-01T23:59:59Z"},
	{4, "Final", "%d-04-02T00:00:00Z", "%d-04-27T23:59:59Z"},
}

// Required amounts per checkpoint 1..4, keyed by category.
var seedRequirements = map[models.ClassType]map[string][4]int{
	models.NonGrad: {
		"CHAPTER":   {1, 4, 6, 10},
		"RUSH":      {6, 6, 6, 6},
		"INTERNAL":  {3, 3, 4, 5},
		"CORPORATE": {0, 1, 2, 2},
		"PLEDGE":    {0, 2, 4, 5},
		"SERVICE":   {1, 2, 3, 3},
		"CASUAL":    {1, 3, 4, 5},
	},
	models.Senior: {
		"CHAPTER":   {1, 3, 6, 8},
		"RUSH":      {4, 4, 4, 4},
		"INTERNAL":  {3, 3, 4, 5},
		"CORPORATE": {0, 1, 1, 1},
		"PLEDGE":    {0, 1, 2, 3},
		"SERVICE":   {1, 2, 2, 2},
		"CASUAL":    {1, 2, 3, 3},
	},
}

// Seed upserts the static reference data: teams 1-8, the seven categories,
// the four dated checkpoints, both requirement tables, and the admin user.
func Seed(db *sql.DB, adminPassword string) error {
	for i := 1; i <= 8; i++ {
		_, err := db.Exec(`INSERT INTO teams (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, fmt.Sprintf("Team %d", i))
		if err != nil {
			return err
		}
	}

	for _, c := range seedCategories {
		_, err := db.Exec(`
			INSERT INTO categories (key, name, color, unit) VALUES ($1, $2, $3, $4)
			ON CONFLICT (key) DO UPDATE SET name = EXCLUDED.name, color = EXCLUDED.color, unit = EXCLUDED.unit`,
			c.Key, c.Name, c.Color, c.Unit)
		if err != nil {
			return err
		}
	}

	for _, cp := range seedCheckpoints {
		start, err := time.Parse(time.RFC3339, fmt.Sprintf(cp.StartDate, seedYear))
		if err != nil {
			return err
		}
		end, err := time.Parse(time.RFC3339, fmt.Sprintf(cp.EndDate, seedYear))
		if err != nil {
			return err
		}
		_, err = db.Exec(`
			INSERT INTO checkpoints (number, label, start_date, end_date) VALUES ($1, $2, $3, $4)
			ON CONFLICT (number) DO UPDATE SET label = EXCLUDED.label, start_date = EXCLUDED.start_date, end_date = EXCLUDED.end_date`,
			cp.Number, cp.Label, start, end)
		if err != nil {
			return err
		}
	}

	for classType, byCategory := range seedRequirements {
		for categoryKey, amounts := range byCategory {
			for i, required := range amounts {
				_, err := db.Exec(`
					INSERT INTO requirements (class_type, category_id, checkpoint_id, required)
					SELECT $1, c.id, cp.id, $2
					FROM categories c, checkpoints cp
					WHERE c.key = $3 AND cp.number = $4
					ON CONFLICT (class_type, category_id, checkpoint_id) DO UPDATE SET required = EXCLUDED.required`,
					classType, required, categoryKey, i+1)
				if err != nil {
					return err
				}
			}
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = db.Exec(`
		INSERT INTO users (username, password_hash, first_name, last_name, role, class_type, team_id)
		SELECT 'admin', $1, 'Admin', 'User', 'ADMIN', 'NON_GRAD', t.id
		FROM teams t WHERE t.name = 'Team 1'
		ON CONFLICT (username) DO UPDATE SET role = 'ADMIN', password_hash = EXCLUDED.password_hash`,
		string(hash))
	if err != nil {
		return err
	}

	log.Println("Seed complete: teams, categories, checkpoints, requirements, admin user")
	return nil
}
