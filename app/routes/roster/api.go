package roster

import (
	"database/sql"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/maytakahashi/pct-cup/app/config"
	"github.com/maytakahashi/pct-cup/app/database"
	"github.com/maytakahashi/pct-cup/app/models"
)

var validate = validator.New()

// GetRosterAPI lists every active bro.
func GetRosterAPI(c *fiber.Ctx) error {
	users, err := database.GetBros(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	out := make([]fiber.Map, 0, len(users))
	for i := range users {
		u := &users[i]
		out = append(out, fiber.Map{
			"id":       u.ID,
			"username": u.Username,
			"name":     u.Name(),
			"teamId":   u.TeamID,
		})
	}
	return c.JSON(out)
}

// GetTeamsAPI lists the teams a new bro can be assigned to.
func GetTeamsAPI(c *fiber.Ctx) error {
	teams, err := database.GetTeams(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	out := make([]fiber.Map, 0, len(teams))
	for _, t := range teams {
		out = append(out, fiber.Map{"id": t.ID, "name": t.Name})
	}
	return c.JSON(fiber.Map{"teams": out})
}

// CreateBroAPI adds a new bro to the roster.
func CreateBroAPI(c *fiber.Ctx) error {
	type CreateRequest struct {
		Username  string `json:"username" validate:"required"`
		FirstName string `json:"firstName" validate:"required"`
		LastName  string `json:"lastName" validate:"required"`
		ClassType string `json:"classType" validate:"required,oneof=NON_GRAD SENIOR"`
		TeamID    *int   `json:"teamId,omitempty"`
		Password  string `json:"password" validate:"required,min=8"`
	}

	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Bad input"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Bad input"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         models.RoleBro,
		ClassType:    models.ClassType(req.ClassType),
		TeamID:       req.TeamID,
	}

	if err := database.CreateUser(config.GetDB(), user); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return c.Status(409).JSON(fiber.Map{"error": "Username already taken"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create user"})
	}

	return c.JSON(fiber.Map{
		"id":       user.ID,
		"username": user.Username,
		"name":     user.Name(),
		"teamId":   user.TeamID,
	})
}

// RemoveBroAPI soft-removes a user: deactivated and detached from their
// team, with attendance history kept.
func RemoveBroAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Bad user id"})
	}

	if err := database.SoftRemoveUser(config.GetDB(), id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to remove user"})
	}

	return c.JSON(fiber.Map{"ok": true})
}
