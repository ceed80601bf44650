package auth

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/maytakahashi/pct-cup/app/config"
	"github.com/maytakahashi/pct-cup/app/database"
)

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil || req.Username == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Bad input"})
	}

	user, err := database.GetUserByUsername(config.GetDB(), req.Username)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	token := randomToken()
	expiresAt := time.Now().Add(sessionTTL)

	if err := database.CreateSession(config.GetDB(), uuid.NewString(), hashToken(token), user.ID, expiresAt); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create session"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     config.CookieName(),
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   false, // set true behind HTTPS
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{"ok": true})
}

func LogoutAPI(c *fiber.Ctx) error {
	if token := c.Cookies(config.CookieName()); token != "" {
		_ = database.DeleteSessionByTokenHash(config.GetDB(), hashToken(token))
	}

	c.Cookie(&fiber.Cookie{
		Name:     config.CookieName(),
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{"ok": true})
}

func MeAPI(c *fiber.Ctx) error {
	user := CurrentUser(c)
	return c.JSON(fiber.Map{
		"id":        user.ID,
		"username":  user.Username,
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"role":      user.Role,
		"classType": user.ClassType,
		"teamId":    user.TeamID,
	})
}
