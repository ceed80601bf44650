package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/maytakahashi/pct-cup/app/config"
	"github.com/maytakahashi/pct-cup/app/database"
	"github.com/maytakahashi/pct-cup/app/models"
)

const sessionTTL = 30 * 24 * time.Hour

// randomToken generates an opaque session token. Only its hash is stored.
func randomToken() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// RequireUser validates the session cookie and sets the authenticated user
// on the request context.
func RequireUser(c *fiber.Ctx) error {
	token := c.Cookies(config.CookieName())
	if token == "" {
		return c.Status(401).JSON(fiber.Map{"error": "Not logged in"})
	}

	tokenHash := hashToken(token)
	session, err := database.GetSessionByTokenHash(config.GetDB(), tokenHash)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid session"})
	}

	if session.ExpiresAt.Before(time.Now()) {
		_ = database.DeleteSessionByTokenHash(config.GetDB(), tokenHash)
		return c.Status(401).JSON(fiber.Map{"error": "Session expired"})
	}

	user, err := database.GetUserByID(config.GetDB(), session.UserID)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid session"})
	}

	c.Locals("user", user)
	return c.Next()
}

// RequireAdmin gates a route to ADMIN users. Must run after RequireUser.
func RequireAdmin(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	if user.Role != models.RoleAdmin {
		return c.Status(403).JSON(fiber.Map{"error": "Admin only"})
	}
	return c.Next()
}

// CurrentUser returns the user set by RequireUser.
func CurrentUser(c *fiber.Ctx) *models.User {
	return c.Locals("user").(*models.User)
}
