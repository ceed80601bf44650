package events

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/maytakahashi/pct-cup/app/config"
	"github.com/maytakahashi/pct-cup/app/database"
	"github.com/maytakahashi/pct-cup/app/models"
)

var validate = validator.New()

func eventResponse(e *models.Event) fiber.Map {
	return fiber.Map{
		"id":           e.ID,
		"title":        e.Title,
		"startsAt":     e.StartsAt,
		"categoryKey":  e.CategoryKey,
		"categoryName": e.CategoryName,
		"color":        e.Color,
		"mandatory":    e.Mandatory,
		"serviceHours": e.ServiceHours,
	}
}

// EventRequest is the admin create/update body. Mandatory is never taken
// from the client: it is derived from the category.
type EventRequest struct {
	Title        string `json:"title" validate:"required"`
	StartsAt     string `json:"startsAt" validate:"required"`
	CategoryKey  string `json:"categoryKey" validate:"required,oneof=CHAPTER RUSH INTERNAL CORPORATE PLEDGE SERVICE CASUAL SOCIAL"`
	ServiceHours *int   `json:"serviceHours,omitempty"`
}

// buildEvent validates the request body and derives the stored fields:
// mandatory iff the category is INTERNAL, service hours only for
// hours-unit categories and clamped to at least 1.
func buildEvent(c *fiber.Ctx) (*models.Event, error) {
	var req EventRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, fiber.NewError(400, "Bad input")
	}
	if err := validate.Struct(&req); err != nil {
		return nil, fiber.NewError(400, "Bad input")
	}

	category, err := database.GetCategoryByKey(config.GetDB(), req.CategoryKey)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fiber.NewError(400, "Invalid categoryKey")
		}
		return nil, fiber.NewError(500, "Database error")
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		return nil, fiber.NewError(400, "Invalid startsAt")
	}

	event := &models.Event{
		Title:      req.Title,
		StartsAt:   startsAt,
		CategoryID: category.ID,
		Mandatory:  category.Key == "INTERNAL",
	}

	if category.Unit == models.ServiceHours {
		hours := 1
		if req.ServiceHours != nil && *req.ServiceHours > 1 {
			hours = *req.ServiceHours
		}
		event.ServiceHours = &hours
	}

	return event, nil
}

// GetEventsAPI returns every event with its category, ascending.
func GetEventsAPI(c *fiber.Ctx) error {
	events, err := database.GetEvents(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch events"})
	}

	out := make([]fiber.Map, 0, len(events))
	for i := range events {
		out = append(out, eventResponse(&events[i]))
	}
	return c.JSON(out)
}

// CreateEventAPI creates a new event.
func CreateEventAPI(c *fiber.Ctx) error {
	event, err := buildEvent(c)
	if err != nil {
		e := err.(*fiber.Error)
		return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
	}

	if err := database.CreateEvent(config.GetDB(), event); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create event"})
	}

	created, err := database.GetEventByID(config.GetDB(), event.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch event"})
	}
	return c.JSON(eventResponse(created))
}

// UpdateEventAPI updates an existing event with the same derivation rules
// as create.
func UpdateEventAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Bad event id"})
	}

	event, berr := buildEvent(c)
	if berr != nil {
		e := berr.(*fiber.Error)
		return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
	}
	event.ID = id

	if err := database.UpdateEvent(config.GetDB(), event); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Event not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update event"})
	}

	updated, err := database.GetEventByID(config.GetDB(), id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch event"})
	}
	return c.JSON(eventResponse(updated))
}

// DeleteEventAPI deletes an event and its attendance.
func DeleteEventAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Bad event id"})
	}

	if err := database.DeleteEvent(config.GetDB(), id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Event not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete event"})
	}

	return c.JSON(fiber.Map{"ok": true})
}

// GetAttendanceAPI returns the users currently marked present for an event.
func GetAttendanceAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Bad event id"})
	}

	if _, err := database.GetEventByID(config.GetDB(), id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Event not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	ids, err := database.GetPresentUserIDs(config.GetDB(), id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}

	return c.JSON(fiber.Map{"eventId": id, "presentUserIds": ids})
}

// SaveAttendanceAPI replaces an event's attendance with the submitted
// present set. Saving the same list twice leaves the same rows.
func SaveAttendanceAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Bad event id"})
	}

	type SaveRequest struct {
		PresentUserIDs []int `json:"presentUserIds" validate:"required"`
	}
	var req SaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Bad input"})
	}
	if req.PresentUserIDs == nil {
		return c.Status(400).JSON(fiber.Map{"error": "Bad input"})
	}

	if _, err := database.GetEventByID(config.GetDB(), id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Event not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if err := database.ReplaceAttendance(config.GetDB(), id, req.PresentUserIDs); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save attendance"})
	}

	return c.JSON(fiber.Map{"ok": true, "count": len(req.PresentUserIDs)})
}
