package checkpoints

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"

	"github.com/maytakahashi/pct-cup/app/config"
	"github.com/maytakahashi/pct-cup/app/database"
	"github.com/maytakahashi/pct-cup/app/models"
)

var validate = validator.New()

// CheckpointRequest is the admin create/update body. The start date is
// optional: create falls back to the end date, update keeps the stored one.
type CheckpointRequest struct {
	Number    int    `json:"number" validate:"omitempty,min=1"`
	Label     string `json:"label"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate" validate:"required"`
}

// RequirementUpdate is one cell of the requirements grid.
type RequirementUpdate struct {
	ClassType    string `json:"classType"`
	CategoryID   int    `json:"categoryId"`
	CheckpointID int    `json:"checkpointId"`
	Required     int    `json:"required"`
}

func checkpointResponse(cp *models.Checkpoint) fiber.Map {
	return fiber.Map{
		"id":        cp.ID,
		"number":    cp.Number,
		"label":     cp.Label,
		"startDate": cp.StartDate,
		"endDate":   cp.EndDate,
	}
}

// validateUpdates checks every grid cell before anything is written, so a
// bad batch changes nothing.
func validateUpdates(updates []RequirementUpdate) error {
	if len(updates) == 0 {
		return fmt.Errorf("no updates")
	}
	for _, u := range updates {
		if u.ClassType != string(models.NonGrad) && u.ClassType != string(models.Senior) {
			return fmt.Errorf("invalid classType %q", u.ClassType)
		}
		if u.CategoryID <= 0 || u.CheckpointID <= 0 {
			return fmt.Errorf("invalid category or checkpoint id")
		}
		if u.Required < 0 {
			return fmt.Errorf("required must be >= 0")
		}
	}
	return nil
}

// GetCheckpointsAPI lists every checkpoint in number order.
func GetCheckpointsAPI(c *fiber.Ctx) error {
	cps, err := database.GetCheckpoints(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch checkpoints"})
	}

	out := make([]fiber.Map, 0, len(cps))
	for i := range cps {
		out = append(out, checkpointResponse(&cps[i]))
	}
	return c.JSON(fiber.Map{"checkpoints": out})
}

// CreateCheckpointAPI adds a checkpoint. The label defaults to
// "Checkpoint #N" when left empty.
func CreateCheckpointAPI(c *fiber.Ctx) error {
	var req CheckpointRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Bad input"})
	}
	if err := validate.Struct(&req); err != nil || req.Number < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "Bad input"})
	}

	endDate, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid endDate"})
	}

	startDate := endDate
	if req.StartDate != "" {
		startDate, err = time.Parse(time.RFC3339, req.StartDate)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid startDate"})
		}
	}

	label := req.Label
	if label == "" {
		label = fmt.Sprintf("Checkpoint #%d", req.Number)
	}

	cp := &models.Checkpoint{
		Number:    req.Number,
		Label:     label,
		StartDate: startDate,
		EndDate:   endDate,
	}

	if err := database.CreateCheckpoint(config.GetDB(), cp); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return c.Status(409).JSON(fiber.Map{"error": "Checkpoint number already exists"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create checkpoint"})
	}

	return c.JSON(checkpointResponse(cp))
}

// UpdateCheckpointAPI updates a checkpoint's label and dates.
func UpdateCheckpointAPI(c *fiber.Ctx) error {
	number, err := strconv.Atoi(c.Params("number"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Bad checkpoint number"})
	}

	var req CheckpointRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Bad input"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Bad input"})
	}

	endDate, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid endDate"})
	}

	cp, err := database.GetCheckpointByNumber(config.GetDB(), number)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Checkpoint not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if req.Label != "" {
		cp.Label = req.Label
	}
	cp.EndDate = endDate
	if req.StartDate != "" {
		startDate, err := time.Parse(time.RFC3339, req.StartDate)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid startDate"})
		}
		cp.StartDate = startDate
	}

	if err := database.UpdateCheckpoint(config.GetDB(), cp); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Checkpoint not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update checkpoint"})
	}

	return c.JSON(checkpointResponse(cp))
}

// DeleteCheckpointAPI deletes a checkpoint. A checkpoint that still has
// requirement rows cannot be deleted.
func DeleteCheckpointAPI(c *fiber.Ctx) error {
	number, err := strconv.Atoi(c.Params("number"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Bad checkpoint number"})
	}

	if err := database.DeleteCheckpointByNumber(config.GetDB(), number); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Checkpoint not found"})
		}
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "foreign_key_violation" {
			return c.Status(409).JSON(fiber.Map{"error": "Checkpoint still has requirements"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete checkpoint"})
	}

	return c.JSON(fiber.Map{"ok": true})
}

// GetRequirementsAPI returns the full requirements grid along with the
// categories and checkpoints that form its axes.
func GetRequirementsAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	cats, err := database.GetCategories(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch requirements"})
	}
	cps, err := database.GetCheckpoints(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch requirements"})
	}
	reqs, err := database.GetRequirements(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch requirements"})
	}

	catsOut := make([]fiber.Map, 0, len(cats))
	for _, cat := range cats {
		catsOut = append(catsOut, fiber.Map{
			"id":    cat.ID,
			"key":   cat.Key,
			"name":  cat.Name,
			"color": cat.Color,
		})
	}

	cpsOut := make([]fiber.Map, 0, len(cps))
	for i := range cps {
		cpsOut = append(cpsOut, checkpointResponse(&cps[i]))
	}

	reqsOut := make([]fiber.Map, 0, len(reqs))
	for _, r := range reqs {
		reqsOut = append(reqsOut, fiber.Map{
			"classType":    r.ClassType,
			"categoryId":   r.CategoryID,
			"checkpointId": r.CheckpointID,
			"required":     r.Required,
		})
	}

	return c.JSON(fiber.Map{
		"categories":   catsOut,
		"checkpoints":  cpsOut,
		"requirements": reqsOut,
	})
}

// SaveRequirementsAPI applies a batch of grid edits in one transaction.
func SaveRequirementsAPI(c *fiber.Ctx) error {
	type SaveRequest struct {
		Updates []RequirementUpdate `json:"updates"`
	}
	var req SaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Bad input"})
	}
	if err := validateUpdates(req.Updates); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "All requirement values must be whole numbers >= 0"})
	}

	updates := make([]models.Requirement, 0, len(req.Updates))
	for _, u := range req.Updates {
		updates = append(updates, models.Requirement{
			ClassType:    models.ClassType(u.ClassType),
			CategoryID:   u.CategoryID,
			CheckpointID: u.CheckpointID,
			Required:     u.Required,
		})
	}

	if err := database.UpsertRequirements(config.GetDB(), updates); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save requirements"})
	}

	return c.JSON(fiber.Map{"ok": true, "count": len(updates)})
}
