package checkpoints

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maytakahashi/pct-cup/app/config"
	"github.com/maytakahashi/pct-cup/app/models"
)

func init() {
	config.AppConfig = &config.Config{CookieName: "pctcup_session"}
}

func TestValidateUpdates(t *testing.T) {
	good := RequirementUpdate{ClassType: "NON_GRAD", CategoryID: 1, CheckpointID: 2, Required: 3}

	assert.NoError(t, validateUpdates([]RequirementUpdate{good}))
	assert.NoError(t, validateUpdates([]RequirementUpdate{
		{ClassType: "SENIOR", CategoryID: 4, CheckpointID: 1, Required: 0},
	}))

	assert.Error(t, validateUpdates(nil))

	bad := good
	bad.ClassType = "FRESHMAN"
	assert.Error(t, validateUpdates([]RequirementUpdate{bad}))

	bad = good
	bad.Required = -1
	assert.Error(t, validateUpdates([]RequirementUpdate{good, bad}))

	bad = good
	bad.CategoryID = 0
	assert.Error(t, validateUpdates([]RequirementUpdate{bad}))

	bad = good
	bad.CheckpointID = 0
	assert.Error(t, validateUpdates([]RequirementUpdate{bad}))
}

func TestCheckpointResponseUsesCamelCaseKeys(t *testing.T) {
	cp := &models.Checkpoint{
		ID:        7,
		Number:    2,
		Label:     "Checkpoint #2",
		StartDate: time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 4, 23, 59, 59, 0, time.UTC),
	}

	out := checkpointResponse(cp)
	assert.Equal(t, 7, out["id"])
	assert.Equal(t, 2, out["number"])
	assert.Equal(t, "Checkpoint #2", out["label"])
	assert.Equal(t, cp.StartDate, out["startDate"])
	assert.Equal(t, cp.EndDate, out["endDate"])
	assert.NotContains(t, out, "end_date")
}

func TestAdminRoutesRejectAnonymous(t *testing.T) {
	app := fiber.New()
	SetupCheckpointRoutes(app)

	for _, r := range []struct{ method, path string }{
		{"GET", "/admin/checkpoints"},
		{"POST", "/admin/checkpoints"},
		{"PUT", "/admin/checkpoints/1"},
		{"DELETE", "/admin/checkpoints/1"},
		{"GET", "/admin/requirements"},
		{"PUT", "/admin/requirements"},
	} {
		resp, err := app.Test(httptest.NewRequest(r.method, r.path, nil))
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode, "%s %s", r.method, r.path)
	}
}
