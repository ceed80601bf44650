package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/maytakahashi/pct-cup/app/models"
)

func TestEventResponseUsesCamelCaseKeys(t *testing.T) {
	hours := 3
	e := &models.Event{
		ID:           12,
		Title:        "Highway Cleanup",
		StartsAt:     time.Date(2026, 3, 7, 9, 0, 0, 0, time.UTC),
		CategoryKey:  "SERVICE",
		CategoryName: "Service",
		Color:        "#16a34a",
		Mandatory:    false,
		ServiceHours: &hours,
	}

	out := eventResponse(e)
	assert.Equal(t, 12, out["id"])
	assert.Equal(t, "Highway Cleanup", out["title"])
	assert.Equal(t, e.StartsAt, out["startsAt"])
	assert.Equal(t, "SERVICE", out["categoryKey"])
	assert.Equal(t, "Service", out["categoryName"])
	assert.Equal(t, "#16a34a", out["color"])
	assert.Equal(t, false, out["mandatory"])
	assert.Equal(t, &hours, out["serviceHours"])
	assert.NotContains(t, out, "starts_at")
	assert.NotContains(t, out, "category_key")
}

func TestEventResponseOmitsJoinOnlyFields(t *testing.T) {
	e := &models.Event{ID: 1, Title: "Chapter", CategoryID: 2}

	out := eventResponse(e)
	assert.NotContains(t, out, "category_id")
	assert.NotContains(t, out, "created_at")
	assert.Nil(t, out["serviceHours"])
}
