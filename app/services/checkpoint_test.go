package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maytakahashi/pct-cup/app/models"
)

func date(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func semesterCheckpoints() []models.Checkpoint {
	return []models.Checkpoint{
		{ID: 1, Number: 1, Label: "Checkpoint 1", StartDate: date("2026-01-18T00:00:00Z"), EndDate: date("2026-02-11T23:59:59Z")},
		{ID: 2, Number: 2, Label: "Checkpoint 2", StartDate: date("2026-02-12T00:00:00Z"), EndDate: date("2026-03-04T23:59:59Z")},
		{ID: 3, Number: 3, Label: "Checkpoint 3", StartDate: date("2026-03-05T00:00:00Z"), EndDate: date("2026-04-01T23:59:59Z")},
		{ID: 4, Number: 4, Label: "Final", StartDate: date("2026-04-02T00:00:00Z"), EndDate: date("2026-04-27T23:59:59Z")},
	}
}

func TestNextCheckpointPicksEarliestUpcoming(t *testing.T) {
	cps := semesterCheckpoints()

	cp := NextCheckpoint(date("2026-02-20T12:00:00Z"), cps)
	require.NotNil(t, cp)
	assert.Equal(t, 2, cp.Number)

	// Midway through the first window.
	cp = NextCheckpoint(date("2026-01-25T00:00:00Z"), cps)
	require.NotNil(t, cp)
	assert.Equal(t, 1, cp.Number)
}

func TestNextCheckpointFallsBackToLastWhenAllPassed(t *testing.T) {
	cp := NextCheckpoint(date("2026-06-01T00:00:00Z"), semesterCheckpoints())
	require.NotNil(t, cp)
	assert.Equal(t, 4, cp.Number)
}

func TestNextCheckpointNilWithoutCheckpoints(t *testing.T) {
	assert.Nil(t, NextCheckpoint(time.Now(), nil))
}

func TestNextCheckpointBreaksEndDateTiesBySmallestNumber(t *testing.T) {
	end := date("2026-03-01T00:00:00Z")
	cps := []models.Checkpoint{
		{ID: 2, Number: 2, EndDate: end},
		{ID: 1, Number: 1, EndDate: end},
	}
	cp := NextCheckpoint(date("2026-02-01T00:00:00Z"), cps)
	require.NotNil(t, cp)
	assert.Equal(t, 1, cp.Number)
}

func TestResolveCheckpointNumber(t *testing.T) {
	cps := semesterCheckpoints()
	now := date("2026-02-20T12:00:00Z")

	// Explicit number is taken as-is, even if it does not exist yet.
	assert.Equal(t, 3, ResolveCheckpointNumber("3", now, cps))
	assert.Equal(t, 9, ResolveCheckpointNumber("9", now, cps))

	// Empty, non-numeric, and non-positive inputs fall back to the next rule.
	assert.Equal(t, 2, ResolveCheckpointNumber("", now, cps))
	assert.Equal(t, 2, ResolveCheckpointNumber("soon", now, cps))
	assert.Equal(t, 2, ResolveCheckpointNumber("-1", now, cps))

	// No checkpoints at all.
	assert.Equal(t, 0, ResolveCheckpointNumber("", now, nil))
}

func TestEndOfDayWidensToLastInstant(t *testing.T) {
	end := EndOfDay(date("2026-02-11T00:00:00Z"))
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())

	// An event at any time on the deadline day is not after the boundary.
	assert.False(t, date("2026-02-11T22:00:00Z").After(end))
	// The next calendar day is.
	assert.True(t, date("2026-02-12T00:00:00Z").After(end))
}

func TestCheckpointPassed(t *testing.T) {
	cp := &models.Checkpoint{EndDate: date("2026-02-11T00:00:00Z")}

	assert.False(t, CheckpointPassed(date("2026-02-11T12:00:00Z"), cp))
	assert.True(t, CheckpointPassed(date("2026-02-12T00:00:00Z"), cp))
}
