package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maytakahashi/pct-cup/app/models"
)

var (
	chapterCat = models.Category{ID: 1, Key: "CHAPTER", Name: "Chapter Meetings", Unit: models.EventCount}
	serviceCat = models.Category{ID: 6, Key: "SERVICE", Name: "Community Service Hours", Unit: models.ServiceHours}
)

func TestRemainingNeededNeverNegative(t *testing.T) {
	assert.Equal(t, 0, RemainingNeeded(1, 1))
	assert.Equal(t, 0, RemainingNeeded(1, 5))
	assert.Equal(t, 2, RemainingNeeded(3, 1))
	assert.Equal(t, 0, RemainingNeeded(0, 0))
}

func TestZeroRequirementIsAlwaysMet(t *testing.T) {
	assert.Equal(t, 0, RemainingNeeded(0, 0))
	assert.Equal(t, 0, RemainingNeeded(0, 7))
}

func TestServiceCategoryCountsHoursNotEvents(t *testing.T) {
	// One attended service event worth 2 hours.
	completed := models.CompletionMap{serviceCat.ID: {Count: 1, ServiceHours: 2}}

	// Requirement of 3 hours: 1 hour short, not "1 event away".
	done := completed.Completed(&serviceCat)
	assert.Equal(t, 2, done)
	assert.Equal(t, 1, RemainingNeeded(3, done))

	// An event-count category uses the row count.
	completed = models.CompletionMap{chapterCat.ID: {Count: 1, ServiceHours: 2}}
	assert.Equal(t, 1, completed.Completed(&chapterCat))
}

func TestGapStatus(t *testing.T) {
	// Enough future events to close the gap.
	assert.Equal(t, models.AtRisk, GapStatus(1, 1))
	assert.Equal(t, models.AtRisk, GapStatus(2, 5))
	// Gap can no longer be closed.
	assert.Equal(t, models.OffTrack, GapStatus(1, 0))
	assert.Equal(t, models.OffTrack, GapStatus(3, 2))
}

func TestTeamCellStatus(t *testing.T) {
	assert.Equal(t, models.StatusComplete, TeamCellStatus(0, false))
	assert.Equal(t, models.StatusMet, TeamCellStatus(0, true))
	assert.Equal(t, models.StatusInProgress, TeamCellStatus(2, false))
	assert.Equal(t, models.StatusOffTrack, TeamCellStatus(2, true))
}

func TestMeetsAllRequirements(t *testing.T) {
	cats := []models.Category{chapterCat, serviceCat}
	reqs := models.RequirementSet{
		{ClassType: models.NonGrad, CategoryID: chapterCat.ID}: 1,
		{ClassType: models.NonGrad, CategoryID: serviceCat.ID}: 3,
	}

	met := models.CompletionMap{
		chapterCat.ID: {Count: 1},
		serviceCat.ID: {Count: 1, ServiceHours: 3},
	}
	assert.True(t, MeetsAllRequirements(cats, reqs, models.NonGrad, met))

	short := models.CompletionMap{
		chapterCat.ID: {Count: 1},
		serviceCat.ID: {Count: 2, ServiceHours: 2},
	}
	assert.False(t, MeetsAllRequirements(cats, reqs, models.NonGrad, short))

	// No requirement rows for seniors: trivially met with no attendance.
	assert.True(t, MeetsAllRequirements(cats, reqs, models.Senior, models.CompletionMap{}))
}
