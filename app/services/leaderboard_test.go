package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maytakahashi/pct-cup/app/models"
)

func intPtr(n int) *int { return &n }

func TestRankIndividualsOrderAndDenseRanks(t *testing.T) {
	cats := []models.Category{chapterCat, serviceCat}
	reqs := models.RequirementSet{
		{ClassType: models.NonGrad, CategoryID: chapterCat.ID}: 2,
		{ClassType: models.NonGrad, CategoryID: serviceCat.ID}: 2,
	}

	users := []models.User{
		{ID: 1, Username: "zed", FirstName: "Zed", LastName: "Aarons", ClassType: models.NonGrad},
		{ID: 2, Username: "amy", FirstName: "Amy", LastName: "Zimmer", ClassType: models.NonGrad},
		{ID: 3, Username: "bob", FirstName: "Bob", LastName: "Mid", ClassType: models.NonGrad},
	}
	completed := map[int]models.CompletionMap{
		1: {chapterCat.ID: {Count: 2}, serviceCat.ID: {Count: 1, ServiceHours: 2}}, // score 2.0
		2: {chapterCat.ID: {Count: 2}, serviceCat.ID: {Count: 1, ServiceHours: 2}}, // score 2.0
		3: {chapterCat.ID: {Count: 1}},                                             // score 0.5
	}

	rows := RankIndividuals(users, cats, reqs, completed)
	require.Len(t, rows, 3)

	// Tie on score and onTrack broken by name ascending.
	assert.Equal(t, []int{1, 2, 3}, []int{rows[0].Rank, rows[1].Rank, rows[2].Rank})
	assert.Equal(t, "Amy Zimmer", rows[0].Name)
	assert.Equal(t, "Zed Aarons", rows[1].Name)
	assert.Equal(t, "Bob Mid", rows[2].Name)

	assert.Equal(t, 2.0, rows[0].Score)
	assert.Equal(t, 2, rows[0].OnTrack)
	assert.Equal(t, 0.5, rows[2].Score)
	assert.Equal(t, 0, rows[2].OnTrack)
}

func TestRankIndividualsZeroRequirementContributesFullPoint(t *testing.T) {
	cats := []models.Category{chapterCat}
	// No requirement rows at all.
	rows := RankIndividuals(
		[]models.User{{ID: 1, Username: "a", FirstName: "A", LastName: "A", ClassType: models.NonGrad}},
		cats, models.RequirementSet{}, map[int]models.CompletionMap{},
	)
	require.Len(t, rows, 1)
	assert.Equal(t, 1.0, rows[0].Score)
	assert.Equal(t, 1, rows[0].OnTrack)
}

func TestRankIndividualsCapsRatioAtOne(t *testing.T) {
	cats := []models.Category{chapterCat}
	reqs := models.RequirementSet{{ClassType: models.NonGrad, CategoryID: chapterCat.ID}: 2}
	rows := RankIndividuals(
		[]models.User{{ID: 1, Username: "a", FirstName: "A", LastName: "A", ClassType: models.NonGrad}},
		cats, reqs, map[int]models.CompletionMap{1: {chapterCat.ID: {Count: 10}}},
	)
	require.Len(t, rows, 1)
	assert.Equal(t, 1.0, rows[0].Score)
}

func TestRankTeamsMetCountAndPct(t *testing.T) {
	cats := []models.Category{chapterCat}
	reqs := models.RequirementSet{{ClassType: models.NonGrad, CategoryID: chapterCat.ID}: 1}

	users := []models.User{
		{ID: 1, ClassType: models.NonGrad, TeamID: intPtr(1)},
		{ID: 2, ClassType: models.NonGrad, TeamID: intPtr(1)},
		{ID: 3, ClassType: models.NonGrad, TeamID: intPtr(1)},
		{ID: 4, ClassType: models.NonGrad, TeamID: intPtr(2)},
		{ID: 5, ClassType: models.NonGrad, TeamID: nil}, // teamless, excluded
	}
	completed := map[int]models.CompletionMap{
		1: {chapterCat.ID: {Count: 1}},
		2: {chapterCat.ID: {Count: 3}},
		4: {chapterCat.ID: {Count: 1}},
	}

	rows := RankTeams(users, cats, reqs, completed)
	require.Len(t, rows, 2)

	// Team 1: 2 of 3 met. Team 2: 1 of 1 met. Sorted by metCount first.
	assert.Equal(t, 1, rows[0].TeamID)
	assert.Equal(t, 2, rows[0].MetCount)
	assert.Equal(t, 3, rows[0].TeamSize)
	assert.InDelta(t, 0.667, rows[0].Pct, 0.001)

	assert.Equal(t, 2, rows[1].TeamID)
	assert.Equal(t, 1, rows[1].MetCount)
	assert.Equal(t, 1.0, rows[1].Pct)
}

func TestRankTeamsTiesBrokenByPctThenTeamID(t *testing.T) {
	cats := []models.Category{chapterCat}
	reqs := models.RequirementSet{{ClassType: models.NonGrad, CategoryID: chapterCat.ID}: 1}

	users := []models.User{
		{ID: 1, ClassType: models.NonGrad, TeamID: intPtr(1)},
		{ID: 2, ClassType: models.NonGrad, TeamID: intPtr(1)},
		{ID: 3, ClassType: models.NonGrad, TeamID: intPtr(2)},
	}
	completed := map[int]models.CompletionMap{
		1: {chapterCat.ID: {Count: 1}},
		3: {chapterCat.ID: {Count: 1}},
	}

	rows := RankTeams(users, cats, reqs, completed)
	require.Len(t, rows, 2)

	// Both teams have metCount 1; team 2 wins on pct (1/1 vs 1/2).
	assert.Equal(t, 2, rows[0].TeamID)
	assert.Equal(t, 1, rows[1].TeamID)
}
