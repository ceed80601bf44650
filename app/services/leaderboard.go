package services

import (
	"math"
	"sort"

	"github.com/maytakahashi/pct-cup/app/models"
)

// IndividualRow is one ranked entry on the individual leaderboard.
type IndividualRow struct {
	Rank     int     `json:"rank"`
	Username string  `json:"username"`
	Name     string  `json:"name"`
	TeamID   *int    `json:"teamId"`
	Score    float64 `json:"score"`
	OnTrack  int     `json:"onTrack"`
}

// TeamRow is one ranked entry on the team leaderboard.
type TeamRow struct {
	TeamID   int     `json:"teamId"`
	MetCount int     `json:"metCount"`
	TeamSize int     `json:"teamSize"`
	Pct      float64 `json:"pct"`
}

// RankIndividuals scores every user and returns them ranked. Score is the
// sum over categories of min(completed/required, 1); a category with no
// requirement contributes a full point and counts as on track. Sort order
// is score desc, onTrack desc, name asc, with dense 1-based ranks.
func RankIndividuals(users []models.User, cats []models.Category, reqs models.RequirementSet, completedByUser map[int]models.CompletionMap) []IndividualRow {
	rows := make([]IndividualRow, 0, len(users))
	for i := range users {
		u := &users[i]
		completed := completedByUser[u.ID]

		var score float64
		onTrack := 0
		for j := range cats {
			required := reqs.Required(u.ClassType, cats[j].ID)
			if required <= 0 {
				score++
				onTrack++
				continue
			}
			ratio := math.Min(float64(completed.Completed(&cats[j]))/float64(required), 1)
			score += ratio
			if ratio >= 1 {
				onTrack++
			}
		}

		rows = append(rows, IndividualRow{
			Username: u.Username,
			Name:     u.Name(),
			TeamID:   u.TeamID,
			Score:    math.Round(score*1000) / 1000,
			OnTrack:  onTrack,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		if rows[i].OnTrack != rows[j].OnTrack {
			return rows[i].OnTrack > rows[j].OnTrack
		}
		return rows[i].Name < rows[j].Name
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

// RankTeams groups users by team and ranks teams by how many members meet
// every requirement for their class type. Users without a team are
// excluded. Sort order is metCount desc, pct desc, teamId asc.
func RankTeams(users []models.User, cats []models.Category, reqs models.RequirementSet, completedByUser map[int]models.CompletionMap) []TeamRow {
	byTeam := map[int][]*models.User{}
	for i := range users {
		u := &users[i]
		if u.TeamID == nil {
			continue
		}
		byTeam[*u.TeamID] = append(byTeam[*u.TeamID], u)
	}

	rows := make([]TeamRow, 0, len(byTeam))
	for teamID, members := range byTeam {
		metCount := 0
		for _, m := range members {
			if MeetsAllRequirements(cats, reqs, m.ClassType, completedByUser[m.ID]) {
				metCount++
			}
		}
		pct := 0.0
		if len(members) > 0 {
			pct = float64(metCount) / float64(len(members))
		}
		rows = append(rows, TeamRow{
			TeamID:   teamID,
			MetCount: metCount,
			TeamSize: len(members),
			Pct:      pct,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].MetCount != rows[j].MetCount {
			return rows[i].MetCount > rows[j].MetCount
		}
		if rows[i].Pct != rows[j].Pct {
			return rows[i].Pct > rows[j].Pct
		}
		return rows[i].TeamID < rows[j].TeamID
	})
	return rows
}
