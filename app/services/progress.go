package services

import "github.com/maytakahashi/pct-cup/app/models"

// RemainingNeeded is how much of a requirement is still open. Never negative.
func RemainingNeeded(required, completed int) int {
	if completed >= required {
		return 0
	}
	return required - completed
}

// GapStatus classifies an open requirement gap: AT_RISK while enough
// scheduled events remain to close it, OFF_TRACK once they cannot. Only
// meaningful when remainingNeeded > 0.
func GapStatus(remainingNeeded, remainingOpportunities int) models.AlertStatus {
	if remainingNeeded > remainingOpportunities {
		return models.OffTrack
	}
	return models.AtRisk
}

// TeamCellStatus is the four-way status on the team dashboard grid. The
// met/unmet axis comes from remainingNeeded, the wording from whether the
// checkpoint deadline has passed.
func TeamCellStatus(remainingNeeded int, checkpointPassed bool) models.ProgressStatus {
	if remainingNeeded == 0 {
		if checkpointPassed {
			return models.StatusMet
		}
		return models.StatusComplete
	}
	if checkpointPassed {
		return models.StatusOffTrack
	}
	return models.StatusInProgress
}

// MeetsAllRequirements reports whether a user's completion covers every
// category threshold for their class type. Categories without a
// requirement row are trivially met.
func MeetsAllRequirements(cats []models.Category, reqs models.RequirementSet, classType models.ClassType, completed models.CompletionMap) bool {
	for i := range cats {
		required := reqs.Required(classType, cats[i].ID)
		if completed.Completed(&cats[i]) < required {
			return false
		}
	}
	return true
}
