package models

// CategoryTally is the raw per-category attendance aggregate for one user:
// how many present rows, and the summed service hours of those rows. Which
// of the two counts as "completed" depends on the category unit.
type CategoryTally struct {
	Count        int
	ServiceHours int
}

// CompletionMap maps categoryID to a user's tally.
type CompletionMap map[int]CategoryTally

// Completed returns the amount that counts toward the category's requirement.
func (m CompletionMap) Completed(cat *Category) int {
	t := m[cat.ID]
	if cat.Unit == ServiceHours {
		return t.ServiceHours
	}
	return t.Count
}
