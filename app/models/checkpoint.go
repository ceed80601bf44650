package models

import "time"

// Checkpoint is a dated milestone by which category requirements must be met.
type Checkpoint struct {
	ID        int       `json:"id"`
	Number    int       `json:"number"`
	Label     string    `json:"label"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// Requirement is the threshold a class type must reach in a category by a checkpoint.
type Requirement struct {
	ID           int       `json:"id"`
	ClassType    ClassType `json:"class_type"`
	CategoryID   int       `json:"category_id"`
	CheckpointID int       `json:"checkpoint_id"`
	Required     int       `json:"required"`
}

// RequirementKey identifies a threshold within one checkpoint.
type RequirementKey struct {
	ClassType  ClassType
	CategoryID int
}

// RequirementSet maps (classType, category) to the required amount for one
// checkpoint. A missing entry means required = 0.
type RequirementSet map[RequirementKey]int

// Required looks up the threshold for a class type and category, defaulting to 0.
func (rs RequirementSet) Required(ct ClassType, categoryID int) int {
	return rs[RequirementKey{ClassType: ct, CategoryID: categoryID}]
}
