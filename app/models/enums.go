package models

// Role defines the possible roles for a user.
type Role string

const (
	RoleBro   Role = "BRO"
	RoleAdmin Role = "ADMIN"
)

// ClassType determines which requirement thresholds apply to a user.
type ClassType string

const (
	NonGrad ClassType = "NON_GRAD"
	Senior  ClassType = "SENIOR"
)

// CategoryUnit defines how completion is measured for a category:
// a count of attended events, or a sum of service hours.
type CategoryUnit string

const (
	EventCount   CategoryUnit = "EVENT_COUNT"
	ServiceHours CategoryUnit = "SERVICE_HOURS"
)

// AlertStatus classifies a requirement gap by whether remaining
// scheduled events can still close it.
type AlertStatus string

const (
	AtRisk   AlertStatus = "AT_RISK"
	OffTrack AlertStatus = "OFF_TRACK"
)

// ProgressStatus is the per-category cell on the team dashboard.
type ProgressStatus string

const (
	StatusMet        ProgressStatus = "MET"
	StatusComplete   ProgressStatus = "COMPLETE"
	StatusInProgress ProgressStatus = "IN_PROGRESS"
	StatusOffTrack   ProgressStatus = "OFF_TRACK"
)
