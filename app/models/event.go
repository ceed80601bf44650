package models

import "time"

// Event represents a scheduled chapter event.
type Event struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	StartsAt     time.Time `json:"starts_at"`
	CategoryID   int       `json:"category_id"`
	CategoryKey  string    `json:"category_key"`
	CategoryName string    `json:"category_name"`
	Color        string    `json:"color"`
	Mandatory    bool      `json:"mandatory"`
	ServiceHours *int      `json:"service_hours,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Attendance records whether a user was present at an event. Rows for an
// event are replaced wholesale on each admin save.
type Attendance struct {
	EventID int  `json:"event_id"`
	UserID  int  `json:"user_id"`
	Present bool `json:"present"`
}
