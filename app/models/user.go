package models

import "time"

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username" validate:"required"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name" validate:"required"`
	LastName     string    `json:"last_name" validate:"required"`
	Role         Role      `json:"role" validate:"required,oneof=BRO ADMIN"`
	ClassType    ClassType `json:"class_type" validate:"required,oneof=NON_GRAD SENIOR"`
	TeamID       *int      `json:"team_id,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Name returns the display name used across dashboards and alerts.
func (u *User) Name() string {
	return u.FirstName + " " + u.LastName
}

type Session struct {
	ID        string    `json:"id"`
	TokenHash string    `json:"-"`
	UserID    int       `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

type Team struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
