package database

import (
	"database/sql"
	"time"

	"github.com/maytakahashi/pct-cup/app/models"
)

func GetUserByUsername(db *sql.DB, username string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, password_hash, first_name, last_name, role, class_type, team_id, is_active, created_at, updated_at
			  FROM users WHERE username = $1 AND is_active = true`

	err := db.QueryRow(query, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.FirstName, &user.LastName,
		&user.Role, &user.ClassType, &user.TeamID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID int) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, password_hash, first_name, last_name, role, class_type, team_id, is_active, created_at, updated_at
			  FROM users WHERE id = $1 AND is_active = true`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.FirstName, &user.LastName,
		&user.Role, &user.ClassType, &user.TeamID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetBros returns all active BRO users ordered by last name, first name.
func GetBros(db *sql.DB) ([]models.User, error) {
	query := `SELECT id, username, password_hash, first_name, last_name, role, class_type, team_id, is_active, created_at, updated_at
			  FROM users WHERE role = 'BRO' AND is_active = true
			  ORDER BY last_name ASC, first_name ASC`
	return queryUsers(db, query)
}

// GetTeamMembers returns active users on a team ordered by last name, first name.
func GetTeamMembers(db *sql.DB, teamID int, brosOnly bool) ([]models.User, error) {
	query := `SELECT id, username, password_hash, first_name, last_name, role, class_type, team_id, is_active, created_at, updated_at
			  FROM users WHERE team_id = $1 AND is_active = true`
	if brosOnly {
		query += ` AND role = 'BRO'`
	}
	query += ` ORDER BY last_name ASC, first_name ASC`
	return queryUsers(db, query, teamID)
}

func queryUsers(db *sql.DB, query string, args ...interface{}) ([]models.User, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(
			&u.ID, &u.Username, &u.PasswordHash, &u.FirstName, &u.LastName,
			&u.Role, &u.ClassType, &u.TeamID, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// CreateUser inserts a new user and fills in its generated fields.
func CreateUser(db *sql.DB, user *models.User) error {
	query := `INSERT INTO users (username, password_hash, first_name, last_name, role, class_type, team_id, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query,
		user.Username, user.PasswordHash, user.FirstName, user.LastName,
		user.Role, user.ClassType, user.TeamID,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

// SoftRemoveUser deactivates a user and detaches them from their team.
// Attendance history stays in place; the row is never hard-deleted.
func SoftRemoveUser(db *sql.DB, userID int) error {
	res, err := db.Exec(`UPDATE users SET is_active = false, team_id = NULL, updated_at = NOW() WHERE id = $1 AND is_active = true`, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	_, err = db.Exec(`DELETE FROM sessions WHERE user_id = $1`, userID)
	return err
}

func GetTeams(db *sql.DB) ([]models.Team, error) {
	rows, err := db.Query(`SELECT id, name FROM teams ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []models.Team
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func CreateSession(db *sql.DB, sessionID string, tokenHash string, userID int, expiresAt time.Time) error {
	query := `INSERT INTO sessions (id, token_hash, user_id, expires_at, created_at) VALUES ($1, $2, $3, $4, NOW())`
	_, err := db.Exec(query, sessionID, tokenHash, userID, expiresAt)
	return err
}

func GetSessionByTokenHash(db *sql.DB, tokenHash string) (*models.Session, error) {
	session := &models.Session{}
	query := `SELECT id, token_hash, user_id, expires_at, created_at FROM sessions WHERE token_hash = $1`

	err := db.QueryRow(query, tokenHash).Scan(
		&session.ID, &session.TokenHash, &session.UserID, &session.ExpiresAt, &session.CreatedAt,
	)

	if err != nil {
		return nil, err
	}
	return session, nil
}

func DeleteSessionByTokenHash(db *sql.DB, tokenHash string) error {
	_, err := db.Exec(`DELETE FROM sessions WHERE token_hash = $1`, tokenHash)
	return err
}
