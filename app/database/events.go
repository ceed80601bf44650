package database

import (
	"database/sql"
	"time"

	"github.com/maytakahashi/pct-cup/app/models"
)

const eventColumns = `e.id, e.title, e.starts_at, e.category_id, c.key, c.name, c.color, e.mandatory, e.service_hours, e.created_at, e.updated_at`

// CreateEvent adds a new event and fills in its generated fields.
func CreateEvent(db *sql.DB, event *models.Event) error {
	query := `
		INSERT INTO events (title, starts_at, category_id, mandatory, service_hours, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return db.QueryRow(
		query,
		event.Title,
		event.StartsAt,
		event.CategoryID,
		event.Mandatory,
		event.ServiceHours,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
}

// UpdateEvent updates an existing event.
func UpdateEvent(db *sql.DB, event *models.Event) error {
	query := `
		UPDATE events
		SET title = $1, starts_at = $2, category_id = $3, mandatory = $4, service_hours = $5, updated_at = NOW()
		WHERE id = $6
	`
	res, err := db.Exec(query,
		event.Title, event.StartsAt, event.CategoryID, event.Mandatory, event.ServiceHours, event.ID,
	)
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
	return nil
}

// DeleteEvent removes an event and its attendance rows in one transaction.
func DeleteEvent(db *sql.DB, id int) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM attendance WHERE event_id = $1`, id); err != nil {
		return err
	}
	res, err := tx.Exec(`DELETE FROM events WHERE id = $1`, id)
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
	return tx.Commit()
}

// GetEvents retrieves all events with their category, ordered by start time.
func GetEvents(db *sql.DB) ([]models.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events e
		JOIN categories c ON c.id = e.category_id
		ORDER BY e.starts_at ASC
	`
	return queryEvents(db, query)
}

// GetEventsSince retrieves events starting at or after a cutoff, ordered by
// start time. The schedule view uses a cutoff of one week ago.
func GetEventsSince(db *sql.DB, since time.Time) ([]models.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events e
		JOIN categories c ON c.id = e.category_id
		WHERE e.starts_at >= $1
		ORDER BY e.starts_at ASC
	`
	return queryEvents(db, query, since)
}

// GetEventByID looks up one event with its category.
func GetEventByID(db *sql.DB, id int) (*models.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events e
		JOIN categories c ON c.id = e.category_id
		WHERE e.id = $1
	`
	var e models.Event
	err := db.QueryRow(query, id).Scan(
		&e.ID, &e.Title, &e.StartsAt, &e.CategoryID, &e.CategoryKey, &e.CategoryName,
		&e.Color, &e.Mandatory, &e.ServiceHours, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func queryEvents(db *sql.DB, query string, args ...interface{}) ([]models.Event, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(
			&e.ID, &e.Title, &e.StartsAt, &e.CategoryID, &e.CategoryKey, &e.CategoryName,
			&e.Color, &e.Mandatory, &e.ServiceHours, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
