package database

import (
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/maytakahashi/pct-cup/app/models"
)

// GetPresentUserIDs returns the users marked present for an event.
func GetPresentUserIDs(db *sql.DB, eventID int) ([]int, error) {
	rows, err := db.Query(`SELECT user_id FROM attendance WHERE event_id = $1 AND present = true ORDER BY user_id ASC`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ReplaceAttendance replaces an event's attendance with the given present
// set. Delete-then-insert inside one transaction, so readers never observe
// the empty window and a replay with the same list is a no-op.
func ReplaceAttendance(db *sql.DB, eventID int, presentUserIDs []int) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM attendance WHERE event_id = $1`, eventID); err != nil {
		return err
	}

	if len(presentUserIDs) > 0 {
		_, err = tx.Exec(
			`INSERT INTO attendance (event_id, user_id, present)
			 SELECT $1, uid, true FROM unnest($2::int[]) AS uid`,
			eventID, pq.Array(presentUserIDs),
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// CompletedByCategory aggregates present attendance for a set of users in
// one query: per user, per category, the row count and summed service
// hours for events starting at or before the boundary. One bulk fetch
// regardless of how many users are evaluated.
func CompletedByCategory(db *sql.DB, userIDs []int, boundary time.Time) (map[int]models.CompletionMap, error) {
	byUser := make(map[int]models.CompletionMap, len(userIDs))
	if len(userIDs) == 0 {
		return byUser, nil
	}

	query := `
		SELECT a.user_id, e.category_id, COUNT(*), COALESCE(SUM(e.service_hours), 0)
		FROM attendance a
		JOIN events e ON e.id = a.event_id
		WHERE a.present = true AND a.user_id = ANY($1) AND e.starts_at <= $2
		GROUP BY a.user_id, e.category_id
	`
	rows, err := db.Query(query, pq.Array(userIDs), boundary)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var userID, categoryID int
		var tally models.CategoryTally
		if err := rows.Scan(&userID, &categoryID, &tally.Count, &tally.ServiceHours); err != nil {
			return nil, err
		}
		cm := byUser[userID]
		if cm == nil {
			cm = models.CompletionMap{}
			byUser[userID] = cm
		}
		cm[categoryID] = tally
	}
	return byUser, rows.Err()
}

// CompletedByCategoryForUser is the single-user form of CompletedByCategory.
func CompletedByCategoryForUser(db *sql.DB, userID int, boundary time.Time) (models.CompletionMap, error) {
	byUser, err := CompletedByCategory(db, []int{userID}, boundary)
	if err != nil {
		return nil, err
	}
	if cm, ok := byUser[userID]; ok {
		return cm, nil
	}
	return models.CompletionMap{}, nil
}

// CountUpcomingEventsByCategory counts events strictly after now and at or
// before the boundary, per category. Once now is past the boundary there
// are no remaining opportunities and no query is made.
func CountUpcomingEventsByCategory(db *sql.DB, now, boundary time.Time) (map[int]int, error) {
	counts := map[int]int{}
	if now.After(boundary) {
		return counts, nil
	}

	query := `SELECT category_id, COUNT(*) FROM events WHERE starts_at > $1 AND starts_at <= $2 GROUP BY category_id`
	rows, err := db.Query(query, now, boundary)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var categoryID, count int
		if err := rows.Scan(&categoryID, &count); err != nil {
			return nil, err
		}
		counts[categoryID] = count
	}
	return counts, rows.Err()
}
