package database

import (
	"database/sql"

	"github.com/maytakahashi/pct-cup/app/models"
)

// GetCheckpoints returns all checkpoints ordered by number.
func GetCheckpoints(db *sql.DB) ([]models.Checkpoint, error) {
	query := `SELECT id, number, label, start_date, end_date FROM checkpoints ORDER BY number ASC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cps []models.Checkpoint
	for rows.Next() {
		var cp models.Checkpoint
		if err := rows.Scan(&cp.ID, &cp.Number, &cp.Label, &cp.StartDate, &cp.EndDate); err != nil {
			return nil, err
		}
		cps = append(cps, cp)
	}
	return cps, rows.Err()
}

// GetCheckpointByNumber looks up one checkpoint by its number.
func GetCheckpointByNumber(db *sql.DB, number int) (*models.Checkpoint, error) {
	cp := &models.Checkpoint{}
	query := `SELECT id, number, label, start_date, end_date FROM checkpoints WHERE number = $1`
	err := db.QueryRow(query, number).Scan(&cp.ID, &cp.Number, &cp.Label, &cp.StartDate, &cp.EndDate)
	if err != nil {
		return nil, err
	}
	return cp, nil
}

// CreateCheckpoint inserts a checkpoint and fills in its id.
func CreateCheckpoint(db *sql.DB, cp *models.Checkpoint) error {
	query := `INSERT INTO checkpoints (number, label, start_date, end_date) VALUES ($1, $2, $3, $4) RETURNING id`
	return db.QueryRow(query, cp.Number, cp.Label, cp.StartDate, cp.EndDate).Scan(&cp.ID)
}

// UpdateCheckpoint updates a checkpoint's label and dates, addressed by number.
func UpdateCheckpoint(db *sql.DB, cp *models.Checkpoint) error {
	query := `UPDATE checkpoints SET label = $1, start_date = $2, end_date = $3 WHERE number = $4`
	res, err := db.Exec(query, cp.Label, cp.StartDate, cp.EndDate, cp.Number)
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

// DeleteCheckpointByNumber deletes a checkpoint. The delete fails with a
// foreign key violation while requirements still reference the checkpoint.
func DeleteCheckpointByNumber(db *sql.DB, number int) error {
	res, err := db.Exec(`DELETE FROM checkpoints WHERE number = $1`, number)
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

// GetCategories returns all categories ordered by id.
func GetCategories(db *sql.DB) ([]models.Category, error) {
	query := `SELECT id, key, name, color, unit FROM categories ORDER BY id ASC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Key, &c.Name, &c.Color, &c.Unit); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// GetCategoryByKey looks up one category by its enum key.
func GetCategoryByKey(db *sql.DB, key string) (*models.Category, error) {
	c := &models.Category{}
	query := `SELECT id, key, name, color, unit FROM categories WHERE key = $1`
	err := db.QueryRow(query, key).Scan(&c.ID, &c.Key, &c.Name, &c.Color, &c.Unit)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetRequirementSet loads all thresholds for one checkpoint keyed by
// (classType, categoryId). Missing entries default to 0 at lookup time.
func GetRequirementSet(db *sql.DB, checkpointID int) (models.RequirementSet, error) {
	query := `SELECT class_type, category_id, required FROM requirements WHERE checkpoint_id = $1`
	rows, err := db.Query(query, checkpointID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	set := models.RequirementSet{}
	for rows.Next() {
		var ct models.ClassType
		var categoryID, required int
		if err := rows.Scan(&ct, &categoryID, &required); err != nil {
			return nil, err
		}
		set[models.RequirementKey{ClassType: ct, CategoryID: categoryID}] = required
	}
	return set, rows.Err()
}

// GetRequirements returns every threshold row across all checkpoints.
func GetRequirements(db *sql.DB) ([]models.Requirement, error) {
	query := `SELECT id, class_type, category_id, checkpoint_id, required FROM requirements ORDER BY checkpoint_id, category_id, class_type`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []models.Requirement
	for rows.Next() {
		var r models.Requirement
		if err := rows.Scan(&r.ID, &r.ClassType, &r.CategoryID, &r.CheckpointID, &r.Required); err != nil {
			return nil, err
		}
		reqs = append(reqs, r)
	}
	return reqs, rows.Err()
}

// UpsertRequirements writes a batch of thresholds in one transaction,
// inserting new cells and overwriting existing ones.
func UpsertRequirements(db *sql.DB, updates []models.Requirement) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO requirements (class_type, category_id, checkpoint_id, required)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (class_type, category_id, checkpoint_id) DO UPDATE SET required = EXCLUDED.required`
	for _, u := range updates {
		if _, err := tx.Exec(query, u.ClassType, u.CategoryID, u.CheckpointID, u.Required); err != nil {
			return err
		}
	}
	return tx.Commit()
}
