package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if it does not exist yet. Every
// statement is idempotent so this is safe to run on startup.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS teams (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			role TEXT NOT NULL CHECK (role IN ('BRO', 'ADMIN')),
			class_type TEXT NOT NULL CHECK (class_type IN ('NON_GRAD', 'SENIOR')),
			team_id INTEGER REFERENCES teams(id),
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY,
			token_hash TEXT NOT NULL UNIQUE,
			user_id INTEGER NOT NULL REFERENCES users(id),
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			key TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			color TEXT NOT NULL,
			unit TEXT NOT NULL DEFAULT 'EVENT_COUNT' CHECK (unit IN ('EVENT_COUNT', 'SERVICE_HOURS'))
		)`,
		`CREATE TABLE IF NOT EXISTS checkpoints (
			id SERIAL PRIMARY KEY,
			number INTEGER NOT NULL UNIQUE,
			label TEXT NOT NULL,
			start_date TIMESTAMPTZ NOT NULL,
			end_date TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS requirements (
			id SERIAL PRIMARY KEY,
			class_type TEXT NOT NULL CHECK (class_type IN ('NON_GRAD', 'SENIOR')),
			category_id INTEGER NOT NULL REFERENCES categories(id),
			checkpoint_id INTEGER NOT NULL REFERENCES checkpoints(id),
			required INTEGER NOT NULL CHECK (required >= 0),
			UNIQUE (class_type, category_id, checkpoint_id)
		)`,
		`CREATE TABLE IF NOT EXISTS events (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			starts_at TIMESTAMPTZ NOT NULL,
			category_id INTEGER NOT NULL REFERENCES categories(id),
			mandatory BOOLEAN NOT NULL DEFAULT false,
			service_hours INTEGER,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS attendance (
			event_id INTEGER NOT NULL REFERENCES events(id),
			user_id INTEGER NOT NULL REFERENCES users(id),
			present BOOLEAN NOT NULL DEFAULT true,
			PRIMARY KEY (event_id, user_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_events_starts_at ON events (starts_at)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_user ON attendance (user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions (user_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
