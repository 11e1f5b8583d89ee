package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS player_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			endpoint_id TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS view_constraints (
			endpoint_id TEXT NOT NULL,
			view_id TEXT NOT NULL,
			width REAL NOT NULL,
			height REAL NOT NULL,
			margin_start REAL NOT NULL DEFAULT 0,
			margin_top REAL NOT NULL DEFAULT 0,
			translation_x REAL NOT NULL DEFAULT 0,
			translation_y REAL NOT NULL DEFAULT 0,
			updated_at INTEGER NOT NULL,
			PRIMARY KEY (endpoint_id, view_id)
		);

		CREATE INDEX IF NOT EXISTS idx_view_constraints_endpoint ON view_constraints(endpoint_id);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
