package state

import (
	"database/sql"
	"errors"
	"time"
)

// getPlayerState returns the saved endpoint id, or "" on first run.
func getPlayerState(db *sql.DB) (string, error) {
	var endpointID string
	err := db.QueryRow(`SELECT endpoint_id FROM player_state WHERE id = 1`).Scan(&endpointID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return endpointID, nil
}

func savePlayerState(db *sql.DB, endpointID string) error {
	_, err := db.Exec(`
		INSERT INTO player_state (id, endpoint_id, updated_at)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			endpoint_id = excluded.endpoint_id,
			updated_at = excluded.updated_at
	`, endpointID, time.Now().Unix())
	return err
}
