package state

import (
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/llehouerou/miniplayer/internal/db"
)

// Constraint is the persisted layout of one view within a layout endpoint.
// Values are in device pixels.
type Constraint struct {
	ViewID       string
	Width        float64
	Height       float64
	MarginStart  float64
	MarginTop    float64
	TranslationX float64
	TranslationY float64
}

// ConstraintSet holds the constraints of one endpoint keyed by view id.
type ConstraintSet map[string]Constraint

// Get returns the constraint for viewID.
func (s ConstraintSet) Get(viewID string) (Constraint, bool) {
	c, ok := s[viewID]
	return c, ok
}

// ErrEmptyViewID is returned when a constraint has no view id.
var ErrEmptyViewID = errors.New("constraint has no view id")

// ConstraintSet returns every stored constraint for endpointID. An endpoint
// with nothing stored yields an empty set.
func (m *Manager) ConstraintSet(endpointID string) (ConstraintSet, error) {
	return getConstraintSet(m.db, endpointID)
}

// SaveConstraint writes c into the endpoint's set, replacing any previous
// constraint for the same view.
func (m *Manager) SaveConstraint(endpointID string, c Constraint) error {
	if c.ViewID == "" {
		return ErrEmptyViewID
	}
	return dbutil.WithTx(m.db, func(tx *sql.Tx) error {
		return saveConstraint(tx, endpointID, c)
	})
}

func getConstraintSet(db *sql.DB, endpointID string) (ConstraintSet, error) {
	rows, err := db.Query(`
		SELECT view_id, width, height, margin_start, margin_top, translation_x, translation_y
		FROM view_constraints
		WHERE endpoint_id = ?
		ORDER BY view_id
	`, endpointID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	set := ConstraintSet{}
	for rows.Next() {
		var c Constraint
		if err := rows.Scan(&c.ViewID, &c.Width, &c.Height, &c.MarginStart, &c.MarginTop,
			&c.TranslationX, &c.TranslationY); err != nil {
			return nil, err
		}
		set[c.ViewID] = c
	}
	return set, rows.Err()
}

func saveConstraint(tx *sql.Tx, endpointID string, c Constraint) error {
	_, err := tx.Exec(`
		INSERT INTO view_constraints (endpoint_id, view_id, width, height, margin_start, margin_top,
		                              translation_x, translation_y, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(endpoint_id, view_id) DO UPDATE SET
			width = excluded.width,
			height = excluded.height,
			margin_start = excluded.margin_start,
			margin_top = excluded.margin_top,
			translation_x = excluded.translation_x,
			translation_y = excluded.translation_y,
			updated_at = excluded.updated_at
	`, endpointID, c.ViewID, c.Width, c.Height, c.MarginStart, c.MarginTop,
		c.TranslationX, c.TranslationY, time.Now().Unix())
	return err
}
