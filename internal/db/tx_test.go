package db

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openConstraints(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE view_constraints (
		endpoint_id TEXT NOT NULL,
		view_id TEXT NOT NULL,
		translation_x REAL NOT NULL,
		PRIMARY KEY (endpoint_id, view_id)
	)`)
	require.NoError(t, err)
	return db
}

func translationX(t *testing.T, db *sql.DB, viewID string) (float64, bool) {
	t.Helper()
	var x float64
	err := db.QueryRow(`SELECT translation_x FROM view_constraints WHERE endpoint_id = 'mini' AND view_id = ?`,
		viewID).Scan(&x)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false
	}
	require.NoError(t, err)
	return x, true
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	db := openConstraints(t)

	err := WithTx(db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO view_constraints VALUES ('mini', 'player', 42)`)
		return err
	})
	require.NoError(t, err)

	x, ok := translationX(t, db, "player")
	require.True(t, ok)
	assert.InDelta(t, 42, x, 1e-9)
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	db := openConstraints(t)
	_, err := db.Exec(`INSERT INTO view_constraints VALUES ('mini', 'player', 10)`)
	require.NoError(t, err)

	abort := errors.New("drag cancelled")
	err = WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`UPDATE view_constraints SET translation_x = 99 WHERE view_id = 'player'`); err != nil {
			return err
		}
		if _, err := tx.Exec(`INSERT INTO view_constraints VALUES ('mini', 'cover', 5)`); err != nil {
			return err
		}
		return abort
	})
	require.ErrorIs(t, err, abort)

	x, ok := translationX(t, db, "player")
	require.True(t, ok)
	assert.InDelta(t, 10, x, 1e-9, "update rolled back")
	_, ok = translationX(t, db, "cover")
	assert.False(t, ok, "insert rolled back")
}

func TestWithTx_StatementErrorIsReturned(t *testing.T) {
	db := openConstraints(t)

	err := WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO view_constraints VALUES ('mini', 'player', 1)`); err != nil {
			return err
		}
		_, err := tx.Exec(`INSERT INTO view_constraints VALUES ('mini', 'player', 2)`)
		return err
	})
	require.Error(t, err, "duplicate primary key")

	_, ok := translationX(t, db, "player")
	assert.False(t, ok)
}

func TestWithTx_BeginFailsOnClosedDB(t *testing.T) {
	db := openConstraints(t)
	require.NoError(t, db.Close())

	called := false
	err := WithTx(db, func(*sql.Tx) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "begin")
	assert.False(t, called)
}
