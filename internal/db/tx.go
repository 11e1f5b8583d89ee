// Package db holds the sqlite helpers shared by the state store.
package db

import (
	"database/sql"
	"errors"
	"fmt"
)

// WithTx runs fn in a transaction on db. The transaction commits when fn
// returns nil. Otherwise it rolls back and fn's error is returned, joined
// with the rollback error if that failed too.
func WithTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
