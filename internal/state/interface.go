// internal/state/interface.go
package state

import (
	"database/sql"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	DB() *sql.DB
	SavePlayerState(endpointID string)
	GetPlayerState() (string, error)
	ConstraintSet(endpointID string) (ConstraintSet, error)
	SaveConstraint(endpointID string, c Constraint) error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
