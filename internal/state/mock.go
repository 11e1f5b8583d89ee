// internal/state/mock.go
package state

import (
	"database/sql"
)

// Mock is a test double for Manager.
type Mock struct {
	playerState string
	constraints map[string]ConstraintSet
	saveErr     error
	saves       int
	closed      bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{constraints: make(map[string]ConstraintSet)}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) SavePlayerState(endpointID string) {
	m.playerState = endpointID
}

func (m *Mock) GetPlayerState() (string, error) {
	return m.playerState, nil
}

func (m *Mock) ConstraintSet(endpointID string) (ConstraintSet, error) {
	set := ConstraintSet{}
	for k, v := range m.constraints[endpointID] {
		set[k] = v
	}
	return set, nil
}

func (m *Mock) SaveConstraint(endpointID string, c Constraint) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	if c.ViewID == "" {
		return ErrEmptyViewID
	}
	if m.constraints[endpointID] == nil {
		m.constraints[endpointID] = ConstraintSet{}
	}
	m.constraints[endpointID][c.ViewID] = c
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetSaveError(err error) { m.saveErr = err }

func (m *Mock) SaveCount() int { return m.saves }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
