package crud

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInitialized is returned when a controller is used before a
	// record service was attached.
	ErrNotInitialized = errors.New("record service not attached")

	// ErrSessionState is returned when a session operation is called in a
	// state that does not allow it.
	ErrSessionState = errors.New("invalid editor session state")

	// ErrNoDraft is returned by Commit when no draft was set.
	ErrNoDraft = errors.New("editor session has no draft")
)

// Record operations reported in PersistenceError
const (
	OpList   = "list"
	OpSave   = "save"
	OpRemove = "remove"
)

// LoadError reports that reference data for the editor could not be fetched
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load associated data: %v", e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// PersistenceError reports a record service call that was rejected
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s record: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func stateError(op string, state State) error {
	return fmt.Errorf("%w: %s in state %s", ErrSessionState, op, state)
}
