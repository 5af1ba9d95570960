// Package lifecycle governs the application status state machine and its
// notification side effect.
package lifecycle

import "fmt"

// ErrInvalidStatus indicates a transition was requested with an
// unrecognized status value. The stored status is unchanged.
type ErrInvalidStatus struct {
	Status string
}

func (e *ErrInvalidStatus) Error() string {
	return fmt.Sprintf("invalid status: %q (must be pending, reviewed, shortlisted, rejected, or hired)", e.Status)
}

// ErrPersistenceFailure indicates the store could not record the new
// status. The transition is aborted and no notification is sent.
type ErrPersistenceFailure struct {
	Err error
}

func (e *ErrPersistenceFailure) Error() string {
	return fmt.Sprintf("failed to persist status change: %v", e.Err)
}

func (e *ErrPersistenceFailure) Unwrap() error { return e.Err }
