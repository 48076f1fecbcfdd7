package models

import "fmt"

// Action is the outcome of evaluating an attempt-change event.
type Action string

const (
	// ActionNone means no directory mutation is required.
	ActionNone Action = "none"
	// ActionDisable means the identity's credentials must be disabled.
	ActionDisable Action = "disable"
)

// AttemptChangeEvent is the before/after snapshot pair delivered for every
// mutation of a login-attempt counter. Delivery is at-least-once with no
// ordering guarantee across identities; consumers must be idempotent.
type AttemptChangeEvent struct {
	// Identity is the account key (username) the counter belongs to.
	Identity string
	// BeforeCount is the failure count before the write, 0 if the record
	// did not previously exist.
	BeforeCount int
	// AfterCount is the failure count after the write, nil if the record
	// was deleted.
	AfterCount *int
}

// Deleted reports whether the underlying attempt record was removed.
func (e AttemptChangeEvent) Deleted() bool { return e.AfterCount == nil }

// After returns the post-write count, 0 when the record was deleted.
func (e AttemptChangeEvent) After() int {
	if e.AfterCount == nil {
		return 0
	}
	return *e.AfterCount
}

func (e AttemptChangeEvent) String() string {
	if e.AfterCount == nil {
		return fmt.Sprintf("%s: %d -> deleted", e.Identity, e.BeforeCount)
	}
	return fmt.Sprintf("%s: %d -> %d", e.Identity, e.BeforeCount, *e.AfterCount)
}

// DirectoryAccount is the directory's view of an authentication record.
// Owned by the identity directory; this service only reads it and requests
// disabled-flag toggles. Never cached across invocations.
type DirectoryAccount struct {
	UID      string
	Email    string
	Username string
	Disabled bool
}
