package audit

import (
	"context"
	"time"
)

// Event is emitted from domain logic to capture security-relevant actions.
// Keep it transport-agnostic so stores and sinks can fan out.
type Event struct {
	ID        string
	Timestamp time.Time
	Actor     string
	Subject   string
	Action    string
	Detail    string
}

// Actions emitted by the lockout services.
const (
	ActionLockoutApplied       = "lockout_applied"
	ActionLockoutTargetMissing = "lockout_target_missing"
	ActionAccountReactivated   = "account_reactivated"
	ActionReactivationNoop     = "reactivation_noop"
)

// Store is an append-only audit sink.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListBySubject(ctx context.Context, subject string) ([]Event, error)
}
