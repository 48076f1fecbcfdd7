// Package attempts is the adapter around the login-attempt counter store.
// The authentication flow calls it on every failed login; each mutation emits
// one before/after change event for the lockout engine. The engine itself
// never writes counters.
package attempts

import (
	"context"

	"credlock/internal/lockout/models"
)

// Store persists per-identity failure counters.
type Store interface {
	// RecordFailure increments the counter and returns the before/after pair.
	RecordFailure(ctx context.Context, identity string) (before, after int, err error)

	// Clear deletes the counter, returning the prior count and whether a
	// record existed.
	Clear(ctx context.Context, identity string) (before int, existed bool, err error)
}

// Notifier delivers attempt-change events to the decision engine, either
// through the event bus or in process.
type Notifier interface {
	Notify(ctx context.Context, event models.AttemptChangeEvent) error
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, event models.AttemptChangeEvent) error

func (f NotifierFunc) Notify(ctx context.Context, event models.AttemptChangeEvent) error {
	return f(ctx, event)
}
