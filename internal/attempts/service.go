package attempts

import (
	"context"
	"errors"
	"log/slog"

	"credlock/internal/lockout/models"
	pkgerrors "credlock/pkg/errors"
)

// Service couples the counter store with event emission so every counter
// mutation produces exactly one change notification.
type Service struct {
	store    Store
	notifier Notifier
	logger   *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func New(store Store, notifier Notifier, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("attempt store is required")
	}
	if notifier == nil {
		return nil, errors.New("notifier is required")
	}

	s := &Service{store: store, notifier: notifier, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// RecordFailure increments the identity's failure counter and emits the
// before/after change event.
func (s *Service) RecordFailure(ctx context.Context, identity string) error {
	if identity == "" {
		return pkgerrors.New(pkgerrors.CodeInvalidArgument, "identity is required")
	}

	before, after, err := s.store.RecordFailure(ctx, identity)
	if err != nil {
		return pkgerrors.Wrap(err, pkgerrors.CodeUnavailable, "record login failure")
	}

	event := models.AttemptChangeEvent{
		Identity:    identity,
		BeforeCount: before,
		AfterCount:  &after,
	}
	if err := s.notifier.Notify(ctx, event); err != nil {
		return pkgerrors.Wrap(err, pkgerrors.CodeUnavailable, "publish attempt change")
	}

	s.logger.DebugContext(ctx, "recorded login failure",
		"identity", identity, "before_count", before, "after_count", after)
	return nil
}

// Clear removes the identity's counter, emitting a deletion event when a
// record existed. The deletion event never re-enables an account; only the
// reactivation path does that.
func (s *Service) Clear(ctx context.Context, identity string) error {
	if identity == "" {
		return pkgerrors.New(pkgerrors.CodeInvalidArgument, "identity is required")
	}

	before, existed, err := s.store.Clear(ctx, identity)
	if err != nil {
		return pkgerrors.Wrap(err, pkgerrors.CodeUnavailable, "clear login failures")
	}
	if !existed {
		return nil
	}

	event := models.AttemptChangeEvent{
		Identity:    identity,
		BeforeCount: before,
		AfterCount:  nil,
	}
	if err := s.notifier.Notify(ctx, event); err != nil {
		return pkgerrors.Wrap(err, pkgerrors.CodeUnavailable, "publish attempt change")
	}

	s.logger.DebugContext(ctx, "cleared login failures",
		"identity", identity, "before_count", before)
	return nil
}
