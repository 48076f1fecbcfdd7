package engine

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"credlock/internal/lockout/models"
	"credlock/internal/lockout/ports"
	"credlock/pkg/audit"
	pkgerrors "credlock/pkg/errors"
	"credlock/pkg/sentinel"
)

// Decision outcome labels shared by logs and metrics.
const (
	outcomeNone            = "none"
	outcomeDisabled        = "disable"
	outcomeAlreadyDisabled = "already_disabled"
	outcomeTargetMissing   = "target_missing"
)

// Process evaluates an event and, when the threshold is crossed, disables the
// matching directory account. It is safe under duplicate delivery: the
// disabled flag is re-read immediately before mutating and an
// already-disabled account is a successful no-op.
//
// A nil return means the event is fully handled and must not be redelivered;
// that includes below-threshold events and identities with no directory
// record (a data-consistency problem upstream, not a transient fault). Only
// CodeUnavailable errors are returned, so the delivery mechanism can redeliver.
//
// Known race: a disable driven by a stale high count can land just after a
// concurrent reactivation. The guard narrows but does not close that window;
// the cost is one redundant conditional update, not a broken invariant.
func (e *Engine) Process(ctx context.Context, event models.AttemptChangeEvent) error {
	ctx, span := e.tracer.Start(ctx, "engine.Process")
	defer span.End()
	span.SetAttributes(
		attribute.String("identity", event.Identity),
		attribute.Int("before_count", event.BeforeCount),
		attribute.Int("after_count", event.After()),
	)

	start := time.Now()
	defer func() { e.metrics.ObserveProcessLatency(time.Since(start)) }()

	if action := e.Evaluate(event); action == models.ActionNone {
		e.metrics.IncrementDecision(outcomeNone)
		e.logger.DebugContext(ctx, "attempt change below threshold",
			"identity", event.Identity,
			"before_count", event.BeforeCount,
			"after_count", event.After(),
			"deleted", event.Deleted(),
			"action", outcomeNone,
		)
		return nil
	}

	email, err := e.profiles.EmailByUsername(ctx, event.Identity)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return e.targetMissing(ctx, event, "no profile maps to identity")
		}
		return pkgerrors.Wrap(err, pkgerrors.CodeUnavailable, "resolve identity profile")
	}

	// Fresh read of the disabled flag, as close to the mutation as possible.
	// This is the only guard against duplicate events and racing reactivations.
	account, err := e.directory.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return e.targetMissing(ctx, event, "no directory account for email")
		}
		return pkgerrors.Wrap(err, pkgerrors.CodeUnavailable, "look up directory account")
	}

	if account.Disabled {
		e.metrics.IncrementDecision(outcomeAlreadyDisabled)
		e.logger.InfoContext(ctx, "account already disabled",
			"identity", event.Identity,
			"uid", account.UID,
			"before_count", event.BeforeCount,
			"after_count", event.After(),
			"action", outcomeAlreadyDisabled,
		)
		return nil
	}

	if err := e.directory.SetDisabled(ctx, account.UID, true); err != nil {
		return pkgerrors.Wrap(err, pkgerrors.CodeUnavailable, "disable directory account")
	}

	e.metrics.IncrementDecision(outcomeDisabled)
	ports.LogAudit(ctx, e.logger, e.publisher, audit.Event{
		Actor:   "lockout-engine",
		Subject: event.Identity,
		Action:  audit.ActionLockoutApplied,
		Detail:  event.String(),
	},
		"identity", event.Identity,
		"uid", account.UID,
		"before_count", event.BeforeCount,
		"after_count", event.After(),
		"action", outcomeDisabled,
	)
	return nil
}

// targetMissing reports an identity with no directory mapping. Terminal:
// cannot lock what does not exist, and redelivery would not help unless the
// record appears, in which case the next counter write triggers again.
func (e *Engine) targetMissing(ctx context.Context, event models.AttemptChangeEvent, reason string) error {
	e.metrics.IncrementDecision(outcomeTargetMissing)
	e.logger.WarnContext(ctx, reason,
		"identity", event.Identity,
		"before_count", event.BeforeCount,
		"after_count", event.After(),
		"action", outcomeTargetMissing,
	)
	if e.publisher != nil {
		_ = e.publisher.Emit(ctx, audit.Event{
			Actor:   "lockout-engine",
			Subject: event.Identity,
			Action:  audit.ActionLockoutTargetMissing,
			Detail:  reason,
		})
	}
	return nil
}
