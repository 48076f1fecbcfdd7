// Package ports defines shared interfaces for the lockout module.
// Interfaces are placed here when consumed by multiple services to avoid
// duplication; implementations live under internal/directory and
// internal/attempts.
package ports

import (
	"context"
	"log/slog"

	"credlock/internal/lockout/models"
	"credlock/pkg/audit"
)

//go:generate mockgen -source=ports.go -destination=mocks/ports_mocks.go -package=mocks Profiles,Directory,AuditPublisher

// Profiles maps a human-facing identity key to the email the directory is
// keyed on. Lookups return sentinel.ErrNotFound for unknown identities.
type Profiles interface {
	EmailByUsername(ctx context.Context, username string) (string, error)
}

// Directory is the identity directory holding the authoritative
// enabled/disabled flag. FindByEmail returns sentinel.ErrNotFound for unknown
// emails; infrastructure failures wrap sentinel.ErrUnavailable.
type Directory interface {
	FindByEmail(ctx context.Context, email string) (*models.DirectoryAccount, error)

	// SetDisabled toggles the disabled flag for a directory account. Callers
	// re-read the current flag immediately before invoking it; the
	// implementation performs a single conditional update.
	SetDisabled(ctx context.Context, uid string, disabled bool) error
}

// AuditPublisher emits audit events for security-relevant operations.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// LogAudit is a shared helper for recording audited actions across lockout
// services. It writes the structured log line and emits to the audit
// publisher if one is configured.
func LogAudit(ctx context.Context, logger *slog.Logger, publisher AuditPublisher, event audit.Event, attrs ...any) {
	args := append(attrs, "event", event.Action, "subject", event.Subject, "log_type", "audit")
	if logger != nil {
		logger.InfoContext(ctx, event.Action, args...)
	}
	if publisher == nil {
		return
	}
	if err := publisher.Emit(ctx, event); err != nil && logger != nil {
		logger.WarnContext(ctx, "failed to emit audit event", "event", event.Action, "error", err)
	}
}
