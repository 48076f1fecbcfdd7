// Package engine implements the lockout decision engine: it consumes
// login-attempt change events and decides, idempotently, whether an
// identity's credentials must be disabled in the directory.
package engine

import (
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"credlock/internal/lockout/metrics"
	"credlock/internal/lockout/models"
	"credlock/internal/lockout/ports"
	"credlock/internal/platform/config"
)

// Engine evaluates attempt-change events against the failure threshold and
// drives the directory mutation with a read-before-write guard. It holds no
// state across invocations; every decision re-reads the current disabled flag.
type Engine struct {
	profiles  ports.Profiles
	directory ports.Directory

	threshold int
	logger    *slog.Logger
	publisher ports.AuditPublisher
	metrics   *metrics.Metrics
	tracer    trace.Tracer
}

type Option func(*Engine)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

func WithAuditPublisher(publisher ports.AuditPublisher) Option {
	return func(e *Engine) {
		e.publisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithThreshold overrides the failure count at which lockout triggers.
// Values below 1 are ignored.
func WithThreshold(threshold int) Option {
	return func(e *Engine) {
		if threshold >= 1 {
			e.threshold = threshold
		}
	}
}

func New(profiles ports.Profiles, directory ports.Directory, opts ...Option) (*Engine, error) {
	if profiles == nil {
		return nil, errors.New("profiles store is required")
	}
	if directory == nil {
		return nil, errors.New("directory client is required")
	}

	e := &Engine{
		profiles:  profiles,
		directory: directory,
		threshold: config.DefaultFailureThreshold,
		logger:    slog.Default(),
		tracer:    otel.Tracer("credlock/engine"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Evaluate applies the threshold rule to an event. Pure; no I/O.
func (e *Engine) Evaluate(event models.AttemptChangeEvent) models.Action {
	if event.Deleted() {
		// Counter removal is the upstream reset path, never a lock trigger.
		return models.ActionNone
	}
	if event.After() < e.threshold {
		return models.ActionNone
	}
	return models.ActionDisable
}
