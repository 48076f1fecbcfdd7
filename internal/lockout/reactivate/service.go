// Package reactivate implements the administrative path that re-enables a
// disabled account. It is the only path that may flip the disabled flag back
// to false.
package reactivate

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"credlock/internal/lockout/metrics"
	"credlock/internal/lockout/models"
	"credlock/internal/lockout/ports"
	"credlock/pkg/audit"
	pkgerrors "credlock/pkg/errors"
	"credlock/pkg/sentinel"
)

type Service struct {
	directory ports.Directory

	logger    *slog.Logger
	publisher ports.AuditPublisher
	metrics   *metrics.Metrics
	tracer    trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher ports.AuditPublisher) Option {
	return func(s *Service) {
		s.publisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(directory ports.Directory, opts ...Option) (*Service, error) {
	if directory == nil {
		return nil, errors.New("directory client is required")
	}

	s := &Service{
		directory: directory,
		logger:    slog.Default(),
		tracer:    otel.Tracer("credlock/reactivate"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Reactivate re-enables the account registered under the request email. The
// mutation happens within this call; an already-enabled account is treated as
// satisfied and returns success without touching the directory.
func (s *Service) Reactivate(ctx context.Context, req models.ReactivationRequest) (*models.ReactivationResult, error) {
	ctx, span := s.tracer.Start(ctx, "reactivate.Reactivate")
	defer span.End()

	if req.Email == "" {
		s.metrics.IncrementReactivation("rejected")
		return nil, pkgerrors.New(pkgerrors.CodeInvalidArgument, "email is required")
	}
	span.SetAttributes(attribute.String("email", req.Email))

	account, err := s.directory.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.metrics.IncrementReactivation("rejected")
			return nil, pkgerrors.Wrap(err, pkgerrors.CodeNotFound, "no directory account for email")
		}
		return nil, pkgerrors.Wrap(err, pkgerrors.CodeUnavailable, "look up directory account")
	}

	if !account.Disabled {
		s.metrics.IncrementReactivation("noop")
		ports.LogAudit(ctx, s.logger, s.publisher, audit.Event{
			Actor:   "reactivation-handler",
			Subject: account.Username,
			Action:  audit.ActionReactivationNoop,
			Detail:  "account already enabled",
		},
			"uid", account.UID,
		)
		return &models.ReactivationResult{Success: true}, nil
	}

	if err := s.directory.SetDisabled(ctx, account.UID, false); err != nil {
		return nil, pkgerrors.Wrap(err, pkgerrors.CodeUnavailable, "enable directory account")
	}

	s.metrics.IncrementReactivation("enabled")
	ports.LogAudit(ctx, s.logger, s.publisher, audit.Event{
		Actor:   "reactivation-handler",
		Subject: account.Username,
		Action:  audit.ActionAccountReactivated,
	},
		"uid", account.UID,
	)
	return &models.ReactivationResult{Success: true}, nil
}
