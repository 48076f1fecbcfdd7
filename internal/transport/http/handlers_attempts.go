package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	pkgerrors "credlock/pkg/errors"
)

//go:generate mockgen -source=handlers_attempts.go -destination=mocks/attempts_mocks.go -package=mocks AttemptsService

// AttemptsService records and clears login-failure counters. The
// authentication flow calls these endpoints; lockout decisions happen
// downstream of the emitted change events.
type AttemptsService interface {
	RecordFailure(ctx context.Context, identity string) error
	Clear(ctx context.Context, identity string) error
}

type AttemptsHandler struct {
	service AttemptsService
	logger  *slog.Logger
}

func NewAttemptsHandler(service AttemptsService, logger *slog.Logger) *AttemptsHandler {
	return &AttemptsHandler{service: service, logger: logger}
}

func (h *AttemptsHandler) Register(r chi.Router) {
	r.Post("/attempts/{identity}/failures", h.handleRecordFailure)
	r.Delete("/attempts/{identity}", h.handleClear)
}

func (h *AttemptsHandler) handleRecordFailure(w http.ResponseWriter, r *http.Request) {
	identity := chi.URLParam(r, "identity")
	if err := h.service.RecordFailure(r.Context(), identity); err != nil {
		if pkgerrors.CodeOf(err) != pkgerrors.CodeInvalidArgument {
			h.logger.ErrorContext(r.Context(), "record failure", "identity", identity, "error", err)
		}
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *AttemptsHandler) handleClear(w http.ResponseWriter, r *http.Request) {
	identity := chi.URLParam(r, "identity")
	if err := h.service.Clear(r.Context(), identity); err != nil {
		if pkgerrors.CodeOf(err) != pkgerrors.CodeInvalidArgument {
			h.logger.ErrorContext(r.Context(), "clear attempts", "identity", identity, "error", err)
		}
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
