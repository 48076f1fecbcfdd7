package httptransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"credlock/internal/lockout/models"
	pkgerrors "credlock/pkg/errors"
)

//go:generate mockgen -source=handlers_reactivate.go -destination=mocks/reactivation_mocks.go -package=mocks ReactivationService

// ReactivationService is the synchronous administrative operation that
// re-enables a disabled account.
type ReactivationService interface {
	Reactivate(ctx context.Context, req models.ReactivationRequest) (*models.ReactivationResult, error)
}

type ReactivationHandler struct {
	service ReactivationService
	logger  *slog.Logger
}

func NewReactivationHandler(service ReactivationService, logger *slog.Logger) *ReactivationHandler {
	return &ReactivationHandler{service: service, logger: logger}
}

func (h *ReactivationHandler) Register(r chi.Router) {
	r.Post("/accounts/reactivate", h.handleReactivate)
}

func (h *ReactivationHandler) handleReactivate(w http.ResponseWriter, r *http.Request) {
	var req models.ReactivationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, pkgerrors.New(pkgerrors.CodeInvalidArgument, "invalid request body"))
		return
	}

	result, err := h.service.Reactivate(r.Context(), req)
	if err != nil {
		if code := pkgerrors.CodeOf(err); code == pkgerrors.CodeUnavailable || code == pkgerrors.CodeInternal {
			h.logger.ErrorContext(r.Context(), "reactivation failed", "error", err)
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
