package billing

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/fiscus-app/fiscus/internal/platform/httpx"
)

// Handler exposes the subscription checkout endpoint.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers billing routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/subscribe", h.handleSubscribe)
}

type subscribeRequest struct {
	// Unknown plans are priced as basic rather than rejected.
	UserID string `json:"user_id" validate:"required"`
	Plan   string `json:"plan" validate:"required"`
}

func (h *Handler) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, fmt.Errorf("decode body: %w", httpx.ErrValidation))
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%s: %w", err.Error(), httpx.ErrValidation))
		return
	}

	sessionID, err := h.service.Checkout(r.Context(), req.UserID, req.Plan)
	if err != nil {
		h.logger.Error("create checkout session",
			slog.String("user_id", req.UserID),
			slog.String("plan", req.Plan),
			slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"session_id": sessionID})
}
