package anaf

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fiscus-app/fiscus/internal/platform/httpx"
)

// Submitter forwards a payload to the tax authority.
type Submitter interface {
	Submit(ctx context.Context, payload []byte) (*Result, error)
}

// Handler exposes the ANAF submission endpoint.
type Handler struct {
	logger *slog.Logger
	client Submitter
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, client Submitter) *Handler {
	return &Handler{logger: logger, client: client}
}

// MountRoutes registers submission routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/submit_anaf", h.handleSubmit)
}

const maxPayloadBytes = 1 << 20

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	if !json.Valid(payload) {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}

	result, err := h.client.Submit(r.Context(), payload)
	if err != nil {
		h.logger.Error("anaf submission", slog.Any("error", err))
		httpx.JSON(w, http.StatusBadGateway, map[string]string{
			"error": "error connecting to ANAF",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(result.Status)
	_, _ = w.Write(result.Body)
}
