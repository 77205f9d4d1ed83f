package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/fiscus-app/fiscus/internal/platform/httpx"
)

// Sender dispatches a message across all channels.
type Sender interface {
	Dispatch(ctx context.Context, email, phone, message string) []ChannelResult
}

// Handler exposes the notification endpoint.
type Handler struct {
	logger     *slog.Logger
	dispatcher Sender
	validator  *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, dispatcher Sender) *Handler {
	return &Handler{logger: logger, dispatcher: dispatcher, validator: validator.New()}
}

// MountRoutes registers notification routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/send_notification", h.handleSend)
}

type notificationRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Message string `json:"message" validate:"required"`
}

func (h *Handler) handleSend(w http.ResponseWriter, r *http.Request) {
	var req notificationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, fmt.Errorf("decode body: %w", httpx.ErrValidation))
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%s: %w", err.Error(), httpx.ErrValidation))
		return
	}

	results := h.dispatcher.Dispatch(r.Context(), req.Email, req.Phone, req.Message)

	var failed []string
	for _, result := range results {
		if result.Err != nil {
			h.logger.Error("notification channel failed",
				slog.String("channel", result.Channel),
				slog.Any("error", result.Err))
			failed = append(failed, result.Channel)
		}
	}
	if len(failed) > 0 {
		httpx.JSON(w, http.StatusBadGateway, map[string]string{
			"error": fmt.Sprintf("error sending notification on: %s", strings.Join(failed, ", ")),
		})
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"msg": "notification sent successfully"})
}
