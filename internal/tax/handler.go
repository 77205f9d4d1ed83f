package tax

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/fiscus-app/fiscus/internal/platform/httpx"
)

// Handler exposes the VAT calculation endpoint.
type Handler struct {
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler() *Handler {
	return &Handler{validator: validator.New()}
}

// MountRoutes registers tax routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/calculate_tva", h.handleCalculate)
}

type calculateRequest struct {
	Suma    float64 `json:"suma" validate:"gte=0"`
	CotaTVA float64 `json:"cota_tva" validate:"gte=0,lte=100"`
}

func (h *Handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, fmt.Errorf("decode body: %w", httpx.ErrValidation))
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%s: %w", err.Error(), httpx.ErrValidation))
		return
	}
	httpx.JSON(w, http.StatusOK, Calculate(req.Suma, req.CotaTVA))
}
