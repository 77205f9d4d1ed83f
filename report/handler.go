package report

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/fiscus-app/fiscus/internal/platform/httpx"
)

// Engine renders HTML to PDF.
type Engine interface {
	Ping(ctx context.Context) error
	RenderHTML(ctx context.Context, html string) ([]byte, error)
}

// Handler manages declaration PDF endpoints.
type Handler struct {
	logger    *slog.Logger
	engine    Engine
	outputDir string
	validator *validator.Validate
}

// NewHandler creates a report handler. Generated documents land in outputDir.
func NewHandler(logger *slog.Logger, engine Engine, outputDir string) *Handler {
	return &Handler{
		logger:    logger,
		engine:    engine,
		outputDir: outputDir,
		validator: validator.New(),
	}
}

// MountRoutes registers report routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/generate_pdf", h.handleGenerate)
	r.Get("/report/ping", h.handlePing)
}

type generateRequest struct {
	CompanyName string  `json:"denumire_firma" validate:"required"`
	TaxID       string  `json:"cnp_cui" validate:"required"`
	VATAmount   float64 `json:"suma_tva" validate:"gte=0"`
}

func (h *Handler) handlePing(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.Ping(r.Context()); err != nil {
		h.logger.Warn("gotenberg ping failed", slog.Any("error", err))
		httpx.Problem(w, http.StatusServiceUnavailable, "PDF Engine Unavailable", "")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, fmt.Errorf("decode body: %w", httpx.ErrValidation))
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%s: %w", err.Error(), httpx.ErrValidation))
		return
	}

	decl := Declaration{
		CompanyName: req.CompanyName,
		TaxID:       req.TaxID,
		VATAmount:   req.VATAmount,
	}
	html, err := decl.HTML()
	if err != nil {
		h.logger.Error("render declaration html", slog.Any("error", err))
		h.respondGenerationFailed(w)
		return
	}

	pdf, err := h.engine.RenderHTML(r.Context(), html)
	if err != nil {
		h.logger.Error("render declaration pdf", slog.Any("error", err))
		h.respondGenerationFailed(w)
		return
	}

	filename := fmt.Sprintf("tax_declaration_%s.pdf", uuid.NewString())
	if err := os.WriteFile(filepath.Join(h.outputDir, filename), pdf, 0o644); err != nil {
		h.logger.Error("write declaration pdf", slog.Any("error", err))
		h.respondGenerationFailed(w)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]string{
		"msg":      "PDF successfully generated",
		"filename": filename,
	})
}

// Failure detail stays in the server log; callers get a generic message.
func (h *Handler) respondGenerationFailed(w http.ResponseWriter) {
	httpx.Problem(w, http.StatusInternalServerError, "PDF Generation Failed", "")
}
