package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/fiscus-app/fiscus/internal/anaf"
	"github.com/fiscus-app/fiscus/internal/auth"
	"github.com/fiscus-app/fiscus/internal/billing"
	"github.com/fiscus-app/fiscus/internal/notify"
	"github.com/fiscus-app/fiscus/internal/tax"
	"github.com/fiscus-app/fiscus/report"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger         *slog.Logger
	Config         *Config
	AuthHandler    *auth.Handler
	TaxHandler     *tax.Handler
	ReportHandler  *report.Handler
	AnafHandler    *anaf.Handler
	BillingHandler *billing.Handler
	NotifyHandler  *notify.Handler
}

// NewRouter constructs the chi.Router with fiscus defaults. Every endpoint is
// a stateless request/response handler mounted at the root.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	params.AuthHandler.MountRoutes(r)
	params.TaxHandler.MountRoutes(r)
	params.ReportHandler.MountRoutes(r)
	params.AnafHandler.MountRoutes(r)
	params.BillingHandler.MountRoutes(r)
	params.NotifyHandler.MountRoutes(r)

	return r
}
