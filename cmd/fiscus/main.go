package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stripe/stripe-go/v78/client"

	"github.com/fiscus-app/fiscus/internal/anaf"
	"github.com/fiscus-app/fiscus/internal/app"
	"github.com/fiscus-app/fiscus/internal/auth"
	"github.com/fiscus-app/fiscus/internal/billing"
	"github.com/fiscus-app/fiscus/internal/notify"
	"github.com/fiscus-app/fiscus/internal/tax"
	"github.com/fiscus-app/fiscus/report"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	issuer, err := auth.NewIssuer(cfg.SecretKey, cfg.TokenTTL)
	if err != nil {
		logger.Error("configure token issuer", slog.Any("error", err))
		os.Exit(1)
	}
	authService := auth.NewService(auth.NewStore(), issuer)
	authHandler := auth.NewHandler(logger, authService, issuer)

	taxHandler := tax.NewHandler()

	if err := os.MkdirAll(cfg.PDFDir, 0o755); err != nil {
		logger.Error("create pdf output dir", slog.Any("error", err))
		os.Exit(1)
	}
	reportClient := report.NewClient(cfg.GotenbergURL, 0)
	reportHandler := report.NewHandler(logger, reportClient, cfg.PDFDir)

	anafClient := anaf.NewClient(cfg.AnafAPIURL, cfg.UpstreamTimeout)
	anafHandler := anaf.NewHandler(logger, anafClient)

	stripeClient := &client.API{}
	stripeClient.Init(cfg.StripeSecretKey, nil)
	billingService := billing.NewService(stripeClient.CheckoutSessions, cfg.AppDomain)
	billingHandler := billing.NewHandler(logger, billingService)

	dispatcher := notify.NewDispatcher(notify.Endpoints{
		Email:    cfg.EmailAPIURL,
		SMS:      cfg.SMSAPIURL,
		WhatsApp: cfg.WhatsAppAPIURL,
	}, cfg.UpstreamTimeout)
	notifyHandler := notify.NewHandler(logger, dispatcher)

	router := app.NewRouter(app.RouterParams{
		Logger:         logger,
		Config:         cfg,
		AuthHandler:    authHandler,
		TaxHandler:     taxHandler,
		ReportHandler:  reportHandler,
		AnafHandler:    anafHandler,
		BillingHandler: billingHandler,
		NotifyHandler:  notifyHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
