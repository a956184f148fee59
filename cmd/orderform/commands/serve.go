package commands

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application/services"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/infrastructure/persistence"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/infrastructure/upstream"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/interfaces/rest"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/interfaces/rest/handlers"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/interfaces/rest/middleware"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/worker"
)

const shutdownTimeout = 30 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the order form web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx)
		},
	}
}

func serve(ctx context.Context) error {
	logger.Info("starting order form",
		"env", cfg.Primary.Env,
		"port", cfg.Server.Port,
		"session_backend", cfg.Session.Backend,
	)

	backend, err := persistence.OpenSessionBackend(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer backend.Close()

	catalogue := upstream.NewCatalogueClient(upstream.NewClient("bapi", cfg.Upstream.CatalogueBaseURL, cfg.Upstream.Timeout, cfg.Retry, logger))
	organisations := upstream.NewOrganisationClient(upstream.NewClient("oapi", cfg.Upstream.OrganisationBaseURL, cfg.Upstream.Timeout, cfg.Retry, logger))
	orders := upstream.NewOrderClient(upstream.NewClient("ordapi", cfg.Upstream.OrderBaseURL, cfg.Upstream.Timeout, cfg.Retry, logger))

	resolver := services.NewOrganisationResolver(organisations)
	svc := handlers.Services{
		Dashboard:         services.NewDashboardService(orders, organisations, resolver),
		OrderingParty:     services.NewOrderingPartyService(orders, organisations, resolver),
		Supplier:          services.NewSupplierService(orders, catalogue),
		CommencementDate:  services.NewCommencementDateService(orders, nil),
		ServiceRecipients: services.NewServiceRecipientsService(orders, organisations, resolver),
		Items:             services.NewCatalogueItemService(orders, catalogue),
	}

	renderer, err := rest.NewRenderer()
	if err != nil {
		return err
	}
	errs := rest.NewErrorHandler(renderer, cfg.Auth.LoginURL, !cfg.Primary.IsProduction(), logger)

	router := handlers.NewRouter(handlers.NewHandlers(svc, renderer, errs), handlers.RouterConfig{
		Sessions: backend.Store,
		SessionOptions: middleware.SessionOptions{
			CookieName: cfg.Session.CookieName,
			TTL:        cfg.Session.TTL,
			Secure:     cfg.Session.Secure,
		},
		RequestTimeout: cfg.Server.RequestTimeout,
		Errors:         errs,
		Logger:         logger,
	})

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	if backend.Remover != nil {
		sweeper := worker.NewSessionSweeper(backend.Remover, cfg.Worker.Interval, cfg.Worker.BatchSize, logger)
		go sweeper.Start(workerCtx)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server...")
	cancelWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited")
	return nil
}
