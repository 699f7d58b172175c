package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/elt-dashboard-api/infrastructure/integrator/hubspot"
	"github.com/vfg2006/elt-dashboard-api/internal/api/handler"
	"github.com/vfg2006/elt-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/elt-dashboard-api/internal/config"
	"github.com/vfg2006/elt-dashboard-api/internal/usecases/ingesting"
	"github.com/vfg2006/elt-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/elt-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/elt-dashboard-api/internal/usecases/syncing"
	"github.com/vfg2006/elt-dashboard-api/pkg/log"
	"github.com/vfg2006/elt-dashboard-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services are the use cases exposed over HTTP.
type Services struct {
	Reporter  reporting.Reporter
	Uploader  ingesting.Uploader
	Insighter insighting.Insighter
	HubSpot   hubspot.HubSpotIntegrator
	Syncer    syncing.CRMSyncer
	CRMSync   handler.CRMSyncJob
}

type Server struct {
	httpServer *http.Server
}

func New(cfg *config.Config, services Services) (*Server, error) {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

// NewHandler builds the routed handler wrapped in the global middlewares.
func NewHandler(cfg *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithBasePath(cfg.Server.BasePath),
		router.WithRoutes(handler.Healthcheck(cfg.App.Version)...),
		router.WithRoutes(handler.Data(services.Reporter)...),
		router.WithRoutes(handler.Upload(services.Uploader, cfg.Upload.MaxSizeBytes)...),
		router.WithRoutes(handler.Analysis(services.Insighter)...),
		router.WithRoutes(handler.HubSpot(services.HubSpot, services.Syncer)...),
		router.WithRoutes(handler.CronJobs(handler.CronJobServices{CRMSyncService: services.CRMSync})...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("interrupt signal received")
	case <-ctx.Done():
		log.L.Info("application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.WithField("timeout", shutdownTimeout.String()).Info("shutting down server")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("server shutdown failed")
		return err
	}

	log.L.Info("server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
