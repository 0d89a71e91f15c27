// Package app assembles the application: database, eventbus, modules,
// metrics endpoint, and the scorer-facing HTTP API.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/sandlot-league/scorebook/api"
	"github.com/sandlot-league/scorebook/app/eventbus"
	"github.com/sandlot-league/scorebook/app/modules/lineup"
	"github.com/sandlot-league/scorebook/app/modules/scoring"
	"github.com/sandlot-league/scorebook/app/shared/observability"
	"github.com/sandlot-league/scorebook/config"
	"github.com/sandlot-league/scorebook/db/bundb"
)

// App holds the application's wired components.
type App struct {
	Config   *config.Config
	Observer observability.Metrics

	logger        *slog.Logger
	db            *bundb.DBService
	eventBus      eventbus.EventBus
	scoringRouter *message.Router
	lineupRouter  *message.Router

	ScoringModule *scoring.Module
	LineupModule  *lineup.Module

	httpServer    *http.Server
	metricsServer *http.Server
	registry      *prometheus.Registry
	tracer        trace.Tracer
}

// Initialize wires every component. Nothing starts running until Run.
func (a *App) Initialize(ctx context.Context, cfg *config.Config) error {
	a.Config = cfg
	a.logger = slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("service", "scorebook"),
		slog.String("environment", cfg.Observability.Environment),
	)
	a.registry = prometheus.NewRegistry()
	a.Observer = observability.NewPrometheusMetrics(a.registry)
	a.tracer = otel.Tracer("scorebook")

	db, err := bundb.NewBunDBService(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("failed to initialize database service: %w", err)
	}
	a.db = db

	bus, err := eventbus.NewEventBus(ctx, cfg.NATS.URL, a.logger)
	if err != nil {
		return fmt.Errorf("failed to initialize eventbus: %w", err)
	}
	a.eventBus = bus

	if err := eventbus.InitializeStreams(ctx, bus); err != nil {
		return fmt.Errorf("failed to provision streams: %w", err)
	}

	watermillLogger := watermill.NewSlogLogger(a.logger)
	a.scoringRouter, err = message.NewRouter(message.RouterConfig{}, watermillLogger)
	if err != nil {
		return fmt.Errorf("failed to create scoring router: %w", err)
	}
	a.lineupRouter, err = message.NewRouter(message.RouterConfig{}, watermillLogger)
	if err != nil {
		return fmt.Errorf("failed to create lineup router: %w", err)
	}

	a.ScoringModule, err = scoring.NewModule(ctx, db.GetDB(), bus, a.scoringRouter,
		a.logger, a.Observer, a.tracer, a.registry, cfg.Postgres.DSN)
	if err != nil {
		return fmt.Errorf("failed to initialize scoring module: %w", err)
	}
	a.LineupModule, err = lineup.NewModule(ctx, db.GetDB(), bus, a.lineupRouter,
		a.logger, a.Observer, a.tracer, a.registry)
	if err != nil {
		return fmt.Errorf("failed to initialize lineup module: %w", err)
	}

	apiServer := api.NewServer(a.logger, a.ScoringModule.Service, a.LineupModule.Service)
	a.httpServer = &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           apiServer.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	if cfg.Observability.MetricsAddress != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))
		a.metricsServer = &http.Server{
			Addr:              cfg.Observability.MetricsAddress,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
	}

	return nil
}

// Run starts the routers, modules, and HTTP servers, and blocks until the
// context is canceled.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := a.scoringRouter.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			a.logger.Error("Scoring router stopped", slog.Any("error", err))
			cancel()
		}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := a.lineupRouter.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			a.logger.Error("Lineup router stopped", slog.Any("error", err))
			cancel()
		}
	}()

	wg.Add(1)
	go a.ScoringModule.Run(ctx, &wg)
	wg.Add(1)
	go a.LineupModule.Run(ctx, &wg)

	wg.Add(1)
	go func() {
		defer wg.Done()
		a.logger.Info("HTTP server listening", slog.String("addr", a.httpServer.Addr))
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("HTTP server stopped", slog.Any("error", err))
			cancel()
		}
	}()

	if a.metricsServer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := a.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.logger.Error("Metrics server stopped", slog.Any("error", err))
			}
		}()
	}

	<-ctx.Done()
	a.shutdownHTTP()
	wg.Wait()
	return nil
}

func (a *App) shutdownHTTP() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("HTTP server shutdown failed", slog.Any("error", err))
	}
	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("Metrics server shutdown failed", slog.Any("error", err))
		}
	}
}

// Close releases every component in reverse initialization order.
func (a *App) Close() error {
	var errs []error
	if a.ScoringModule != nil {
		if err := a.ScoringModule.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if a.LineupModule != nil {
		if err := a.LineupModule.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if a.eventBus != nil {
		if err := a.eventBus.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if a.db != nil {
		if err := a.db.GetDB().Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
