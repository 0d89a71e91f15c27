// Package lineup wires the lineup assignment engine: service, repositories,
// and message router.
package lineup

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"

	"github.com/sandlot-league/scorebook/app/eventbus"
	lineupservice "github.com/sandlot-league/scorebook/app/modules/lineup/application"
	lineupdb "github.com/sandlot-league/scorebook/app/modules/lineup/infrastructure/repositories"
	lineuprouter "github.com/sandlot-league/scorebook/app/modules/lineup/infrastructure/router"
	"github.com/sandlot-league/scorebook/app/shared/observability"
)

// Module is the lineup module.
type Module struct {
	Service lineupservice.Service
	Router  *lineuprouter.LineupRouter

	logger     *slog.Logger
	cancelFunc context.CancelFunc
}

// NewModule creates and wires the lineup module.
func NewModule(
	ctx context.Context,
	db *bun.DB,
	bus eventbus.EventBus,
	router *message.Router,
	logger *slog.Logger,
	metrics observability.Metrics,
	tracer trace.Tracer,
	prometheusRegistry *prometheus.Registry,
) (*Module, error) {
	repo := &lineupdb.LineupDBImpl{DB: db}
	service := lineupservice.NewLineupService(repo, db, logger, metrics, tracer)

	lineupRouter := lineuprouter.NewLineupRouter(logger, router, bus, bus, tracer, prometheusRegistry)
	if err := lineupRouter.Configure(ctx, service, metrics); err != nil {
		return nil, fmt.Errorf("failed to configure lineup router: %w", err)
	}

	return &Module{
		Service: service,
		Router:  lineupRouter,
		logger:  logger,
	}, nil
}

// Run blocks until the context is canceled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	if wg != nil {
		defer wg.Done()
	}

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	<-ctx.Done()
	m.logger.Info("Lineup module stopped")
}

// Close releases the module's resources.
func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	return nil
}
