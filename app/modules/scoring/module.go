// Package scoring wires the batting event engine: service, repositories,
// message router, and the background recompute queue.
package scoring

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
	scoringservice "github.com/sandlot-league/scorebook/app/modules/scoring/application"
	scoringqueue "github.com/sandlot-league/scorebook/app/modules/scoring/infrastructure/queue"
	scoringdb "github.com/sandlot-league/scorebook/app/modules/scoring/infrastructure/repositories"
	scoringrouter "github.com/sandlot-league/scorebook/app/modules/scoring/infrastructure/router"
	"github.com/sandlot-league/scorebook/app/shared/observability"
)

// Module is the scoring module.
type Module struct {
	Service      scoringservice.Service
	QueueService scoringqueue.QueueService
	Router       *scoringrouter.ScoringRouter

	logger     *slog.Logger
	cancelFunc context.CancelFunc
}

// NewModule creates and wires the scoring module. The queue DSN points at
// the same Postgres the Record Store uses; an empty DSN disables background
// recompute (corrections still recompute inline).
func NewModule(
	ctx context.Context,
	db *bun.DB,
	bus eventbus.EventBus,
	router *message.Router,
	logger *slog.Logger,
	metrics observability.Metrics,
	tracer trace.Tracer,
	prometheusRegistry *prometheus.Registry,
	queueDSN string,
) (*Module, error) {
	repo := &scoringdb.ScoringDBImpl{DB: db}
	service := scoringservice.NewScoringService(repo, db, nil, logger, metrics, tracer)

	var queueService scoringqueue.QueueService
	if queueDSN != "" {
		qs, err := scoringqueue.NewService(ctx, queueDSN, service, logger, metrics)
		if err != nil {
			return nil, fmt.Errorf("failed to create scoring queue service: %w", err)
		}
		service.SetRecomputeEnqueuer(qs)
		queueService = qs
	}

	scoringRouter := scoringrouter.NewScoringRouter(logger, router, bus, bus, tracer, prometheusRegistry)
	if err := scoringRouter.Configure(ctx, service, metrics); err != nil {
		return nil, fmt.Errorf("failed to configure scoring router: %w", err)
	}

	return &Module{
		Service:      service,
		QueueService: queueService,
		Router:       scoringRouter,
		logger:       logger,
	}, nil
}

// Run starts the queue workers and blocks until the context is canceled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	if wg != nil {
		defer wg.Done()
	}

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if m.QueueService != nil {
		if err := m.QueueService.Start(ctx); err != nil {
			m.logger.ErrorContext(ctx, "Failed to start scoring queue service", "error", err)
		}
	}

	<-ctx.Done()
	m.logger.Info("Scoring module stopped")
}

// Close stops the queue workers and releases the module's resources.
func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	if m.QueueService != nil {
		if err := m.QueueService.Stop(context.Background()); err != nil {
			return fmt.Errorf("failed to stop scoring queue service: %w", err)
		}
	}
	return nil
}
