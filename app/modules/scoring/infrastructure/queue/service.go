// Package scoringqueue schedules background scoring jobs with River on the
// same Postgres the Record Store lives in.
package scoringqueue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivertype"

	scoringservice "github.com/sandlot-league/scorebook/app/modules/scoring/application"
	"github.com/sandlot-league/scorebook/app/shared/attr"
	"github.com/sandlot-league/scorebook/app/shared/observability"
	sharedtypes "github.com/sandlot-league/scorebook/app/shared/types"
)

const queueName = "scoring"

// QueueService defines the job scheduling operations for the scoring module.
type QueueService interface {
	EnqueueInningRecompute(ctx context.Context, gameID sharedtypes.GameID, inning int, battingFirst bool) error
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	HealthCheck(ctx context.Context) error
}

var _ QueueService = (*Service)(nil)
var _ scoringservice.RecomputeEnqueuer = (*Service)(nil)

// Service handles background jobs for the scoring module using River.
type Service struct {
	client  *river.Client[pgx.Tx]
	pool    *pgxpool.Pool
	logger  *slog.Logger
	metrics observability.Metrics
}

// NewService creates the River client on its own pgx pool. River requires
// pgx directly; the bun connection the repositories use cannot be shared.
func NewService(ctx context.Context, dsn string, service scoringservice.Service, logger *slog.Logger, metrics observability.Metrics) (*Service, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewInningRecomputeWorker(service, logger))

	riverClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 10},
			queueName:          {MaxWorkers: 5},
		},
		Workers: workers,
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create River client: %w", err)
	}

	return &Service{
		client:  riverClient,
		pool:    pool,
		logger:  logger,
		metrics: metrics,
	}, nil
}

// Start starts the River queue service.
func (s *Service) Start(ctx context.Context) error {
	if err := s.client.Start(ctx); err != nil {
		return fmt.Errorf("failed to start River client: %w", err)
	}
	s.logger.InfoContext(ctx, "Scoring queue service started")
	return nil
}

// Stop stops the River queue service and closes its pool.
func (s *Service) Stop(ctx context.Context) error {
	if err := s.client.Stop(ctx); err != nil {
		return fmt.Errorf("failed to stop River client: %w", err)
	}
	s.pool.Close()
	s.logger.InfoContext(ctx, "Scoring queue service stopped")
	return nil
}

// EnqueueInningRecompute schedules a background recompute of one
// half-inning. Duplicate jobs for the same half-inning collapse into one.
func (s *Service) EnqueueInningRecompute(ctx context.Context, gameID sharedtypes.GameID, inning int, battingFirst bool) error {
	start := time.Now()
	s.metrics.RecordOperationAttempt(ctx, "enqueue_inning_recompute", "scoring_queue")
	defer func() {
		s.metrics.RecordOperationDuration(ctx, "enqueue_inning_recompute", "scoring_queue", time.Since(start))
	}()

	job := InningRecomputeJob{
		GameID:       gameID,
		Inning:       inning,
		BattingFirst: battingFirst,
	}
	result, err := s.client.Insert(ctx, job, &river.InsertOpts{
		Queue: queueName,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByState: []rivertype.JobState{rivertype.JobStateAvailable, rivertype.JobStateScheduled},
		},
	})
	if err != nil {
		s.metrics.RecordOperationFailure(ctx, "enqueue_inning_recompute", "scoring_queue")
		return fmt.Errorf("failed to enqueue inning recompute: %w", err)
	}

	s.metrics.RecordOperationSuccess(ctx, "enqueue_inning_recompute", "scoring_queue")
	s.logger.InfoContext(ctx, "Inning recompute enqueued",
		attr.GameID("game_id", gameID),
		attr.Inning(inning),
		attr.Int64("job_id", result.Job.ID),
		attr.Bool("duplicate_skipped", result.UniqueSkippedAsDuplicate),
	)
	return nil
}

// HealthCheck verifies the queue's database connectivity.
func (s *Service) HealthCheck(ctx context.Context) error {
	if s.client == nil {
		return fmt.Errorf("river client is nil")
	}
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("queue health check failed: %w", err)
	}
	return nil
}
