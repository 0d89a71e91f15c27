package scoringservice

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	scoringdb "github.com/sandlot-league/scorebook/app/modules/scoring/infrastructure/repositories"
	"github.com/sandlot-league/scorebook/app/shared/attr"
	"github.com/sandlot-league/scorebook/app/shared/observability"
	"github.com/sandlot-league/scorebook/app/shared/results"
	sharedtypes "github.com/sandlot-league/scorebook/app/shared/types"
)

const moduleName = "scoring"

// DB is the slice of *bun.DB the service needs: plain queries plus the
// transactional recompute-and-write the processor runs its steps in.
type DB interface {
	bun.IDB
	RunInTx(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context, tx bun.Tx) error) error
}

// RecomputeEnqueuer schedules a background recompute of one half-inning.
// Implemented by the river-backed queue service.
type RecomputeEnqueuer interface {
	EnqueueInningRecompute(ctx context.Context, gameID sharedtypes.GameID, inning int, battingFirst bool) error
}

// ScoringService implements the Service interface.
type ScoringService struct {
	repo    scoringdb.Repository
	db      DB
	queue   RecomputeEnqueuer
	logger  *slog.Logger
	metrics observability.Metrics
	tracer  trace.Tracer
}

var _ Service = (*ScoringService)(nil)

// NewScoringService creates a new ScoringService.
func NewScoringService(
	repo scoringdb.Repository,
	db DB,
	queue RecomputeEnqueuer,
	logger *slog.Logger,
	metrics observability.Metrics,
	tracer trace.Tracer,
) *ScoringService {
	return &ScoringService{
		repo:    repo,
		db:      db,
		queue:   queue,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
	}
}

// SetRecomputeEnqueuer installs the background queue after construction.
// The queue's worker needs the service, so the two are wired in two steps.
func (s *ScoringService) SetRecomputeEnqueuer(queue RecomputeEnqueuer) {
	s.queue = queue
}

// operationFunc is the generic signature for service operation functions.
type operationFunc[S any, F any] func(ctx context.Context) (results.OperationResult[S, F], error)

// withTelemetry wraps a service operation with tracing, metrics, and panic
// recovery.
func withTelemetry[S any, F any](
	s *ScoringService,
	ctx context.Context,
	operationName string,
	gameID sharedtypes.GameID,
	op operationFunc[S, F],
) (result results.OperationResult[S, F], err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
		attribute.String("game_id", gameID.String()),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName, moduleName)

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, moduleName, time.Since(startTime))
	}()

	s.logger.InfoContext(ctx, operationName+" triggered",
		attr.String("operation", operationName),
		attr.GameID("game_id", gameID),
		attr.ExtractCorrelationID(ctx),
	)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.GameID("game_id", gameID),
				attr.ExtractCorrelationID(ctx),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName, moduleName)
			span.RecordError(err)
			result = results.OperationResult[S, F]{}
		}
	}()

	result, err = op(ctx)

	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed with error",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.GameID("game_id", gameID),
			attr.Error(wrappedErr),
		)
		s.metrics.RecordOperationFailure(ctx, operationName, moduleName)
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	if result.IsFailure() {
		s.logger.WarnContext(ctx, "Operation returned failure result",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.GameID("game_id", gameID),
			attr.Any("failure_payload", *result.Failure),
		)
		s.metrics.RecordOperationFailure(ctx, operationName, moduleName)
		return result, nil
	}

	s.logger.InfoContext(ctx, operationName+" completed successfully",
		attr.ExtractCorrelationID(ctx),
		attr.String("operation", operationName),
		attr.GameID("game_id", gameID),
	)
	s.metrics.RecordOperationSuccess(ctx, operationName, moduleName)
	return result, nil
}
