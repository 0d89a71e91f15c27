// Package lineupservice implements the lineup assignment engine on top of
// the Record Store.
package lineupservice

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	lineupdb "github.com/sandlot-league/scorebook/app/modules/lineup/infrastructure/repositories"
	"github.com/sandlot-league/scorebook/app/shared/attr"
	"github.com/sandlot-league/scorebook/app/shared/observability"
	"github.com/sandlot-league/scorebook/app/shared/results"
	sharedtypes "github.com/sandlot-league/scorebook/app/shared/types"
)

const moduleName = "lineup"

// DB is the slice of *bun.DB the service needs.
type DB interface {
	bun.IDB
	RunInTx(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context, tx bun.Tx) error) error
}

// LineupService implements the Service interface.
type LineupService struct {
	repo    lineupdb.Repository
	db      DB
	logger  *slog.Logger
	metrics observability.Metrics
	tracer  trace.Tracer
}

var _ Service = (*LineupService)(nil)

// NewLineupService creates a new LineupService.
func NewLineupService(
	repo lineupdb.Repository,
	db DB,
	logger *slog.Logger,
	metrics observability.Metrics,
	tracer trace.Tracer,
) *LineupService {
	return &LineupService{
		repo:    repo,
		db:      db,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
	}
}

// operationFunc is the generic signature for service operation functions.
type operationFunc[S any, F any] func(ctx context.Context) (results.OperationResult[S, F], error)

// withTelemetry wraps a service operation with tracing, metrics, and panic
// recovery.
func withTelemetry[S any, F any](
	s *LineupService,
	ctx context.Context,
	operationName string,
	teamID sharedtypes.TeamID,
	op operationFunc[S, F],
) (result results.OperationResult[S, F], err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
		attribute.String("team_id", teamID.String()),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName, moduleName)

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, moduleName, time.Since(startTime))
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.TeamID("team_id", teamID),
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
			attr.TeamID("team_id", teamID),
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
			attr.TeamID("team_id", teamID),
			attr.Any("failure_payload", *result.Failure),
		)
		s.metrics.RecordOperationFailure(ctx, operationName, moduleName)
		return result, nil
	}

	s.metrics.RecordOperationSuccess(ctx, operationName, moduleName)
	return result, nil
}
