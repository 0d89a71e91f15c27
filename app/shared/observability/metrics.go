// Package observability provides the metrics surface shared by module
// services and handlers, with a Prometheus implementation for production
// and a no-op implementation for tests.
package observability

import (
	"context"
	"time"
)

// Metrics records service- and handler-level telemetry plus a few
// domain counters the scoring and lineup modules care about.
type Metrics interface {
	RecordOperationAttempt(ctx context.Context, operation, module string)
	RecordOperationSuccess(ctx context.Context, operation, module string)
	RecordOperationFailure(ctx context.Context, operation, module string)
	RecordOperationDuration(ctx context.Context, operation, module string, duration time.Duration)

	RecordHandlerAttempt(ctx context.Context, handlerName string)
	RecordHandlerSuccess(ctx context.Context, handlerName string)
	RecordHandlerFailure(ctx context.Context, handlerName string)
	RecordHandlerDuration(ctx context.Context, handlerName string, duration time.Duration)

	RecordRunsScored(ctx context.Context, gameID string, runs int)
	RecordOutsClamped(ctx context.Context, gameID string)
	RecordHalfInningFinalized(ctx context.Context, gameID string)
	RecordLineupSaved(ctx context.Context, teamID string)
}
