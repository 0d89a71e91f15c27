package observability

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// NoOpMetrics discards all telemetry. Used in tests.
type NoOpMetrics struct{}

var _ Metrics = (*NoOpMetrics)(nil)

func (NoOpMetrics) RecordOperationAttempt(context.Context, string, string)                {}
func (NoOpMetrics) RecordOperationSuccess(context.Context, string, string)                {}
func (NoOpMetrics) RecordOperationFailure(context.Context, string, string)                {}
func (NoOpMetrics) RecordOperationDuration(context.Context, string, string, time.Duration) {}
func (NoOpMetrics) RecordHandlerAttempt(context.Context, string)                          {}
func (NoOpMetrics) RecordHandlerSuccess(context.Context, string)                          {}
func (NoOpMetrics) RecordHandlerFailure(context.Context, string)                          {}
func (NoOpMetrics) RecordHandlerDuration(context.Context, string, time.Duration)          {}
func (NoOpMetrics) RecordRunsScored(context.Context, string, int)                         {}
func (NoOpMetrics) RecordOutsClamped(context.Context, string)                             {}
func (NoOpMetrics) RecordHalfInningFinalized(context.Context, string)                     {}
func (NoOpMetrics) RecordLineupSaved(context.Context, string)                             {}

// NoOpLogger is a slog logger that writes nowhere. Used in tests.
var NoOpLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
