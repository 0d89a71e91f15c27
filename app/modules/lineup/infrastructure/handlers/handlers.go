// Package lineuphandlers translates lineup request messages into service
// calls and maps the outcomes back onto publish topics.
package lineuphandlers

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	lineupservice "github.com/sandlot-league/scorebook/app/modules/lineup/application"
	"github.com/sandlot-league/scorebook/app/shared/observability"
)

// LineupHandlers handles lineup-related events.
type LineupHandlers struct {
	service lineupservice.Service
	logger  *slog.Logger
	metrics observability.Metrics
	tracer  trace.Tracer
}

// NewLineupHandlers creates a new LineupHandlers.
func NewLineupHandlers(
	service lineupservice.Service,
	logger *slog.Logger,
	metrics observability.Metrics,
	tracer trace.Tracer,
) Handlers {
	return &LineupHandlers{
		service: service,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
	}
}
