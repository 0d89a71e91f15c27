// Package scoringhandlers translates scoring request messages into service
// calls and maps the outcomes back onto publish topics.
package scoringhandlers

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	scoringservice "github.com/sandlot-league/scorebook/app/modules/scoring/application"
	"github.com/sandlot-league/scorebook/app/shared/observability"
)

// ScoringHandlers handles scoring-related events.
type ScoringHandlers struct {
	service scoringservice.Service
	logger  *slog.Logger
	metrics observability.Metrics
	tracer  trace.Tracer
}

// NewScoringHandlers creates a new ScoringHandlers.
func NewScoringHandlers(
	service scoringservice.Service,
	logger *slog.Logger,
	metrics observability.Metrics,
	tracer trace.Tracer,
) Handlers {
	return &ScoringHandlers{
		service: service,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
	}
}
