// Package scoringrouter subscribes the scoring handlers to their request
// topics and publishes whatever they return.
package scoringrouter

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ThreeDotsLabs/watermill/components/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/sandlot-league/scorebook/app/eventbus"
	scoringservice "github.com/sandlot-league/scorebook/app/modules/scoring/application"
	scoringevents "github.com/sandlot-league/scorebook/app/modules/scoring/events"
	scoringhandlers "github.com/sandlot-league/scorebook/app/modules/scoring/infrastructure/handlers"
	"github.com/sandlot-league/scorebook/app/shared/attr"
	"github.com/sandlot-league/scorebook/app/shared/handlerwrapper"
	"github.com/sandlot-league/scorebook/app/shared/observability"
)

const (
	TestEnvironmentFlag  = "APP_ENV"
	TestEnvironmentValue = "test"
)

// ScoringRouter wires scoring topics to handlers on a shared watermill
// router.
type ScoringRouter struct {
	logger         *slog.Logger
	Router         *message.Router
	subscriber     eventbus.EventBus
	publisher      eventbus.EventBus
	tracer         trace.Tracer
	metricsBuilder *metrics.PrometheusMetricsBuilder
	metricsEnabled bool
}

// NewScoringRouter creates a new ScoringRouter.
func NewScoringRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	publisher eventbus.EventBus,
	tracer trace.Tracer,
	prometheusRegistry *prometheus.Registry,
) *ScoringRouter {
	inTestEnv := os.Getenv(TestEnvironmentFlag) == TestEnvironmentValue

	var metricsBuilder *metrics.PrometheusMetricsBuilder
	if prometheusRegistry != nil && !inTestEnv {
		builder := metrics.NewPrometheusMetricsBuilder(prometheusRegistry, "", "")
		metricsBuilder = &builder
	}
	return &ScoringRouter{
		logger:         logger,
		Router:         router,
		subscriber:     subscriber,
		publisher:      publisher,
		tracer:         tracer,
		metricsBuilder: metricsBuilder,
		metricsEnabled: prometheusRegistry != nil && !inTestEnv,
	}
}

// Configure adds middleware and registers the scoring handlers.
func (r *ScoringRouter) Configure(ctx context.Context, service scoringservice.Service, moduleMetrics observability.Metrics) error {
	if r.metricsEnabled && r.metricsBuilder != nil {
		r.metricsBuilder.AddPrometheusRouterMetrics(r.Router)
	}

	r.Router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Recoverer,
		middleware.Retry{MaxRetries: 3}.Middleware,
	)

	handlers := scoringhandlers.NewScoringHandlers(service, r.logger, moduleMetrics, r.tracer)
	if err := r.RegisterHandlers(ctx, handlers, moduleMetrics); err != nil {
		return fmt.Errorf("failed to register scoring handlers: %w", err)
	}
	return nil
}

// RegisterHandlers subscribes each request topic and publishes the messages
// the handler produces. The publish topic travels in message metadata set by
// the handler wrapper.
func (r *ScoringRouter) RegisterHandlers(ctx context.Context, handlers scoringhandlers.Handlers, moduleMetrics observability.Metrics) error {
	eventsToHandlers := map[string]message.HandlerFunc{
		scoringevents.BattingEventRecordRequestedV1:  handlerwrapper.Wrap("scoring.record_batting_event", handlers.HandleBattingEventRecordRequest, r.logger, moduleMetrics, r.tracer),
		scoringevents.BattingEventCorrectRequestedV1: handlerwrapper.Wrap("scoring.correct_batting_event", handlers.HandleBattingEventCorrectRequest, r.logger, moduleMetrics, r.tracer),
		scoringevents.InningRecomputeRequestedV1:     handlerwrapper.Wrap("scoring.recompute_inning", handlers.HandleInningRecomputeRequest, r.logger, moduleMetrics, r.tracer),
	}

	for topic, handlerFunc := range eventsToHandlers {
		handlerName := fmt.Sprintf("scoring.%s", topic)
		r.Router.AddHandler(
			handlerName,
			topic,
			r.subscriber,
			"",
			nil,
			func(msg *message.Message) ([]*message.Message, error) {
				messages, err := handlerFunc(msg)
				if err != nil {
					r.logger.ErrorContext(ctx, "Error processing message",
						attr.String("message_id", msg.UUID),
						attr.Error(err),
					)
					return nil, err
				}
				for _, m := range messages {
					publishTopic := m.Metadata.Get(handlerwrapper.TopicMetadataKey)
					if publishTopic == "" {
						r.logger.Error("No publish topic on message, dropping",
							attr.String("handler", handlerName),
							attr.String("message_id", m.UUID),
						)
						continue
					}
					if err := r.publisher.Publish(publishTopic, m); err != nil {
						return nil, fmt.Errorf("failed to publish to %s: %w", publishTopic, err)
					}
				}
				return nil, nil
			},
		)
	}
	return nil
}

func (r *ScoringRouter) Close() error {
	return r.Router.Close()
}
