// Package lineuprouter subscribes the lineup handlers to their request
// topics and publishes whatever they return.
package lineuprouter

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
	lineupservice "github.com/sandlot-league/scorebook/app/modules/lineup/application"
	lineupevents "github.com/sandlot-league/scorebook/app/modules/lineup/events"
	lineuphandlers "github.com/sandlot-league/scorebook/app/modules/lineup/infrastructure/handlers"
	"github.com/sandlot-league/scorebook/app/shared/attr"
	"github.com/sandlot-league/scorebook/app/shared/handlerwrapper"
	"github.com/sandlot-league/scorebook/app/shared/observability"
)

const (
	TestEnvironmentFlag  = "APP_ENV"
	TestEnvironmentValue = "test"
)

// LineupRouter wires lineup topics to handlers on a shared watermill
// router.
type LineupRouter struct {
	logger         *slog.Logger
	Router         *message.Router
	subscriber     eventbus.EventBus
	publisher      eventbus.EventBus
	tracer         trace.Tracer
	metricsBuilder *metrics.PrometheusMetricsBuilder
	metricsEnabled bool
}

// NewLineupRouter creates a new LineupRouter.
func NewLineupRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	publisher eventbus.EventBus,
	tracer trace.Tracer,
	prometheusRegistry *prometheus.Registry,
) *LineupRouter {
	inTestEnv := os.Getenv(TestEnvironmentFlag) == TestEnvironmentValue

	var metricsBuilder *metrics.PrometheusMetricsBuilder
	if prometheusRegistry != nil && !inTestEnv {
		builder := metrics.NewPrometheusMetricsBuilder(prometheusRegistry, "", "")
		metricsBuilder = &builder
	}
	return &LineupRouter{
		logger:         logger,
		Router:         router,
		subscriber:     subscriber,
		publisher:      publisher,
		tracer:         tracer,
		metricsBuilder: metricsBuilder,
		metricsEnabled: prometheusRegistry != nil && !inTestEnv,
	}
}

// Configure adds middleware and registers the lineup handlers.
func (r *LineupRouter) Configure(ctx context.Context, service lineupservice.Service, moduleMetrics observability.Metrics) error {
	if r.metricsEnabled && r.metricsBuilder != nil {
		r.metricsBuilder.AddPrometheusRouterMetrics(r.Router)
	}

	r.Router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Recoverer,
		middleware.Retry{MaxRetries: 3}.Middleware,
	)

	handlers := lineuphandlers.NewLineupHandlers(service, r.logger, moduleMetrics, r.tracer)
	if err := r.RegisterHandlers(ctx, handlers, moduleMetrics); err != nil {
		return fmt.Errorf("failed to register lineup handlers: %w", err)
	}
	return nil
}

// RegisterHandlers subscribes each request topic and publishes the messages
// the handler produces. The publish topic travels in message metadata set by
// the handler wrapper.
func (r *LineupRouter) RegisterHandlers(ctx context.Context, handlers lineuphandlers.Handlers, moduleMetrics observability.Metrics) error {
	eventsToHandlers := map[string]message.HandlerFunc{
		lineupevents.LineupSaveRequestedV1:   handlerwrapper.Wrap("lineup.save_lineup", handlers.HandleLineupSaveRequest, r.logger, moduleMetrics, r.tracer),
		lineupevents.LineupImportRequestedV1: handlerwrapper.Wrap("lineup.import_lineup", handlers.HandleLineupImportRequest, r.logger, moduleMetrics, r.tracer),
	}

	for topic, handlerFunc := range eventsToHandlers {
		handlerName := fmt.Sprintf("lineup.%s", topic)
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

func (r *LineupRouter) Close() error {
	return r.Router.Close()
}
