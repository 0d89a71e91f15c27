// Package handlerwrapper adapts typed event handlers to watermill handler
// functions, adding logging, metrics, tracing, and payload (un)marshaling.
package handlerwrapper

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"go.opentelemetry.io/otel/trace"

	"github.com/sandlot-league/scorebook/app/shared/attr"
)

// TopicMetadataKey carries the resolved publish topic on outgoing messages.
const TopicMetadataKey = "publish_topic"

// Result is one message a handler wants published: a topic plus a payload
// that will be JSON marshaled.
type Result struct {
	Topic   string
	Payload any
}

// HandlerMetrics records handler-level telemetry.
type HandlerMetrics interface {
	RecordHandlerAttempt(ctx context.Context, handlerName string)
	RecordHandlerSuccess(ctx context.Context, handlerName string)
	RecordHandlerFailure(ctx context.Context, handlerName string)
	RecordHandlerDuration(ctx context.Context, handlerName string, duration time.Duration)
}

// Wrap turns a typed handler into a watermill message.HandlerFunc.
// The payload type P is unmarshaled from the message body; returned Results
// are marshaled into messages tagged with their publish topic.
func Wrap[P any](
	handlerName string,
	handlerFunc func(ctx context.Context, payload *P) ([]Result, error),
	logger *slog.Logger,
	metrics HandlerMetrics,
	tracer trace.Tracer,
) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		ctx, span := tracer.Start(msg.Context(), handlerName)
		defer span.End()

		correlationID := middleware.MessageCorrelationID(msg)
		ctx = attr.WithCorrelationID(ctx, correlationID)

		metrics.RecordHandlerAttempt(ctx, handlerName)
		startTime := time.Now()
		defer func() {
			metrics.RecordHandlerDuration(ctx, handlerName, time.Since(startTime))
		}()

		logger.InfoContext(ctx, handlerName+" triggered",
			attr.CorrelationIDFromMsg(msg),
			attr.String("message_id", msg.UUID),
		)

		payload := new(P)
		if err := json.Unmarshal(msg.Payload, payload); err != nil {
			metrics.RecordHandlerFailure(ctx, handlerName)
			logger.ErrorContext(ctx, "Failed to unmarshal payload",
				attr.CorrelationIDFromMsg(msg),
				attr.Error(err),
			)
			return nil, fmt.Errorf("%s: unmarshal payload: %w", handlerName, err)
		}

		outcomes, err := handlerFunc(ctx, payload)
		if err != nil {
			metrics.RecordHandlerFailure(ctx, handlerName)
			span.RecordError(err)
			return nil, fmt.Errorf("%s: %w", handlerName, err)
		}

		out := make([]*message.Message, 0, len(outcomes))
		for _, res := range outcomes {
			body, err := json.Marshal(res.Payload)
			if err != nil {
				metrics.RecordHandlerFailure(ctx, handlerName)
				return nil, fmt.Errorf("%s: marshal result for topic %s: %w", handlerName, res.Topic, err)
			}
			outMsg := message.NewMessage(watermill.NewUUID(), body)
			outMsg.SetContext(ctx)
			outMsg.Metadata.Set(TopicMetadataKey, res.Topic)
			middleware.SetCorrelationID(correlationID, outMsg)
			out = append(out, outMsg)
		}

		metrics.RecordHandlerSuccess(ctx, handlerName)
		return out, nil
	}
}
