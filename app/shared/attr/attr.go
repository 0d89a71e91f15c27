// Package attr provides slog attribute helpers shared by every module.
package attr

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"

	sharedtypes "github.com/sandlot-league/scorebook/app/shared/types"
)

type correlationIDKey struct{}

// WithCorrelationID returns a context carrying the given correlation ID.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, correlationID)
}

// ExtractCorrelationID pulls the correlation ID out of the context for logging.
// Returns an empty attr when none is set so call sites don't have to branch.
func ExtractCorrelationID(ctx context.Context) slog.Attr {
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok && id != "" {
		return slog.String("correlation_id", id)
	}
	return slog.String("correlation_id", "")
}

// CorrelationIDFromMsg reads the watermill correlation ID metadata off a message.
func CorrelationIDFromMsg(msg *message.Message) slog.Attr {
	return slog.String("correlation_id", middleware.MessageCorrelationID(msg))
}

func String(key, value string) slog.Attr { return slog.String(key, value) }

func Int(key string, value int) slog.Attr { return slog.Int(key, value) }

func Int64(key string, value int64) slog.Attr { return slog.Int64(key, value) }

func Bool(key string, value bool) slog.Attr { return slog.Bool(key, value) }

func Float64(key string, value float64) slog.Attr { return slog.Float64(key, value) }

func Any(key string, value any) slog.Attr { return slog.Any(key, value) }

func Error(err error) slog.Attr { return slog.Any("error", err) }

// GameID logs a game identifier under the given key.
func GameID(key string, id sharedtypes.GameID) slog.Attr {
	return slog.String(key, string(id))
}

// TeamID logs a team identifier under the given key.
func TeamID(key string, id sharedtypes.TeamID) slog.Attr {
	return slog.String(key, string(id))
}

// Inning logs an inning number.
func Inning(value int) slog.Attr { return slog.Int("inning", value) }
