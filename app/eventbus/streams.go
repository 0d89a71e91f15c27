package eventbus

import "context"

// Module streams. Each module's topics share one stream so ordering within
// a module is preserved.
const (
	ScoringStream = "scoring"
	LineupStream  = "lineup"
)

// InitializeStreams provisions the JetStream streams the modules publish to.
// Called once during application startup.
func InitializeStreams(ctx context.Context, bus EventBus) error {
	if err := bus.CreateStream(ctx, ScoringStream, "scoring.>"); err != nil {
		return err
	}
	return bus.CreateStream(ctx, LineupStream, "lineup.>")
}
