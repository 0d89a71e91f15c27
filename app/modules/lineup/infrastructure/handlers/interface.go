package lineuphandlers

import (
	"context"

	lineupevents "github.com/sandlot-league/scorebook/app/modules/lineup/events"
	"github.com/sandlot-league/scorebook/app/shared/handlerwrapper"
)

// Handlers defines the lineup module's message handlers.
type Handlers interface {
	HandleLineupSaveRequest(ctx context.Context, payload *lineupevents.LineupSaveRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleLineupImportRequest(ctx context.Context, payload *lineupevents.LineupImportRequestedPayloadV1) ([]handlerwrapper.Result, error)
}
