package scoringhandlers

import (
	"context"

	scoringevents "github.com/sandlot-league/scorebook/app/modules/scoring/events"
	"github.com/sandlot-league/scorebook/app/shared/handlerwrapper"
)

// Handlers defines the scoring module's message handlers.
type Handlers interface {
	HandleBattingEventRecordRequest(ctx context.Context, payload *scoringevents.BattingEventRecordRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleBattingEventCorrectRequest(ctx context.Context, payload *scoringevents.BattingEventCorrectRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleInningRecomputeRequest(ctx context.Context, payload *scoringevents.InningRecomputeRequestedPayloadV1) ([]handlerwrapper.Result, error)
}
