package scoringhandlers

import (
	"context"
	"errors"

	scoringevents "github.com/sandlot-league/scorebook/app/modules/scoring/events"
	"github.com/sandlot-league/scorebook/app/shared/handlerwrapper"
)

// HandleInningRecomputeRequest rebuilds one half-inning's derived aggregates
// from the stored event set. The operation is idempotent, so redelivered
// messages are harmless.
func (h *ScoringHandlers) HandleInningRecomputeRequest(
	ctx context.Context,
	payload *scoringevents.InningRecomputeRequestedPayloadV1,
) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload is nil")
	}

	result, err := h.service.RecomputeInning(ctx, payload.GameID, payload.Inning, payload.BattingFirst)
	if err != nil {
		return nil, err
	}

	if result.IsFailure() {
		return []handlerwrapper.Result{
			{
				Topic:   scoringevents.BattingEventRecordFailedV1,
				Payload: result.Failure,
			},
		}, nil
	}

	return []handlerwrapper.Result{
		{
			Topic:   scoringevents.InningRecomputedV1,
			Payload: result.Success,
		},
	}, nil
}
