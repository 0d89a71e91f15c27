package scoringhandlers

import (
	"context"
	"errors"

	scoringevents "github.com/sandlot-league/scorebook/app/modules/scoring/events"
	"github.com/sandlot-league/scorebook/app/shared/handlerwrapper"
)

// HandleBattingEventRecordRequest processes a record request for one plate
// appearance. A handled failure publishes the failed topic; an inning that
// reached three outs additionally announces the finalized half-inning.
func (h *ScoringHandlers) HandleBattingEventRecordRequest(
	ctx context.Context,
	payload *scoringevents.BattingEventRecordRequestedPayloadV1,
) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload is nil")
	}

	result, err := h.service.RecordBattingEvent(ctx, payload.Input, payload.SelectedOutRunnerIDs)
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

	out := []handlerwrapper.Result{
		{
			Topic:   scoringevents.BattingEventRecordedV1,
			Payload: result.Success,
		},
	}
	if result.Success.InningFinished {
		out = append(out, handlerwrapper.Result{
			Topic: scoringevents.HalfInningFinalizedV1,
			Payload: &scoringevents.HalfInningFinalizedPayloadV1{
				GameID: result.Success.GameID,
				Inning: result.Success.Inning,
				Runs:   result.Success.RunsScored,
			},
		})
	}
	return out, nil
}
