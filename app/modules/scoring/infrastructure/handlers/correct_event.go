package scoringhandlers

import (
	"context"
	"errors"

	scoringevents "github.com/sandlot-league/scorebook/app/modules/scoring/events"
	"github.com/sandlot-league/scorebook/app/shared/handlerwrapper"
)

// HandleBattingEventCorrectRequest applies a correction edit to a stored
// plate appearance.
func (h *ScoringHandlers) HandleBattingEventCorrectRequest(
	ctx context.Context,
	payload *scoringevents.BattingEventCorrectRequestedPayloadV1,
) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload is nil")
	}

	result, err := h.service.CorrectBattingEvent(ctx, payload.EventID, payload.Input, payload.SelectedOutRunnerIDs)
	if err != nil {
		return nil, err
	}

	if result.IsFailure() {
		return []handlerwrapper.Result{
			{
				Topic:   scoringevents.BattingEventCorrectFailedV1,
				Payload: result.Failure,
			},
		}, nil
	}

	return []handlerwrapper.Result{
		{
			Topic:   scoringevents.BattingEventCorrectedV1,
			Payload: result.Success,
		},
	}, nil
}
