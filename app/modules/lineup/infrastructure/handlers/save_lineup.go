package lineuphandlers

import (
	"context"
	"errors"

	lineupevents "github.com/sandlot-league/scorebook/app/modules/lineup/events"
	"github.com/sandlot-league/scorebook/app/shared/handlerwrapper"
)

// HandleLineupSaveRequest persists a submitted lineup. Validation and store
// rejections publish the failed topic; an error return leaves the message to
// the retry middleware.
func (h *LineupHandlers) HandleLineupSaveRequest(
	ctx context.Context,
	payload *lineupevents.LineupSaveRequestedPayloadV1,
) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload is nil")
	}

	result, err := h.service.SaveLineup(ctx, payload.Lineup)
	if err != nil {
		return nil, err
	}

	if result.IsFailure() {
		return []handlerwrapper.Result{
			{
				Topic:   lineupevents.LineupSaveFailedV1,
				Payload: result.Failure,
			},
		}, nil
	}

	return []handlerwrapper.Result{
		{
			Topic:   lineupevents.LineupSavedV1,
			Payload: result.Success,
		},
	}, nil
}
