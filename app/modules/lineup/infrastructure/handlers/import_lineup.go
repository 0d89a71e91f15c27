package lineuphandlers

import (
	"context"
	"errors"

	lineupevents "github.com/sandlot-league/scorebook/app/modules/lineup/events"
	"github.com/sandlot-league/scorebook/app/shared/handlerwrapper"
)

// HandleLineupImportRequest parses an uploaded lineup sheet. The parsed
// lineup is published for review, never persisted directly.
func (h *LineupHandlers) HandleLineupImportRequest(
	ctx context.Context,
	payload *lineupevents.LineupImportRequestedPayloadV1,
) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload is nil")
	}

	result, err := h.service.ImportLineup(ctx, *payload)
	if err != nil {
		return nil, err
	}

	if result.IsFailure() {
		return []handlerwrapper.Result{
			{
				Topic:   lineupevents.LineupImportFailedV1,
				Payload: result.Failure,
			},
		}, nil
	}

	return []handlerwrapper.Result{
		{
			Topic:   lineupevents.LineupImportedV1,
			Payload: result.Success,
		},
	}, nil
}
