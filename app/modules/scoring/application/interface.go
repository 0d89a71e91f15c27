package scoringservice

import (
	"context"

	scoringtypes "github.com/sandlot-league/scorebook/app/modules/scoring/domain/types"
	scoringevents "github.com/sandlot-league/scorebook/app/modules/scoring/events"
	"github.com/sandlot-league/scorebook/app/shared/results"
	sharedtypes "github.com/sandlot-league/scorebook/app/shared/types"
)

// Result aliases for the service operations.
type (
	RecordBattingEventResult  = results.OperationResult[scoringevents.BattingEventRecordedPayloadV1, scoringevents.BattingEventRecordFailedPayloadV1]
	CorrectBattingEventResult = results.OperationResult[scoringevents.BattingEventCorrectedPayloadV1, scoringevents.BattingEventCorrectFailedPayloadV1]
	RecomputeInningResult     = results.OperationResult[scoringevents.InningRecomputedPayloadV1, scoringevents.BattingEventRecordFailedPayloadV1]
)

// Service is the batting event processor plus its derived-state queries.
type Service interface {
	// RecordBattingEvent processes one plate appearance: classify, resolve
	// selected out-runners, persist the event, advance runners, recompute
	// the half-inning score, and advance the out state machine.
	RecordBattingEvent(ctx context.Context, input scoringevents.BattingEventInput, selectedOutRunnerIDs []int64) (RecordBattingEventResult, error)

	// CorrectBattingEvent applies a correction edit to a stored event and
	// re-runs the engine's derived aggregates for its half-inning.
	CorrectBattingEvent(ctx context.Context, eventID sharedtypes.EventID, input scoringevents.BattingEventInput, selectedOutRunnerIDs []int64) (CorrectBattingEventResult, error)

	// RecomputeInning rebuilds a half-inning's run total and out count from
	// the full stored event set. Idempotent and order independent; safe to
	// re-run after a dropped connection or a concurrent edit.
	RecomputeInning(ctx context.Context, gameID sharedtypes.GameID, inning int, battingFirst bool) (RecomputeInningResult, error)

	// GetGameState returns the current occupancy, outs, and line score.
	GetGameState(ctx context.Context, gameID sharedtypes.GameID, inning int, battingFirst bool) (*scoringtypes.GameState, error)
}
