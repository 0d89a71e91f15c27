// Package scoringevents defines the versioned topics and payloads the
// scoring module consumes and emits.
package scoringevents

import (
	scoringtypes "github.com/sandlot-league/scorebook/app/modules/scoring/domain/types"
	sharedtypes "github.com/sandlot-league/scorebook/app/shared/types"
)

// Topic constants. Requests come from the client gateway; the module
// publishes the recorded/failed counterparts.
const (
	BattingEventRecordRequestedV1 = "scoring.battingevent.record.requested.v1"
	BattingEventRecordedV1        = "scoring.battingevent.recorded.v1"
	BattingEventRecordFailedV1    = "scoring.battingevent.record.failed.v1"

	BattingEventCorrectRequestedV1 = "scoring.battingevent.correct.requested.v1"
	BattingEventCorrectedV1        = "scoring.battingevent.corrected.v1"
	BattingEventCorrectFailedV1    = "scoring.battingevent.correct.failed.v1"

	InningRecomputeRequestedV1 = "scoring.inning.recompute.requested.v1"
	InningRecomputedV1         = "scoring.inning.recomputed.v1"

	HalfInningFinalizedV1 = "scoring.halfinning.finalized.v1"
)

// BattingEventInput is the scorer's entry for one plate appearance.
type BattingEventInput struct {
	GameID       sharedtypes.GameID          `json:"game_id"`
	Inning       int                         `json:"inning"`
	BattingFirst bool                        `json:"batting_first"`
	PlayerID     string                      `json:"player_id"`
	PlayerName   string                      `json:"player_name"`
	Result       scoringtypes.BattingResult  `json:"result"`
	HasError     bool                        `json:"has_error"`
	StolenBase   bool                        `json:"stolen_base"`
	Position     string                      `json:"position,omitempty"`
}

// BattingEventRecordRequestedPayloadV1 asks the processor to record a plate
// appearance. SelectedOutRunnerIDs designates 0-2 runners put out on a
// ground-ball play.
type BattingEventRecordRequestedPayloadV1 struct {
	Input                BattingEventInput `json:"input"`
	SelectedOutRunnerIDs []int64           `json:"selected_out_runner_ids,omitempty"`
}

// BattingEventRecordedPayloadV1 reports a successfully processed appearance.
type BattingEventRecordedPayloadV1 struct {
	GameID         sharedtypes.GameID  `json:"game_id"`
	Inning         int                 `json:"inning"`
	EventID        sharedtypes.EventID `json:"event_id"`
	Outs           int                 `json:"outs"`
	RunsScored     int                 `json:"runs_scored"`
	InningFinished bool                `json:"inning_finished"`
	OutsClamped    bool                `json:"outs_clamped"`
}

// BattingEventRecordFailedPayloadV1 reports a handled failure.
type BattingEventRecordFailedPayloadV1 struct {
	GameID sharedtypes.GameID `json:"game_id"`
	Inning int                `json:"inning"`
	Reason string             `json:"reason"`
}

// BattingEventCorrectRequestedPayloadV1 asks for a correction edit of an
// already recorded event; the engine re-runs against stored state.
type BattingEventCorrectRequestedPayloadV1 struct {
	EventID              sharedtypes.EventID `json:"event_id"`
	Input                BattingEventInput   `json:"input"`
	SelectedOutRunnerIDs []int64             `json:"selected_out_runner_ids,omitempty"`
}

// BattingEventCorrectedPayloadV1 reports a successful correction.
type BattingEventCorrectedPayloadV1 struct {
	GameID  sharedtypes.GameID  `json:"game_id"`
	Inning  int                 `json:"inning"`
	EventID sharedtypes.EventID `json:"event_id"`
}

// BattingEventCorrectFailedPayloadV1 reports a handled correction failure.
type BattingEventCorrectFailedPayloadV1 struct {
	EventID sharedtypes.EventID `json:"event_id"`
	Reason  string              `json:"reason"`
}

// InningRecomputeRequestedPayloadV1 asks for an idempotent recompute of one
// half-inning's derived aggregates from the stored event set.
type InningRecomputeRequestedPayloadV1 struct {
	GameID       sharedtypes.GameID `json:"game_id"`
	Inning       int                `json:"inning"`
	BattingFirst bool               `json:"batting_first"`
}

// InningRecomputedPayloadV1 reports recomputed aggregates.
type InningRecomputedPayloadV1 struct {
	GameID sharedtypes.GameID `json:"game_id"`
	Inning int                `json:"inning"`
	Runs   int                `json:"runs"`
	Outs   int                `json:"outs"`
}

// HalfInningFinalizedPayloadV1 announces a half-inning reaching three outs.
type HalfInningFinalizedPayloadV1 struct {
	GameID sharedtypes.GameID `json:"game_id"`
	Inning int                `json:"inning"`
	Runs   int                `json:"runs"`
}
