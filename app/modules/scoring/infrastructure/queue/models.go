package scoringqueue

import (
	sharedtypes "github.com/sandlot-league/scorebook/app/shared/types"
)

// InningRecomputeJob rebuilds one half-inning's derived aggregates in the
// background. Enqueued after correction edits so concurrent edits converge
// on the stored event set.
type InningRecomputeJob struct {
	GameID       sharedtypes.GameID `json:"game_id"`
	Inning       int                `json:"inning"`
	BattingFirst bool               `json:"batting_first"`
}

// Kind returns the job type identifier for River.
func (InningRecomputeJob) Kind() string { return "inning_recompute" }
