// Package scoringtypes holds the live-scoring domain model: batting events,
// base runners, half-inning scores, and the pure rules that connect them.
package scoringtypes

import (
	"strings"
	"time"

	sharedtypes "github.com/sandlot-league/scorebook/app/shared/types"
)

// BaseNumber is a base reached on a play. 0 means the batter never reached,
// 1-3 are the bases, 4 is home (a run).
type BaseNumber int

const (
	BaseNone   BaseNumber = 0
	BaseFirst  BaseNumber = 1
	BaseSecond BaseNumber = 2
	BaseThird  BaseNumber = 3
	BaseHome   BaseNumber = 4
)

// BattingResult is the scorer-entered outcome of a plate appearance.
type BattingResult string

const (
	ResultHit            BattingResult = "HIT"
	ResultDouble         BattingResult = "DOUBLE"
	ResultTriple         BattingResult = "TRIPLE"
	ResultHomeRun        BattingResult = "HOME_RUN"
	ResultWalk           BattingResult = "WALK"
	ResultHitByPitch     BattingResult = "HIT_BY_PITCH"
	ResultFieldersChoice BattingResult = "FIELDERS_CHOICE"
	ResultStrikeout      BattingResult = "STRIKEOUT"
	ResultGroundout      BattingResult = "GROUNDOUT"
	ResultFlyout         BattingResult = "FLYOUT"
	ResultLineout        BattingResult = "LINEOUT"
	ResultSacrificeBunt  BattingResult = "SACRIFICE_BUNT"
	ResultSacrificeFly   BattingResult = "SACRIFICE_FLY"
)

// IsValid reports whether the result label is one the classifier understands.
func (r BattingResult) IsValid() bool {
	switch r {
	case ResultHit, ResultDouble, ResultTriple, ResultHomeRun,
		ResultWalk, ResultHitByPitch, ResultFieldersChoice,
		ResultStrikeout, ResultGroundout, ResultFlyout, ResultLineout,
		ResultSacrificeBunt, ResultSacrificeFly:
		return true
	}
	return false
}

// IsGroundBallOut reports whether the result is a ground-ball-type out on
// which trailing runners can be doubled off (double/triple play selection).
func (r BattingResult) IsGroundBallOut() bool {
	switch r {
	case ResultGroundout, ResultFieldersChoice, ResultSacrificeBunt:
		return true
	}
	return false
}

// Annotation is the structured play annotation stored with a batting event.
// Display text is derived from it; nothing parses the display string back.
type Annotation struct {
	Position       string `json:"position,omitempty"`
	HasError       bool   `json:"has_error"`
	OutRunnerCount int    `json:"out_runner_count"`
}

// DisplayTags renders the annotation as the comma-joined tag list shown to
// scorers: position code first, then "error", then the play tag.
func (a Annotation) DisplayTags() string {
	tags := make([]string, 0, 3)
	if a.Position != "" {
		tags = append(tags, a.Position)
	}
	if a.HasError {
		tags = append(tags, "error")
	}
	switch a.OutRunnerCount {
	case 1:
		tags = append(tags, "double play")
	case 2:
		tags = append(tags, "triple play")
	}
	return strings.Join(tags, ",")
}

// BattingEvent is one recorded plate appearance.
type BattingEvent struct {
	ID           sharedtypes.EventID `json:"id"`
	GameID       sharedtypes.GameID  `json:"game_id"`
	Inning       int                 `json:"inning"`
	BattingFirst bool                `json:"batting_first"`
	PlayerID     string              `json:"player_id"`
	Result       BattingResult       `json:"result"`
	HasError     bool                `json:"has_error"`
	RBIs         int                 `json:"rbis"`
	RunScored    bool                `json:"run_scored"`
	StolenBase   bool                `json:"stolen_base"`
	BaseReached  BaseNumber          `json:"base_reached"`
	Annotation   Annotation          `json:"annotation"`
	CreatedAt    time.Time           `json:"created_at"`
}

// Runner is an active base runner for one half-inning.
type Runner struct {
	ID         int64              `json:"id"`
	GameID     sharedtypes.GameID `json:"game_id"`
	Inning     int                `json:"inning"`
	PlayerID   string             `json:"player_id"`
	PlayerName string             `json:"player_name"`
	Base       BaseNumber         `json:"base"`
	Active     bool               `json:"active"`
}

// RunnerUpdate is one runner's movement produced by the advancement engine.
type RunnerUpdate struct {
	RunnerID int64      `json:"runner_id"`
	PlayerID string     `json:"player_id"`
	NewBase  BaseNumber `json:"new_base"`
	Scored   bool       `json:"scored"`
}

// HalfInningScore is the per-inning line score row. Runs are recomputed from
// the event set, never decremented.
type HalfInningScore struct {
	ID               int64              `json:"id"`
	GameID           sharedtypes.GameID `json:"game_id"`
	Inning           int                `json:"inning"`
	SideBattingFirst bool               `json:"side_batting_first"`
	RunsFirst        int                `json:"runs_first"`
	RunsSecond       int                `json:"runs_second"`
}

// GameState is the derived view of one half-inning returned to clients.
type GameState struct {
	GameID  sharedtypes.GameID `json:"game_id"`
	Inning  int                `json:"inning"`
	Outs    int                `json:"outs"`
	Runners []Runner           `json:"runners"`
	Scores  []HalfInningScore  `json:"scores"`
}
