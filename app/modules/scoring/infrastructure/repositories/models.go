package scoringdb

import (
	"time"

	"github.com/uptrace/bun"

	scoringtypes "github.com/sandlot-league/scorebook/app/modules/scoring/domain/types"
	sharedtypes "github.com/sandlot-league/scorebook/app/shared/types"
)

// BattingEvent is the batting_events row.
type BattingEvent struct {
	bun.BaseModel `bun:"table:batting_events,alias:be"`

	ID             int64     `bun:"id,pk,autoincrement"`
	GameID         string    `bun:"game_id,notnull"`
	Inning         int       `bun:"inning,notnull"`
	BattingFirst   bool      `bun:"batting_first,notnull"`
	PlayerID       string    `bun:"player_id,notnull"`
	Result         string    `bun:"result,notnull"`
	HasError       bool      `bun:"has_error,notnull,default:false"`
	RBIs           int       `bun:"rbis,notnull,default:0"`
	RunScored      bool      `bun:"run_scored,notnull,default:false"`
	StolenBase     bool      `bun:"stolen_base,notnull,default:false"`
	BaseReached    int       `bun:"base_reached,notnull,default:0"`
	Position       string    `bun:"position"`
	OutRunnerCount int       `bun:"out_runner_count,notnull,default:0"`
	CreatedAt      time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// Runner is the runners row. Active runners on bases 1-3 form the occupancy
// set for one half-inning.
type Runner struct {
	bun.BaseModel `bun:"table:runners,alias:r"`

	ID         int64  `bun:"id,pk,autoincrement"`
	GameID     string `bun:"game_id,notnull"`
	Inning     int    `bun:"inning,notnull"`
	PlayerID   string `bun:"player_id,notnull"`
	PlayerName string `bun:"player_name"`
	Base       int    `bun:"base,notnull"`
	Active     bool   `bun:"active,notnull,default:true"`
}

// HalfInningScore is the half_inning_scores row, one per (game, inning).
type HalfInningScore struct {
	bun.BaseModel `bun:"table:half_inning_scores,alias:his"`

	ID               int64  `bun:"id,pk,autoincrement"`
	GameID           string `bun:"game_id,notnull"`
	Inning           int    `bun:"inning,notnull"`
	SideBattingFirst bool   `bun:"side_batting_first,notnull,default:true"`
	RunsFirst        int    `bun:"runs_first,notnull,default:0"`
	RunsSecond       int    `bun:"runs_second,notnull,default:0"`
}

func (e *BattingEvent) ToDomain() scoringtypes.BattingEvent {
	return scoringtypes.BattingEvent{
		ID:           sharedtypes.EventID(e.ID),
		GameID:       sharedtypes.GameID(e.GameID),
		Inning:       e.Inning,
		BattingFirst: e.BattingFirst,
		PlayerID:     e.PlayerID,
		Result:       scoringtypes.BattingResult(e.Result),
		HasError:     e.HasError,
		RBIs:         e.RBIs,
		RunScored:    e.RunScored,
		StolenBase:   e.StolenBase,
		BaseReached:  scoringtypes.BaseNumber(e.BaseReached),
		Annotation: scoringtypes.Annotation{
			Position:       e.Position,
			HasError:       e.HasError,
			OutRunnerCount: e.OutRunnerCount,
		},
		CreatedAt: e.CreatedAt,
	}
}

func EventFromDomain(e scoringtypes.BattingEvent) *BattingEvent {
	return &BattingEvent{
		ID:             int64(e.ID),
		GameID:         string(e.GameID),
		Inning:         e.Inning,
		BattingFirst:   e.BattingFirst,
		PlayerID:       e.PlayerID,
		Result:         string(e.Result),
		HasError:       e.HasError,
		RBIs:           e.RBIs,
		RunScored:      e.RunScored,
		StolenBase:     e.StolenBase,
		BaseReached:    int(e.BaseReached),
		Position:       e.Annotation.Position,
		OutRunnerCount: e.Annotation.OutRunnerCount,
		CreatedAt:      e.CreatedAt,
	}
}

func (r *Runner) ToDomain() scoringtypes.Runner {
	return scoringtypes.Runner{
		ID:         r.ID,
		GameID:     sharedtypes.GameID(r.GameID),
		Inning:     r.Inning,
		PlayerID:   r.PlayerID,
		PlayerName: r.PlayerName,
		Base:       scoringtypes.BaseNumber(r.Base),
		Active:     r.Active,
	}
}

func RunnerFromDomain(r scoringtypes.Runner) *Runner {
	return &Runner{
		ID:         r.ID,
		GameID:     string(r.GameID),
		Inning:     r.Inning,
		PlayerID:   r.PlayerID,
		PlayerName: r.PlayerName,
		Base:       int(r.Base),
		Active:     r.Active,
	}
}

func (s *HalfInningScore) ToDomain() scoringtypes.HalfInningScore {
	return scoringtypes.HalfInningScore{
		ID:               s.ID,
		GameID:           sharedtypes.GameID(s.GameID),
		Inning:           s.Inning,
		SideBattingFirst: s.SideBattingFirst,
		RunsFirst:        s.RunsFirst,
		RunsSecond:       s.RunsSecond,
	}
}
