package scoringdb

import (
	"context"

	"github.com/uptrace/bun"

	scoringtypes "github.com/sandlot-league/scorebook/app/modules/scoring/domain/types"
	sharedtypes "github.com/sandlot-league/scorebook/app/shared/types"
)

// Repository is the Record Store surface for the scoring module. Every
// method takes a bun.IDB so the processor can run its multi-step sequence
// inside one transaction.
type Repository interface {
	// Batting events.
	CreateEvent(ctx context.Context, db bun.IDB, event *scoringtypes.BattingEvent) error
	GetEvent(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) (*scoringtypes.BattingEvent, error)
	GetEventsForInning(ctx context.Context, db bun.IDB, gameID sharedtypes.GameID, inning int, battingFirst bool) ([]scoringtypes.BattingEvent, error)
	UpdateEvent(ctx context.Context, db bun.IDB, event *scoringtypes.BattingEvent) error
	MarkRunScored(ctx context.Context, db bun.IDB, gameID sharedtypes.GameID, inning int, playerID string) error
	DeleteEvent(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) error
	DeleteEventsForGame(ctx context.Context, db bun.IDB, gameID sharedtypes.GameID) error

	// Runners.
	UpsertRunner(ctx context.Context, db bun.IDB, runner *scoringtypes.Runner) error
	GetActiveRunners(ctx context.Context, db bun.IDB, gameID sharedtypes.GameID, inning int) ([]scoringtypes.Runner, error)
	UpdateRunnerBase(ctx context.Context, db bun.IDB, runnerID int64, base scoringtypes.BaseNumber) error
	DeactivateRunner(ctx context.Context, db bun.IDB, runnerID int64) error
	DeactivateRunnersForInning(ctx context.Context, db bun.IDB, gameID sharedtypes.GameID, inning int) error
	DeleteRunnersForGame(ctx context.Context, db bun.IDB, gameID sharedtypes.GameID) error

	// Half-inning scores.
	UpsertHalfInningScore(ctx context.Context, db bun.IDB, gameID sharedtypes.GameID, inning int, battingFirst bool, runs int) error
	GetHalfInningScore(ctx context.Context, db bun.IDB, gameID sharedtypes.GameID, inning int) (*scoringtypes.HalfInningScore, error)
	GetScoresForGame(ctx context.Context, db bun.IDB, gameID sharedtypes.GameID) ([]scoringtypes.HalfInningScore, error)
	DeleteScoresForGame(ctx context.Context, db bun.IDB, gameID sharedtypes.GameID) error
}
