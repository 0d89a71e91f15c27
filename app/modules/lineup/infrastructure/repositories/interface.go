package lineupdb

import (
	"context"

	"github.com/uptrace/bun"

	lineuptypes "github.com/sandlot-league/scorebook/app/modules/lineup/domain/types"
	sharedtypes "github.com/sandlot-league/scorebook/app/shared/types"
)

// Repository is the Record Store surface for the lineup module. Every
// method takes a bun.IDB so saves can run inside one transaction.
type Repository interface {
	// GetGamePlayers reads the starters and substitute pool one team has
	// stored for a game.
	GetGamePlayers(ctx context.Context, db bun.IDB, gameID sharedtypes.GameID, teamID sharedtypes.TeamID) ([]lineuptypes.LineupSlot, []lineuptypes.Substitute, error)
	// ReplaceGamePlayers deletes the team's player records for the game and
	// inserts the given set wholesale.
	ReplaceGamePlayers(ctx context.Context, db bun.IDB, gameID sharedtypes.GameID, teamID sharedtypes.TeamID, starters []lineuptypes.LineupSlot, subs []lineuptypes.Substitute) error
	DeleteGamePlayersForGame(ctx context.Context, db bun.IDB, gameID sharedtypes.GameID) error

	// Templates, at most one per team, fully replaced on save.
	GetTemplate(ctx context.Context, db bun.IDB, teamID sharedtypes.TeamID) (*lineuptypes.DefaultLineupTemplate, error)
	UpsertTemplate(ctx context.Context, db bun.IDB, template *lineuptypes.DefaultLineupTemplate) error
	DeleteTemplate(ctx context.Context, db bun.IDB, teamID sharedtypes.TeamID) error
}
