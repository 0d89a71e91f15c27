package lineupservice

import (
	"context"

	lineuptypes "github.com/sandlot-league/scorebook/app/modules/lineup/domain/types"
	lineupevents "github.com/sandlot-league/scorebook/app/modules/lineup/events"
	"github.com/sandlot-league/scorebook/app/shared/results"
	sharedtypes "github.com/sandlot-league/scorebook/app/shared/types"
)

// Result aliases for the service operations.
type (
	SaveLineupResult   = results.OperationResult[lineupevents.LineupSavedPayloadV1, lineupevents.LineupSaveFailedPayloadV1]
	ImportLineupResult = results.OperationResult[lineupevents.LineupImportedPayloadV1, lineupevents.LineupImportFailedPayloadV1]
)

// Service is the lineup assignment engine's persistence-facing surface.
type Service interface {
	// GetLineup assembles a game's lineup: game records first, then the
	// team's default template, then empty slots.
	GetLineup(ctx context.Context, gameID sharedtypes.GameID, teamID sharedtypes.TeamID, useDH bool) (*lineuptypes.Lineup, error)

	// SaveLineup validates and persists a full lineup: game-scoped player
	// records are replaced wholesale, then the team template is overwritten
	// with the same values. A template failure is reported in the success
	// payload, never rolled back.
	SaveLineup(ctx context.Context, lineup lineuptypes.Lineup) (SaveLineupResult, error)

	// ImportLineup parses an uploaded lineup sheet into slots and
	// substitutes without persisting them.
	ImportLineup(ctx context.Context, payload lineupevents.LineupImportRequestedPayloadV1) (ImportLineupResult, error)

	// GetTemplate reads the team's default lineup template; nil when the
	// team has none saved yet.
	GetTemplate(ctx context.Context, teamID sharedtypes.TeamID) (*lineuptypes.DefaultLineupTemplate, error)
}
