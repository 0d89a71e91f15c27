// Package lineupevents defines the versioned topics and payloads the
// lineup module consumes and emits.
package lineupevents

import (
	lineuptypes "github.com/sandlot-league/scorebook/app/modules/lineup/domain/types"
	sharedtypes "github.com/sandlot-league/scorebook/app/shared/types"
)

const (
	LineupSaveRequestedV1 = "lineup.save.requested.v1"
	LineupSavedV1         = "lineup.saved.v1"
	LineupSaveFailedV1    = "lineup.save.failed.v1"

	LineupImportRequestedV1 = "lineup.import.requested.v1"
	LineupImportedV1        = "lineup.imported.v1"
	LineupImportFailedV1    = "lineup.import.failed.v1"
)

// LineupSaveRequestedPayloadV1 asks the engine to validate and persist a
// full lineup for a game.
type LineupSaveRequestedPayloadV1 struct {
	Lineup lineuptypes.Lineup `json:"lineup"`
}

// LineupSavedPayloadV1 reports a persisted lineup. TemplateSaved is false
// when the game records were written but the team template overwrite
// failed.
type LineupSavedPayloadV1 struct {
	GameID        sharedtypes.GameID `json:"game_id"`
	TeamID        sharedtypes.TeamID `json:"team_id"`
	StarterCount  int                `json:"starter_count"`
	TemplateSaved bool               `json:"template_saved"`
}

// LineupSaveFailedPayloadV1 reports a handled save failure.
type LineupSaveFailedPayloadV1 struct {
	GameID sharedtypes.GameID `json:"game_id"`
	TeamID sharedtypes.TeamID `json:"team_id"`
	Reason string             `json:"reason"`
}

// LineupImportRequestedPayloadV1 carries an uploaded lineup sheet to parse
// into slots and substitutes. Content is the raw file body.
type LineupImportRequestedPayloadV1 struct {
	GameID   sharedtypes.GameID `json:"game_id"`
	TeamID   sharedtypes.TeamID `json:"team_id"`
	Filename string             `json:"filename"`
	Content  []byte             `json:"content"`
	UseDH    bool               `json:"use_dh"`
}

// LineupImportedPayloadV1 reports the parsed lineup; it is not persisted
// until the scorer confirms with a save.
type LineupImportedPayloadV1 struct {
	Lineup lineuptypes.Lineup `json:"lineup"`
}

// LineupImportFailedPayloadV1 reports a handled import failure.
type LineupImportFailedPayloadV1 struct {
	GameID   sharedtypes.GameID `json:"game_id"`
	Filename string             `json:"filename"`
	Reason   string             `json:"reason"`
}
