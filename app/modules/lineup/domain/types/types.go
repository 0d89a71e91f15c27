// Package lineuptypes holds the lineup domain model: slots, substitutes,
// fielding positions, and the saved default template.
package lineuptypes

import (
	"time"

	sharedtypes "github.com/sandlot-league/scorebook/app/shared/types"
)

// FieldingPosition is a fielding position code. The designated hitter bats
// without taking a fielding position.
type FieldingPosition string

const (
	PositionNone             FieldingPosition = ""
	PositionPitcher          FieldingPosition = "P"
	PositionCatcher          FieldingPosition = "C"
	PositionFirstBase        FieldingPosition = "1B"
	PositionSecondBase       FieldingPosition = "2B"
	PositionThirdBase        FieldingPosition = "3B"
	PositionShortstop        FieldingPosition = "SS"
	PositionLeftField        FieldingPosition = "LF"
	PositionCenterField      FieldingPosition = "CF"
	PositionRightField       FieldingPosition = "RF"
	PositionDesignatedHitter FieldingPosition = "DH"
)

// FieldingPositions lists every assignable position in display order.
var FieldingPositions = []FieldingPosition{
	PositionPitcher,
	PositionCatcher,
	PositionFirstBase,
	PositionSecondBase,
	PositionThirdBase,
	PositionShortstop,
	PositionLeftField,
	PositionCenterField,
	PositionRightField,
	PositionDesignatedHitter,
}

// IsValid reports whether p is a known position code or empty.
func (p FieldingPosition) IsValid() bool {
	if p == PositionNone {
		return true
	}
	for _, known := range FieldingPositions {
		if p == known {
			return true
		}
	}
	return false
}

// Batting order bounds. Slot ten exists only when the designated hitter is
// in use.
const (
	MinOrder = 1
	MaxOrder = 9
	DHOrder  = 10
)

// Member is a registered team member a slot or substitute can reference.
type Member struct {
	ID          sharedtypes.MemberID `json:"id"`
	DisplayName string               `json:"display_name"`
}

// LineupSlot is one batting-order entry. MemberID and a free-text
// PlayerName are mutually exclusive: assigning one clears the other.
type LineupSlot struct {
	Order      int                  `json:"order"`
	MemberID   sharedtypes.MemberID `json:"member_id,omitempty"`
	PlayerName string               `json:"player_name"`
	Position   FieldingPosition     `json:"position"`
}

// IsEmpty reports whether the slot has neither a member nor a name.
func (s LineupSlot) IsEmpty() bool {
	return s.MemberID == "" && s.PlayerName == ""
}

// Substitute is an unordered bench entry with no fielding position.
type Substitute struct {
	MemberID   sharedtypes.MemberID `json:"member_id,omitempty"`
	PlayerName string               `json:"player_name"`
}

// Lineup is one team's starters plus substitute pool for a game.
type Lineup struct {
	GameID      sharedtypes.GameID `json:"game_id"`
	TeamID      sharedtypes.TeamID `json:"team_id"`
	UseDH       bool               `json:"use_dh"`
	Starters    []LineupSlot       `json:"starters"`
	Substitutes []Substitute       `json:"substitutes"`
}

// DefaultLineupTemplate is the team-scoped saved copy of the most recent
// starting lineup, used to pre-fill a new game. At most one per team,
// fully replaced on each save.
type DefaultLineupTemplate struct {
	TeamID      sharedtypes.TeamID `json:"team_id"`
	UseDH       bool               `json:"use_dh"`
	Starters    []LineupSlot       `json:"starters"`
	Substitutes []Substitute       `json:"substitutes"`
	UpdatedAt   time.Time          `json:"updated_at"`
}
