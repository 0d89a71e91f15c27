package lineupdb

import (
	"time"

	"github.com/uptrace/bun"

	lineuptypes "github.com/sandlot-league/scorebook/app/modules/lineup/domain/types"
	sharedtypes "github.com/sandlot-league/scorebook/app/shared/types"
)

// GamePlayer is the game_players row: one starter slot or substitute entry
// for one team in one game. Substitutes carry order 0 and no position.
type GamePlayer struct {
	bun.BaseModel `bun:"table:game_players,alias:gp"`

	ID           int64     `bun:"id,pk,autoincrement"`
	GameID       string    `bun:"game_id,notnull"`
	TeamID       string    `bun:"team_id,notnull"`
	BattingOrder int       `bun:"batting_order,notnull,default:0"`
	MemberID     string    `bun:"member_id"`
	PlayerName   string    `bun:"player_name"`
	Position     string    `bun:"position"`
	IsSubstitute bool      `bun:"is_substitute,notnull,default:false"`
	CreatedAt    time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// LineupTemplate is the lineup_templates row, at most one per team. Slots
// and substitutes are stored as JSON documents and fully replaced on save.
type LineupTemplate struct {
	bun.BaseModel `bun:"table:lineup_templates,alias:lt"`

	ID          int64                    `bun:"id,pk,autoincrement"`
	TeamID      string                   `bun:"team_id,notnull,unique"`
	UseDH       bool                     `bun:"use_dh,notnull,default:false"`
	Starters    []lineuptypes.LineupSlot `bun:"starters,type:jsonb"`
	Substitutes []lineuptypes.Substitute `bun:"substitutes,type:jsonb"`
	UpdatedAt   time.Time                `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func (p *GamePlayer) ToSlot() lineuptypes.LineupSlot {
	return lineuptypes.LineupSlot{
		Order:      p.BattingOrder,
		MemberID:   sharedtypes.MemberID(p.MemberID),
		PlayerName: p.PlayerName,
		Position:   lineuptypes.FieldingPosition(p.Position),
	}
}

func (p *GamePlayer) ToSubstitute() lineuptypes.Substitute {
	return lineuptypes.Substitute{
		MemberID:   sharedtypes.MemberID(p.MemberID),
		PlayerName: p.PlayerName,
	}
}

func (t *LineupTemplate) ToDomain() *lineuptypes.DefaultLineupTemplate {
	return &lineuptypes.DefaultLineupTemplate{
		TeamID:      sharedtypes.TeamID(t.TeamID),
		UseDH:       t.UseDH,
		Starters:    t.Starters,
		Substitutes: t.Substitutes,
		UpdatedAt:   t.UpdatedAt,
	}
}
