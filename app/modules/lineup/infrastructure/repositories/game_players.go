package lineupdb

import (
	"context"
	"fmt"
	"sort"

	"github.com/uptrace/bun"

	lineuptypes "github.com/sandlot-league/scorebook/app/modules/lineup/domain/types"
	sharedtypes "github.com/sandlot-league/scorebook/app/shared/types"
)

// LineupDBImpl is the bun implementation of the lineup Repository.
type LineupDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*LineupDBImpl)(nil)

// GetGamePlayers reads a team's stored starters and substitutes for a game.
func (db *LineupDBImpl) GetGamePlayers(ctx context.Context, idb bun.IDB, gameID sharedtypes.GameID, teamID sharedtypes.TeamID) ([]lineuptypes.LineupSlot, []lineuptypes.Substitute, error) {
	var rows []GamePlayer
	err := idb.NewSelect().
		Model(&rows).
		Where("game_id = ?", string(gameID)).
		Where("team_id = ?", string(teamID)).
		Order("batting_order ASC").
		Scan(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get game players: %w", err)
	}

	var starters []lineuptypes.LineupSlot
	var subs []lineuptypes.Substitute
	for i := range rows {
		if rows[i].IsSubstitute {
			subs = append(subs, rows[i].ToSubstitute())
			continue
		}
		starters = append(starters, rows[i].ToSlot())
	}
	sort.Slice(starters, func(i, j int) bool { return starters[i].Order < starters[j].Order })
	return starters, subs, nil
}

// ReplaceGamePlayers deletes the team's player records for the game and
// writes the given set. Callers run it inside a transaction so a failed
// insert never leaves the game without a lineup.
func (db *LineupDBImpl) ReplaceGamePlayers(ctx context.Context, idb bun.IDB, gameID sharedtypes.GameID, teamID sharedtypes.TeamID, starters []lineuptypes.LineupSlot, subs []lineuptypes.Substitute) error {
	_, err := idb.NewDelete().
		Model((*GamePlayer)(nil)).
		Where("game_id = ?", string(gameID)).
		Where("team_id = ?", string(teamID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear game players: %w", err)
	}

	rows := make([]GamePlayer, 0, len(starters)+len(subs))
	for _, slot := range starters {
		rows = append(rows, GamePlayer{
			GameID:       string(gameID),
			TeamID:       string(teamID),
			BattingOrder: slot.Order,
			MemberID:     string(slot.MemberID),
			PlayerName:   slot.PlayerName,
			Position:     string(slot.Position),
		})
	}
	for _, sub := range subs {
		rows = append(rows, GamePlayer{
			GameID:       string(gameID),
			TeamID:       string(teamID),
			MemberID:     string(sub.MemberID),
			PlayerName:   sub.PlayerName,
			IsSubstitute: true,
		})
	}
	if len(rows) == 0 {
		return nil
	}

	if _, err := idb.NewInsert().Model(&rows).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert game players: %w", err)
	}
	return nil
}

// DeleteGamePlayersForGame removes every team's player records for a game.
func (db *LineupDBImpl) DeleteGamePlayersForGame(ctx context.Context, idb bun.IDB, gameID sharedtypes.GameID) error {
	_, err := idb.NewDelete().
		Model((*GamePlayer)(nil)).
		Where("game_id = ?", string(gameID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete game players: %w", err)
	}
	return nil
}
