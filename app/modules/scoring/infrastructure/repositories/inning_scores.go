package scoringdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	scoringtypes "github.com/sandlot-league/scorebook/app/modules/scoring/domain/types"
	sharedtypes "github.com/sandlot-league/scorebook/app/shared/types"
)

// UpsertHalfInningScore writes the recomputed run total for one side of an
// inning. The row is keyed (game_id, inning); runs land in the first or
// second side column based on battingFirst.
func (r *ScoringDBImpl) UpsertHalfInningScore(ctx context.Context, db bun.IDB, gameID sharedtypes.GameID, inning int, battingFirst bool, runs int) error {
	row := &HalfInningScore{
		GameID:           string(gameID),
		Inning:           inning,
		SideBattingFirst: battingFirst,
	}
	runsColumn := "runs_second"
	if battingFirst {
		row.RunsFirst = runs
		runsColumn = "runs_first"
	} else {
		row.RunsSecond = runs
	}

	_, err := db.NewInsert().
		Model(row).
		On("CONFLICT (game_id, inning) DO UPDATE").
		Set(runsColumn + " = EXCLUDED." + runsColumn).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert half-inning score for game %s inning %d: %w", gameID, inning, err)
	}
	return nil
}

func (r *ScoringDBImpl) GetHalfInningScore(ctx context.Context, db bun.IDB, gameID sharedtypes.GameID, inning int) (*scoringtypes.HalfInningScore, error) {
	var row HalfInningScore
	err := db.NewSelect().
		Model(&row).
		Where("game_id = ?", string(gameID)).
		Where("inning = ?", inning).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch half-inning score for game %s inning %d: %w", gameID, inning, err)
	}
	score := row.ToDomain()
	return &score, nil
}

func (r *ScoringDBImpl) GetScoresForGame(ctx context.Context, db bun.IDB, gameID sharedtypes.GameID) ([]scoringtypes.HalfInningScore, error) {
	var rows []HalfInningScore
	err := db.NewSelect().
		Model(&rows).
		Where("game_id = ?", string(gameID)).
		Order("inning ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scores for game %s: %w", gameID, err)
	}
	scores := make([]scoringtypes.HalfInningScore, 0, len(rows))
	for i := range rows {
		scores = append(scores, rows[i].ToDomain())
	}
	return scores, nil
}

func (r *ScoringDBImpl) DeleteScoresForGame(ctx context.Context, db bun.IDB, gameID sharedtypes.GameID) error {
	_, err := db.NewDelete().
		Model((*HalfInningScore)(nil)).
		Where("game_id = ?", string(gameID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete scores for game %s: %w", gameID, err)
	}
	return nil
}
