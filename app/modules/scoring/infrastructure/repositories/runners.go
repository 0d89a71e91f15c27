package scoringdb

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	scoringtypes "github.com/sandlot-league/scorebook/app/modules/scoring/domain/types"
	sharedtypes "github.com/sandlot-league/scorebook/app/shared/types"
)

// UpsertRunner creates the runner entry, replacing any stale entry for the
// same player and inning so a batter never occupies two bases at once.
func (r *ScoringDBImpl) UpsertRunner(ctx context.Context, db bun.IDB, runner *scoringtypes.Runner) error {
	_, err := db.NewDelete().
		Model((*Runner)(nil)).
		Where("game_id = ?", string(runner.GameID)).
		Where("inning = ?", runner.Inning).
		Where("player_id = ?", runner.PlayerID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear stale runner entry for player %s: %w", runner.PlayerID, err)
	}

	row := RunnerFromDomain(*runner)
	row.ID = 0
	if _, err := db.NewInsert().Model(row).Returning("id").Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert runner for game %s: %w", runner.GameID, err)
	}
	runner.ID = row.ID
	return nil
}

func (r *ScoringDBImpl) GetActiveRunners(ctx context.Context, db bun.IDB, gameID sharedtypes.GameID, inning int) ([]scoringtypes.Runner, error) {
	var rows []Runner
	err := db.NewSelect().
		Model(&rows).
		Where("game_id = ?", string(gameID)).
		Where("inning = ?", inning).
		Where("active = TRUE").
		Order("base ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active runners for game %s inning %d: %w", gameID, inning, err)
	}
	runners := make([]scoringtypes.Runner, 0, len(rows))
	for i := range rows {
		runners = append(runners, rows[i].ToDomain())
	}
	return runners, nil
}

func (r *ScoringDBImpl) UpdateRunnerBase(ctx context.Context, db bun.IDB, runnerID int64, base scoringtypes.BaseNumber) error {
	res, err := db.NewUpdate().
		Model((*Runner)(nil)).
		Set("base = ?", int(base)).
		Where("id = ?", runnerID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update base for runner %d: %w", runnerID, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

func (r *ScoringDBImpl) DeactivateRunner(ctx context.Context, db bun.IDB, runnerID int64) error {
	res, err := db.NewUpdate().
		Model((*Runner)(nil)).
		Set("active = FALSE").
		Where("id = ?", runnerID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to deactivate runner %d: %w", runnerID, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// DeactivateRunnersForInning clears base state when a half-inning finalizes.
func (r *ScoringDBImpl) DeactivateRunnersForInning(ctx context.Context, db bun.IDB, gameID sharedtypes.GameID, inning int) error {
	_, err := db.NewUpdate().
		Model((*Runner)(nil)).
		Set("active = FALSE").
		Where("game_id = ?", string(gameID)).
		Where("inning = ?", inning).
		Where("active = TRUE").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to deactivate runners for game %s inning %d: %w", gameID, inning, err)
	}
	return nil
}

func (r *ScoringDBImpl) DeleteRunnersForGame(ctx context.Context, db bun.IDB, gameID sharedtypes.GameID) error {
	_, err := db.NewDelete().
		Model((*Runner)(nil)).
		Where("game_id = ?", string(gameID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete runners for game %s: %w", gameID, err)
	}
	return nil
}
