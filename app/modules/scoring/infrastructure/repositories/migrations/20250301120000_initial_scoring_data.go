package scoringmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	scoringdb "github.com/sandlot-league/scorebook/app/modules/scoring/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating scoring tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.NewCreateTable().Model((*scoringdb.BattingEvent)(nil)).IfNotExists().Exec(ctx); err != nil {
				return fmt.Errorf("failed to create batting_events: %w", err)
			}
			if _, err := tx.NewCreateTable().Model((*scoringdb.Runner)(nil)).IfNotExists().Exec(ctx); err != nil {
				return fmt.Errorf("failed to create runners: %w", err)
			}
			if _, err := tx.NewCreateTable().Model((*scoringdb.HalfInningScore)(nil)).IfNotExists().Exec(ctx); err != nil {
				return fmt.Errorf("failed to create half_inning_scores: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE UNIQUE INDEX IF NOT EXISTS idx_half_inning_scores_game_inning
					ON half_inning_scores(game_id, inning);
			`); err != nil {
				return fmt.Errorf("failed to add unique index to half_inning_scores: %w", err)
			}
			if _, err := tx.ExecContext(ctx, `
				CREATE INDEX IF NOT EXISTS idx_batting_events_game_inning
					ON batting_events(game_id, inning);
			`); err != nil {
				return fmt.Errorf("failed to add index to batting_events: %w", err)
			}
			if _, err := tx.ExecContext(ctx, `
				CREATE INDEX IF NOT EXISTS idx_runners_game_inning_active
					ON runners(game_id, inning, active);
			`); err != nil {
				return fmt.Errorf("failed to add index to runners: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping scoring tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.NewDropTable().Model((*scoringdb.HalfInningScore)(nil)).IfExists().Exec(ctx); err != nil {
				return err
			}
			if _, err := tx.NewDropTable().Model((*scoringdb.Runner)(nil)).IfExists().Exec(ctx); err != nil {
				return err
			}
			if _, err := tx.NewDropTable().Model((*scoringdb.BattingEvent)(nil)).IfExists().Exec(ctx); err != nil {
				return err
			}
			return nil
		})
	})
}
