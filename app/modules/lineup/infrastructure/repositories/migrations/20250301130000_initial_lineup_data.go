package lineupmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	lineupdb "github.com/sandlot-league/scorebook/app/modules/lineup/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating lineup tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.NewCreateTable().Model((*lineupdb.GamePlayer)(nil)).IfNotExists().Exec(ctx); err != nil {
				return fmt.Errorf("failed to create game_players: %w", err)
			}
			if _, err := tx.NewCreateTable().Model((*lineupdb.LineupTemplate)(nil)).IfNotExists().Exec(ctx); err != nil {
				return fmt.Errorf("failed to create lineup_templates: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE INDEX IF NOT EXISTS idx_game_players_game_team
					ON game_players(game_id, team_id);
			`); err != nil {
				return fmt.Errorf("failed to add index to game_players: %w", err)
			}
			if _, err := tx.ExecContext(ctx, `
				CREATE UNIQUE INDEX IF NOT EXISTS idx_lineup_templates_team
					ON lineup_templates(team_id);
			`); err != nil {
				return fmt.Errorf("failed to add unique index to lineup_templates: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping lineup tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.NewDropTable().Model((*lineupdb.LineupTemplate)(nil)).IfExists().Exec(ctx); err != nil {
				return err
			}
			if _, err := tx.NewDropTable().Model((*lineupdb.GamePlayer)(nil)).IfExists().Exec(ctx); err != nil {
				return err
			}
			return nil
		})
	})
}
