package lineupdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	lineuptypes "github.com/sandlot-league/scorebook/app/modules/lineup/domain/types"
	sharedtypes "github.com/sandlot-league/scorebook/app/shared/types"
)

// GetTemplate reads the team's default lineup template.
func (db *LineupDBImpl) GetTemplate(ctx context.Context, idb bun.IDB, teamID sharedtypes.TeamID) (*lineuptypes.DefaultLineupTemplate, error) {
	row := new(LineupTemplate)
	err := idb.NewSelect().
		Model(row).
		Where("team_id = ?", string(teamID)).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get lineup template: %w", err)
	}
	return row.ToDomain(), nil
}

// UpsertTemplate fully replaces the team's template. Last write wins.
func (db *LineupDBImpl) UpsertTemplate(ctx context.Context, idb bun.IDB, template *lineuptypes.DefaultLineupTemplate) error {
	row := &LineupTemplate{
		TeamID:      string(template.TeamID),
		UseDH:       template.UseDH,
		Starters:    template.Starters,
		Substitutes: template.Substitutes,
		UpdatedAt:   time.Now(),
	}
	_, err := idb.NewInsert().
		Model(row).
		On("CONFLICT (team_id) DO UPDATE").
		Set("use_dh = EXCLUDED.use_dh").
		Set("starters = EXCLUDED.starters").
		Set("substitutes = EXCLUDED.substitutes").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert lineup template: %w", err)
	}
	return nil
}

// DeleteTemplate removes the team's template.
func (db *LineupDBImpl) DeleteTemplate(ctx context.Context, idb bun.IDB, teamID sharedtypes.TeamID) error {
	res, err := idb.NewDelete().
		Model((*LineupTemplate)(nil)).
		Where("team_id = ?", string(teamID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete lineup template: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNoRowsAffected
	}
	return nil
}
