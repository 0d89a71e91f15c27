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

// ScoringDBImpl implements Repository on top of bun/Postgres.
type ScoringDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*ScoringDBImpl)(nil)

func (r *ScoringDBImpl) CreateEvent(ctx context.Context, db bun.IDB, event *scoringtypes.BattingEvent) error {
	row := EventFromDomain(*event)
	if _, err := db.NewInsert().Model(row).Returning("id, created_at").Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert batting event for game %s: %w", event.GameID, err)
	}
	event.ID = sharedtypes.EventID(row.ID)
	event.CreatedAt = row.CreatedAt
	return nil
}

func (r *ScoringDBImpl) GetEvent(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) (*scoringtypes.BattingEvent, error) {
	var row BattingEvent
	err := db.NewSelect().
		Model(&row).
		Where("id = ?", int64(eventID)).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch batting event %d: %w", eventID, err)
	}
	event := row.ToDomain()
	return &event, nil
}

func (r *ScoringDBImpl) GetEventsForInning(ctx context.Context, db bun.IDB, gameID sharedtypes.GameID, inning int, battingFirst bool) ([]scoringtypes.BattingEvent, error) {
	var rows []BattingEvent
	err := db.NewSelect().
		Model(&rows).
		Where("game_id = ?", string(gameID)).
		Where("inning = ?", inning).
		Where("batting_first = ?", battingFirst).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch batting events for game %s inning %d: %w", gameID, inning, err)
	}
	events := make([]scoringtypes.BattingEvent, 0, len(rows))
	for i := range rows {
		events = append(events, rows[i].ToDomain())
	}
	return events, nil
}

func (r *ScoringDBImpl) UpdateEvent(ctx context.Context, db bun.IDB, event *scoringtypes.BattingEvent) error {
	row := EventFromDomain(*event)
	res, err := db.NewUpdate().
		Model(row).
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update batting event %d: %w", event.ID, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// MarkRunScored sets the run-scored flag on the player's most recent batting
// event for the inning, attributing the run to the runner's own record.
func (r *ScoringDBImpl) MarkRunScored(ctx context.Context, db bun.IDB, gameID sharedtypes.GameID, inning int, playerID string) error {
	var latest BattingEvent
	err := db.NewSelect().
		Model(&latest).
		Where("game_id = ?", string(gameID)).
		Where("inning = ?", inning).
		Where("player_id = ?", playerID).
		Order("id DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to find batting event for runner %s inning %d: %w", playerID, inning, err)
	}

	_, err = db.NewUpdate().
		Model((*BattingEvent)(nil)).
		Set("run_scored = TRUE").
		Where("id = ?", latest.ID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark run scored on event %d: %w", latest.ID, err)
	}
	return nil
}

func (r *ScoringDBImpl) DeleteEvent(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) error {
	res, err := db.NewDelete().
		Model((*BattingEvent)(nil)).
		Where("id = ?", int64(eventID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete batting event %d: %w", eventID, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

func (r *ScoringDBImpl) DeleteEventsForGame(ctx context.Context, db bun.IDB, gameID sharedtypes.GameID) error {
	_, err := db.NewDelete().
		Model((*BattingEvent)(nil)).
		Where("game_id = ?", string(gameID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete batting events for game %s: %w", gameID, err)
	}
	return nil
}
