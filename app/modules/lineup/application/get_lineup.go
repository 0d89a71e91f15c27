package lineupservice

import (
	"context"
	"errors"
	"fmt"

	lineuptypes "github.com/sandlot-league/scorebook/app/modules/lineup/domain/types"
	lineupdb "github.com/sandlot-league/scorebook/app/modules/lineup/infrastructure/repositories"
	sharedtypes "github.com/sandlot-league/scorebook/app/shared/types"
)

// GetLineup assembles a game's lineup. Game-scoped records win; the team's
// default template fills the rest; anything left is an empty slot.
func (s *LineupService) GetLineup(ctx context.Context, gameID sharedtypes.GameID, teamID sharedtypes.TeamID, useDH bool) (*lineuptypes.Lineup, error) {
	if gameID == "" {
		return nil, ErrMissingGameID
	}
	if teamID == "" {
		return nil, ErrMissingTeamID
	}

	starters, subs, err := s.repo.GetGamePlayers(ctx, s.db, gameID, teamID)
	if err != nil {
		return nil, fmt.Errorf("GetLineup: %w", err)
	}

	template, err := s.repo.GetTemplate(ctx, s.db, teamID)
	if err != nil && !errors.Is(err, lineupdb.ErrNotFound) {
		return nil, fmt.Errorf("GetLineup: %w", err)
	}

	lineup := lineuptypes.BuildLineup(gameID, teamID, starters, subs, template, useDH)
	return &lineup, nil
}

// GetTemplate reads the team's default lineup template; nil, nil when the
// team has none saved yet.
func (s *LineupService) GetTemplate(ctx context.Context, teamID sharedtypes.TeamID) (*lineuptypes.DefaultLineupTemplate, error) {
	if teamID == "" {
		return nil, ErrMissingTeamID
	}
	template, err := s.repo.GetTemplate(ctx, s.db, teamID)
	if err != nil {
		if errors.Is(err, lineupdb.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("GetTemplate: %w", err)
	}
	return template, nil
}
