package scoringservice

import (
	"context"
	"fmt"

	scoringtypes "github.com/sandlot-league/scorebook/app/modules/scoring/domain/types"
	sharedtypes "github.com/sandlot-league/scorebook/app/shared/types"
)

// GetGameState returns the derived view of one half-inning: active runners,
// the recomputed out count, and the game's line score. Outs are derived from
// the stored event set, never read from a counter.
func (s *ScoringService) GetGameState(ctx context.Context, gameID sharedtypes.GameID, inning int, battingFirst bool) (*scoringtypes.GameState, error) {
	if inning < 1 {
		return nil, ErrInvalidInning
	}

	runners, err := s.repo.GetActiveRunners(ctx, s.db, gameID, inning)
	if err != nil {
		return nil, fmt.Errorf("GetGameState: %w", err)
	}

	events, err := s.repo.GetEventsForInning(ctx, s.db, gameID, inning, battingFirst)
	if err != nil {
		return nil, fmt.Errorf("GetGameState: %w", err)
	}
	state := scoringtypes.NewHalfInningState()
	outs := 0
	for _, ev := range events {
		if scoringtypes.Classify(ev.Result, ev.HasError).IsOut {
			outs++
		}
		outs += ev.Annotation.OutRunnerCount
	}
	state.AddOuts(outs)

	scores, err := s.repo.GetScoresForGame(ctx, s.db, gameID)
	if err != nil {
		return nil, fmt.Errorf("GetGameState: %w", err)
	}

	return &scoringtypes.GameState{
		GameID:  gameID,
		Inning:  inning,
		Outs:    state.Outs,
		Runners: runners,
		Scores:  scores,
	}, nil
}
