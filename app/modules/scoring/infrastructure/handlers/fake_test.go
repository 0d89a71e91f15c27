package scoringhandlers

import (
	"context"

	scoringservice "github.com/sandlot-league/scorebook/app/modules/scoring/application"
	scoringtypes "github.com/sandlot-league/scorebook/app/modules/scoring/domain/types"
	scoringevents "github.com/sandlot-league/scorebook/app/modules/scoring/events"
	sharedtypes "github.com/sandlot-league/scorebook/app/shared/types"
)

// FakeScoringService is a programmable stand-in for the scoring service.
type FakeScoringService struct {
	RecordBattingEventFunc  func(ctx context.Context, input scoringevents.BattingEventInput, selectedOutRunnerIDs []int64) (scoringservice.RecordBattingEventResult, error)
	CorrectBattingEventFunc func(ctx context.Context, eventID sharedtypes.EventID, input scoringevents.BattingEventInput, selectedOutRunnerIDs []int64) (scoringservice.CorrectBattingEventResult, error)
	RecomputeInningFunc     func(ctx context.Context, gameID sharedtypes.GameID, inning int, battingFirst bool) (scoringservice.RecomputeInningResult, error)
	GetGameStateFunc        func(ctx context.Context, gameID sharedtypes.GameID, inning int, battingFirst bool) (*scoringtypes.GameState, error)
}

var _ scoringservice.Service = (*FakeScoringService)(nil)

func (f *FakeScoringService) RecordBattingEvent(ctx context.Context, input scoringevents.BattingEventInput, selectedOutRunnerIDs []int64) (scoringservice.RecordBattingEventResult, error) {
	return f.RecordBattingEventFunc(ctx, input, selectedOutRunnerIDs)
}

func (f *FakeScoringService) CorrectBattingEvent(ctx context.Context, eventID sharedtypes.EventID, input scoringevents.BattingEventInput, selectedOutRunnerIDs []int64) (scoringservice.CorrectBattingEventResult, error) {
	return f.CorrectBattingEventFunc(ctx, eventID, input, selectedOutRunnerIDs)
}

func (f *FakeScoringService) RecomputeInning(ctx context.Context, gameID sharedtypes.GameID, inning int, battingFirst bool) (scoringservice.RecomputeInningResult, error) {
	return f.RecomputeInningFunc(ctx, gameID, inning, battingFirst)
}

func (f *FakeScoringService) GetGameState(ctx context.Context, gameID sharedtypes.GameID, inning int, battingFirst bool) (*scoringtypes.GameState, error) {
	return f.GetGameStateFunc(ctx, gameID, inning, battingFirst)
}
