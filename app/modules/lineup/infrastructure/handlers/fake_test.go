package lineuphandlers

import (
	"context"

	lineupservice "github.com/sandlot-league/scorebook/app/modules/lineup/application"
	lineuptypes "github.com/sandlot-league/scorebook/app/modules/lineup/domain/types"
	lineupevents "github.com/sandlot-league/scorebook/app/modules/lineup/events"
	sharedtypes "github.com/sandlot-league/scorebook/app/shared/types"
)

// FakeLineupService is a programmable stand-in for the lineup service.
type FakeLineupService struct {
	GetLineupFunc    func(ctx context.Context, gameID sharedtypes.GameID, teamID sharedtypes.TeamID, useDH bool) (*lineuptypes.Lineup, error)
	SaveLineupFunc   func(ctx context.Context, lineup lineuptypes.Lineup) (lineupservice.SaveLineupResult, error)
	ImportLineupFunc func(ctx context.Context, payload lineupevents.LineupImportRequestedPayloadV1) (lineupservice.ImportLineupResult, error)
	GetTemplateFunc  func(ctx context.Context, teamID sharedtypes.TeamID) (*lineuptypes.DefaultLineupTemplate, error)
}

var _ lineupservice.Service = (*FakeLineupService)(nil)

func (f *FakeLineupService) GetLineup(ctx context.Context, gameID sharedtypes.GameID, teamID sharedtypes.TeamID, useDH bool) (*lineuptypes.Lineup, error) {
	return f.GetLineupFunc(ctx, gameID, teamID, useDH)
}

func (f *FakeLineupService) SaveLineup(ctx context.Context, lineup lineuptypes.Lineup) (lineupservice.SaveLineupResult, error) {
	return f.SaveLineupFunc(ctx, lineup)
}

func (f *FakeLineupService) ImportLineup(ctx context.Context, payload lineupevents.LineupImportRequestedPayloadV1) (lineupservice.ImportLineupResult, error) {
	return f.ImportLineupFunc(ctx, payload)
}

func (f *FakeLineupService) GetTemplate(ctx context.Context, teamID sharedtypes.TeamID) (*lineuptypes.DefaultLineupTemplate, error) {
	return f.GetTemplateFunc(ctx, teamID)
}
