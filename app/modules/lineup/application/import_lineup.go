package lineupservice

import (
	"context"

	"github.com/sandlot-league/scorebook/app/modules/lineup/application/parsers"
	lineuptypes "github.com/sandlot-league/scorebook/app/modules/lineup/domain/types"
	lineupevents "github.com/sandlot-league/scorebook/app/modules/lineup/events"
	"github.com/sandlot-league/scorebook/app/shared/results"
)

// ImportLineup parses an uploaded lineup sheet into a validated lineup.
// Nothing is persisted; the caller reviews the result and saves it through
// SaveLineup.
func (s *LineupService) ImportLineup(ctx context.Context, payload lineupevents.LineupImportRequestedPayloadV1) (ImportLineupResult, error) {
	return withTelemetry(s, ctx, "ImportLineup", payload.TeamID, func(ctx context.Context) (ImportLineupResult, error) {
		fail := func(reason string) ImportLineupResult {
			return results.Fail[lineupevents.LineupImportedPayloadV1](lineupevents.LineupImportFailedPayloadV1{
				GameID:   payload.GameID,
				Filename: payload.Filename,
				Reason:   reason,
			})
		}

		if payload.GameID == "" {
			return fail(ErrMissingGameID.Error()), nil
		}
		if payload.TeamID == "" {
			return fail(ErrMissingTeamID.Error()), nil
		}
		if len(payload.Content) == 0 {
			return fail(ErrEmptyImport.Error()), nil
		}

		parser, err := parsers.ForFilename(payload.Filename)
		if err != nil {
			return fail(err.Error()), nil
		}

		starters, subs, err := parser.Parse(payload.Content)
		if err != nil {
			return fail(err.Error()), nil
		}

		lineup := lineuptypes.BuildLineup(payload.GameID, payload.TeamID, starters, subs, nil, payload.UseDH)
		if err := lineup.Validate(); err != nil {
			return fail(err.Error()), nil
		}

		return results.Succeed[lineupevents.LineupImportedPayloadV1, lineupevents.LineupImportFailedPayloadV1](lineupevents.LineupImportedPayloadV1{
			Lineup: lineup,
		}), nil
	})
}
