package lineupservice

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	lineuptypes "github.com/sandlot-league/scorebook/app/modules/lineup/domain/types"
	lineupevents "github.com/sandlot-league/scorebook/app/modules/lineup/events"
	"github.com/sandlot-league/scorebook/app/shared/attr"
	"github.com/sandlot-league/scorebook/app/shared/results"
)

// SaveLineup validates and persists a full lineup. The game-scoped player
// records are replaced wholesale inside a transaction; the team template is
// then overwritten with the same values. A template failure is logged and
// reported but never rolls back the just-written game records.
func (s *LineupService) SaveLineup(ctx context.Context, lineup lineuptypes.Lineup) (SaveLineupResult, error) {
	return withTelemetry(s, ctx, "SaveLineup", lineup.TeamID, func(ctx context.Context) (SaveLineupResult, error) {
		if err := validateSave(lineup); err != nil {
			return results.Fail[lineupevents.LineupSavedPayloadV1](lineupevents.LineupSaveFailedPayloadV1{
				GameID: lineup.GameID,
				TeamID: lineup.TeamID,
				Reason: err.Error(),
			}), nil
		}

		err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			return s.repo.ReplaceGamePlayers(ctx, tx, lineup.GameID, lineup.TeamID, lineup.Starters, lineup.Substitutes)
		})
		if err != nil {
			return results.Fail[lineupevents.LineupSavedPayloadV1](lineupevents.LineupSaveFailedPayloadV1{
				GameID: lineup.GameID,
				TeamID: lineup.TeamID,
				Reason: err.Error(),
			}), nil
		}

		templateSaved := true
		template := &lineuptypes.DefaultLineupTemplate{
			TeamID:      lineup.TeamID,
			UseDH:       lineup.UseDH,
			Starters:    lineup.Starters,
			Substitutes: lineup.Substitutes,
			UpdatedAt:   time.Now(),
		}
		if err := s.repo.UpsertTemplate(ctx, s.db, template); err != nil {
			// Partial success: the game records are committed and stay.
			templateSaved = false
			s.logger.WarnContext(ctx, "Failed to overwrite lineup template",
				attr.TeamID("team_id", lineup.TeamID),
				attr.GameID("game_id", lineup.GameID),
				attr.Error(err),
			)
		}

		s.metrics.RecordLineupSaved(ctx, lineup.TeamID.String())

		return results.Succeed[lineupevents.LineupSavedPayloadV1, lineupevents.LineupSaveFailedPayloadV1](lineupevents.LineupSavedPayloadV1{
			GameID:        lineup.GameID,
			TeamID:        lineup.TeamID,
			StarterCount:  len(lineup.Starters),
			TemplateSaved: templateSaved,
		}), nil
	})
}

func validateSave(lineup lineuptypes.Lineup) error {
	if lineup.GameID == "" {
		return ErrMissingGameID
	}
	if lineup.TeamID == "" {
		return ErrMissingTeamID
	}
	return lineup.Validate()
}
