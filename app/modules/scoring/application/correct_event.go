package scoringservice

import (
	"context"
	"errors"

	"github.com/uptrace/bun"

	scoringtypes "github.com/sandlot-league/scorebook/app/modules/scoring/domain/types"
	scoringevents "github.com/sandlot-league/scorebook/app/modules/scoring/events"
	scoringdb "github.com/sandlot-league/scorebook/app/modules/scoring/infrastructure/repositories"
	"github.com/sandlot-league/scorebook/app/shared/attr"
	"github.com/sandlot-league/scorebook/app/shared/results"
	sharedtypes "github.com/sandlot-league/scorebook/app/shared/types"
)

// CorrectBattingEvent applies a correction edit to a stored plate appearance
// and re-runs the engine's derived aggregates for the half-inning. The
// stored occupancy is the scorer's to fix through normal entry; the derived
// run total and out count always follow the corrected event set.
func (s *ScoringService) CorrectBattingEvent(ctx context.Context, eventID sharedtypes.EventID, input scoringevents.BattingEventInput, selectedOutRunnerIDs []int64) (CorrectBattingEventResult, error) {
	return withTelemetry(s, ctx, "CorrectBattingEvent", input.GameID, func(ctx context.Context) (CorrectBattingEventResult, error) {
		if err := validateInput(input, selectedOutRunnerIDs); err != nil {
			return results.Fail[scoringevents.BattingEventCorrectedPayloadV1](scoringevents.BattingEventCorrectFailedPayloadV1{
				EventID: eventID,
				Reason:  err.Error(),
			}), nil
		}

		var corrected scoringevents.BattingEventCorrectedPayloadV1
		err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			event, err := s.repo.GetEvent(ctx, tx, eventID)
			if err != nil {
				return err
			}

			classification := scoringtypes.Classify(input.Result, input.HasError)
			event.Result = input.Result
			event.HasError = input.HasError
			event.StolenBase = input.StolenBase
			event.BaseReached = classification.BaseReached
			event.Annotation.Position = input.Position
			event.Annotation.HasError = input.HasError
			event.Annotation.OutRunnerCount = len(selectedOutRunnerIDs)
			if err := s.repo.UpdateEvent(ctx, tx, event); err != nil {
				return err
			}

			agg, err := s.recomputeAggregates(ctx, tx, event.GameID, event.Inning, event.BattingFirst)
			if err != nil {
				return err
			}
			if agg.Finalized {
				if err := s.repo.DeactivateRunnersForInning(ctx, tx, event.GameID, event.Inning); err != nil {
					return err
				}
			}

			corrected = scoringevents.BattingEventCorrectedPayloadV1{
				GameID:  event.GameID,
				Inning:  event.Inning,
				EventID: event.ID,
			}
			return nil
		})
		if err != nil {
			if errors.Is(err, scoringdb.ErrNotFound) {
				return results.Fail[scoringevents.BattingEventCorrectedPayloadV1](scoringevents.BattingEventCorrectFailedPayloadV1{
					EventID: eventID,
					Reason:  "batting event not found",
				}), nil
			}
			return CorrectBattingEventResult{}, err
		}

		// Schedule a background recompute as well: if another scorer edited
		// the same inning concurrently, the worker converges both edits onto
		// the same stored event set.
		if s.queue != nil {
			if err := s.queue.EnqueueInningRecompute(ctx, corrected.GameID, corrected.Inning, input.BattingFirst); err != nil {
				s.logger.WarnContext(ctx, "Failed to enqueue inning recompute",
					attr.GameID("game_id", corrected.GameID),
					attr.Inning(corrected.Inning),
					attr.Error(err),
				)
			}
		}

		return results.Succeed[scoringevents.BattingEventCorrectedPayloadV1, scoringevents.BattingEventCorrectFailedPayloadV1](corrected), nil
	})
}
