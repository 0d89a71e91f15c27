package scoringservice

import (
	"context"

	"github.com/uptrace/bun"

	scoringevents "github.com/sandlot-league/scorebook/app/modules/scoring/events"
	"github.com/sandlot-league/scorebook/app/shared/results"
	sharedtypes "github.com/sandlot-league/scorebook/app/shared/types"
)

// RecomputeInning rebuilds one half-inning's derived aggregates from the
// stored event set. It is idempotent: re-running it against an already
// finalized half-inning changes nothing, which makes it safe as crash
// recovery after a half-finished record sequence and as the convergence
// step after concurrent edits.
func (s *ScoringService) RecomputeInning(ctx context.Context, gameID sharedtypes.GameID, inning int, battingFirst bool) (RecomputeInningResult, error) {
	return withTelemetry(s, ctx, "RecomputeInning", gameID, func(ctx context.Context) (RecomputeInningResult, error) {
		if inning < 1 {
			return results.Fail[scoringevents.InningRecomputedPayloadV1](scoringevents.BattingEventRecordFailedPayloadV1{
				GameID: gameID,
				Inning: inning,
				Reason: ErrInvalidInning.Error(),
			}), nil
		}

		var payload scoringevents.InningRecomputedPayloadV1
		err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			agg, err := s.recomputeAggregates(ctx, tx, gameID, inning, battingFirst)
			if err != nil {
				return err
			}
			if agg.Finalized {
				if err := s.repo.DeactivateRunnersForInning(ctx, tx, gameID, inning); err != nil {
					return err
				}
			}
			payload = scoringevents.InningRecomputedPayloadV1{
				GameID: gameID,
				Inning: inning,
				Runs:   agg.Runs,
				Outs:   agg.Outs,
			}
			return nil
		})
		if err != nil {
			return RecomputeInningResult{}, err
		}

		return results.Succeed[scoringevents.InningRecomputedPayloadV1, scoringevents.BattingEventRecordFailedPayloadV1](payload), nil
	})
}
