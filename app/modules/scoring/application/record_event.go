package scoringservice

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	scoringtypes "github.com/sandlot-league/scorebook/app/modules/scoring/domain/types"
	scoringevents "github.com/sandlot-league/scorebook/app/modules/scoring/events"
	"github.com/sandlot-league/scorebook/app/shared/attr"
	"github.com/sandlot-league/scorebook/app/shared/results"
	sharedtypes "github.com/sandlot-league/scorebook/app/shared/types"
)

// RecordBattingEvent processes a single plate appearance. All persistence
// runs inside one transaction so a partial sequence is never committed, and
// every aggregate is recomputed from the full event set so a replayed or
// retried request cannot double-count.
func (s *ScoringService) RecordBattingEvent(ctx context.Context, input scoringevents.BattingEventInput, selectedOutRunnerIDs []int64) (RecordBattingEventResult, error) {
	return withTelemetry(s, ctx, "RecordBattingEvent", input.GameID, func(ctx context.Context) (RecordBattingEventResult, error) {
		// Validation happens before any persistence.
		if err := validateInput(input, selectedOutRunnerIDs); err != nil {
			return results.Fail[scoringevents.BattingEventRecordedPayloadV1](scoringevents.BattingEventRecordFailedPayloadV1{
				GameID: input.GameID,
				Inning: input.Inning,
				Reason: err.Error(),
			}), nil
		}

		classification := scoringtypes.Classify(input.Result, input.HasError)

		var success scoringevents.BattingEventRecordedPayloadV1
		err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			occupied, err := s.repo.GetActiveRunners(ctx, tx, input.GameID, input.Inning)
			if err != nil {
				return err
			}

			// Resolve double/triple-play runner removal before advancement so
			// a runner put out on the play never advances.
			outRunnerCount, remaining, err := s.resolveOutRunners(ctx, tx, classification, input, occupied, selectedOutRunnerIDs)
			if err != nil {
				return err
			}

			event := &scoringtypes.BattingEvent{
				GameID:       input.GameID,
				Inning:       input.Inning,
				BattingFirst: input.BattingFirst,
				PlayerID:     input.PlayerID,
				Result:       input.Result,
				HasError:     input.HasError,
				StolenBase:   input.StolenBase,
				BaseReached:  classification.BaseReached,
				Annotation: scoringtypes.Annotation{
					Position:       input.Position,
					HasError:       input.HasError,
					OutRunnerCount: outRunnerCount,
				},
				CreatedAt: time.Now(),
			}
			if err := s.repo.CreateEvent(ctx, tx, event); err != nil {
				return err
			}

			runsOnPlay, err := s.applyAdvancement(ctx, tx, classification, input, event, remaining)
			if err != nil {
				return err
			}

			agg, err := s.recomputeAggregates(ctx, tx, input.GameID, input.Inning, input.BattingFirst)
			if err != nil {
				return err
			}
			if agg.Clamped {
				// Over-counted outs are clamped at three, never persisted.
				// Warn but do not reject; scorers correct mid-entry.
				s.logger.WarnContext(ctx, "Out count exceeded three, clamping",
					attr.GameID("game_id", input.GameID),
					attr.Inning(input.Inning),
				)
				s.metrics.RecordOutsClamped(ctx, input.GameID.String())
			}
			if agg.Finalized {
				if err := s.repo.DeactivateRunnersForInning(ctx, tx, input.GameID, input.Inning); err != nil {
					return err
				}
				s.metrics.RecordHalfInningFinalized(ctx, input.GameID.String())
			}

			s.metrics.RecordRunsScored(ctx, input.GameID.String(), runsOnPlay)

			success = scoringevents.BattingEventRecordedPayloadV1{
				GameID:         input.GameID,
				Inning:         input.Inning,
				EventID:        event.ID,
				Outs:           agg.Outs,
				RunsScored:     agg.Runs,
				InningFinished: agg.Finalized,
				OutsClamped:    agg.Clamped,
			}
			return nil
		})
		if err != nil {
			// The event row may already be committed if the transaction
			// itself failed on commit; surface rather than retry.
			return results.Fail[scoringevents.BattingEventRecordedPayloadV1](scoringevents.BattingEventRecordFailedPayloadV1{
				GameID: input.GameID,
				Inning: input.Inning,
				Reason: err.Error(),
			}), nil
		}

		return results.Succeed[scoringevents.BattingEventRecordedPayloadV1, scoringevents.BattingEventRecordFailedPayloadV1](success), nil
	})
}

func validateInput(input scoringevents.BattingEventInput, selectedOutRunnerIDs []int64) error {
	if input.Result == "" {
		return ErrMissingResult
	}
	if !input.Result.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidResult, input.Result)
	}
	if input.Inning < 1 {
		return ErrInvalidInning
	}
	if len(selectedOutRunnerIDs) > 2 {
		return ErrTooManyOutRunners
	}
	if len(selectedOutRunnerIDs) > 0 && !input.Result.IsGroundBallOut() {
		return ErrOutRunnersNotAllowed
	}
	return nil
}

// resolveOutRunners deactivates the runners the scorer marked as put out on
// a ground-ball play and returns how many, plus the runners still on base.
func (s *ScoringService) resolveOutRunners(
	ctx context.Context,
	tx bun.Tx,
	classification scoringtypes.Classification,
	input scoringevents.BattingEventInput,
	occupied []scoringtypes.Runner,
	selectedOutRunnerIDs []int64,
) (int, []scoringtypes.Runner, error) {
	if len(selectedOutRunnerIDs) == 0 || !classification.IsOut || !input.Result.IsGroundBallOut() {
		return 0, occupied, nil
	}

	active := make(map[int64]bool, len(occupied))
	for _, r := range occupied {
		active[r.ID] = true
	}
	for _, id := range selectedOutRunnerIDs {
		if !active[id] {
			return 0, nil, fmt.Errorf("%w: runner %d", ErrUnknownOutRunner, id)
		}
		if err := s.repo.DeactivateRunner(ctx, tx, id); err != nil {
			return 0, nil, err
		}
	}

	out := make(map[int64]bool, len(selectedOutRunnerIDs))
	for _, id := range selectedOutRunnerIDs {
		out[id] = true
	}
	remaining := make([]scoringtypes.Runner, 0, len(occupied))
	for _, r := range occupied {
		if !out[r.ID] {
			remaining = append(remaining, r)
		}
	}
	return len(selectedOutRunnerIDs), remaining, nil
}

// applyAdvancement runs the runner advancement engine for non-out (or
// on-error) appearances and applies its updates: scored runners deactivate
// and get the run attributed to their own batting record; the batter joins
// the bases or scores directly. Returns the number of runs on the play.
func (s *ScoringService) applyAdvancement(
	ctx context.Context,
	tx bun.Tx,
	classification scoringtypes.Classification,
	input scoringevents.BattingEventInput,
	event *scoringtypes.BattingEvent,
	occupied []scoringtypes.Runner,
) (int, error) {
	if classification.IsOut && !input.HasError {
		return 0, nil
	}

	updates := scoringtypes.AdvanceRunners(occupied, classification.BaseReached)
	runsOnPlay := 0
	for _, u := range updates {
		if u.Scored {
			if err := s.repo.DeactivateRunner(ctx, tx, u.RunnerID); err != nil {
				return 0, err
			}
			if err := s.repo.MarkRunScored(ctx, tx, input.GameID, input.Inning, u.PlayerID); err != nil {
				return 0, err
			}
			runsOnPlay++
			continue
		}
		if err := s.repo.UpdateRunnerBase(ctx, tx, u.RunnerID, u.NewBase); err != nil {
			return 0, err
		}
	}

	switch {
	case classification.BaseReached == scoringtypes.BaseHome:
		// The batter scores directly and never becomes a runner.
		event.RunScored = true
		runsOnPlay++
	case classification.BaseReached >= scoringtypes.BaseFirst:
		runner := &scoringtypes.Runner{
			GameID:     input.GameID,
			Inning:     input.Inning,
			PlayerID:   input.PlayerID,
			PlayerName: input.PlayerName,
			Base:       classification.BaseReached,
			Active:     true,
		}
		if err := s.repo.UpsertRunner(ctx, tx, runner); err != nil {
			return 0, err
		}
	}

	// Runs driven in are credited to the batter, except on an error play.
	if !input.HasError {
		event.RBIs = runsOnPlay
	}
	if event.RunScored || event.RBIs > 0 {
		if err := s.repo.UpdateEvent(ctx, tx, event); err != nil {
			return 0, err
		}
	}
	return runsOnPlay, nil
}

// aggregates is a recomputed derived view of one half-inning.
type aggregates struct {
	Runs      int
	Outs      int
	Clamped   bool
	Finalized bool
}

// recomputeAggregates rebuilds the half-inning run total and out count from
// the full event set and upserts the line score. Aggregates are always
// derived views; nothing increments a stored counter.
func (s *ScoringService) recomputeAggregates(ctx context.Context, idb bun.IDB, gameID sharedtypes.GameID, inning int, battingFirst bool) (aggregates, error) {
	events, err := s.repo.GetEventsForInning(ctx, idb, gameID, inning, battingFirst)
	if err != nil {
		return aggregates{}, err
	}

	var agg aggregates
	rawOuts := 0
	for _, ev := range events {
		if ev.RunScored {
			agg.Runs++
		}
		c := scoringtypes.Classify(ev.Result, ev.HasError)
		if c.IsOut {
			rawOuts++
		}
		rawOuts += ev.Annotation.OutRunnerCount
	}

	state := scoringtypes.NewHalfInningState()
	agg.Clamped = state.AddOuts(rawOuts)
	agg.Outs = state.Outs
	agg.Finalized = state.IsFinalized()

	if err := s.repo.UpsertHalfInningScore(ctx, idb, gameID, inning, battingFirst, agg.Runs); err != nil {
		return aggregates{}, err
	}
	return agg, nil
}
