package scoringservice

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/uptrace/bun"

	scoringtypes "github.com/sandlot-league/scorebook/app/modules/scoring/domain/types"
	scoringdb "github.com/sandlot-league/scorebook/app/modules/scoring/infrastructure/repositories"
	sharedtypes "github.com/sandlot-league/scorebook/app/shared/types"
)

// ------------------------
// Fake DB
// ------------------------

// fakeDB satisfies the DB interface without a database; RunInTx just runs
// the function. The embedded nil IDB is never touched because the fake
// repository ignores its db argument.
type fakeDB struct {
	bun.IDB
	RunInTxErr error
}

func (f *fakeDB) RunInTx(ctx context.Context, _ *sql.TxOptions, fn func(ctx context.Context, tx bun.Tx) error) error {
	if f.RunInTxErr != nil {
		return f.RunInTxErr
	}
	return fn(ctx, bun.Tx{})
}

// ------------------------
// Fake Queue
// ------------------------

type FakeRecomputeQueue struct {
	Enqueued   []sharedtypes.GameID
	EnqueueErr error
}

func (f *FakeRecomputeQueue) EnqueueInningRecompute(_ context.Context, gameID sharedtypes.GameID, _ int, _ bool) error {
	f.Enqueued = append(f.Enqueued, gameID)
	return f.EnqueueErr
}

// ------------------------
// Fake Scoring Repo
// ------------------------

// FakeScoringRepository is a stateful in-memory stand-in for the Record
// Store. Each method records its call in a trace and can be overridden with
// a programmable Func field to inject errors.
type FakeScoringRepository struct {
	trace []string

	nextEventID  int64
	nextRunnerID int64
	Events       map[int64]*scoringtypes.BattingEvent
	Runners      map[int64]*scoringtypes.Runner
	Scores       map[string]*scoringtypes.HalfInningScore

	CreateEventFunc        func(ctx context.Context, event *scoringtypes.BattingEvent) error
	UpdateEventFunc        func(ctx context.Context, event *scoringtypes.BattingEvent) error
	GetActiveRunnersFunc   func(ctx context.Context, gameID sharedtypes.GameID, inning int) ([]scoringtypes.Runner, error)
	UpsertScoreFunc        func(ctx context.Context, gameID sharedtypes.GameID, inning int, battingFirst bool, runs int) error
	GetEventsForInningFunc func(ctx context.Context, gameID sharedtypes.GameID, inning int, battingFirst bool) ([]scoringtypes.BattingEvent, error)
}

var _ scoringdb.Repository = (*FakeScoringRepository)(nil)

// NewFakeScoringRepository initializes an empty fake.
func NewFakeScoringRepository() *FakeScoringRepository {
	return &FakeScoringRepository{
		Events:  map[int64]*scoringtypes.BattingEvent{},
		Runners: map[int64]*scoringtypes.Runner{},
		Scores:  map[string]*scoringtypes.HalfInningScore{},
	}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeScoringRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeScoringRepository) record(step string) {
	f.trace = append(f.trace, step)
}

// AddRunner seeds an active runner and returns its ID.
func (f *FakeScoringRepository) AddRunner(gameID sharedtypes.GameID, inning int, playerID string, base scoringtypes.BaseNumber) int64 {
	f.nextRunnerID++
	f.Runners[f.nextRunnerID] = &scoringtypes.Runner{
		ID:       f.nextRunnerID,
		GameID:   gameID,
		Inning:   inning,
		PlayerID: playerID,
		Base:     base,
		Active:   true,
	}
	return f.nextRunnerID
}

func scoreKey(gameID sharedtypes.GameID, inning int) string {
	return fmt.Sprintf("%s#%d", gameID, inning)
}

func (f *FakeScoringRepository) CreateEvent(ctx context.Context, _ bun.IDB, event *scoringtypes.BattingEvent) error {
	f.record("CreateEvent")
	if f.CreateEventFunc != nil {
		if err := f.CreateEventFunc(ctx, event); err != nil {
			return err
		}
	}
	f.nextEventID++
	event.ID = sharedtypes.EventID(f.nextEventID)
	clone := *event
	f.Events[f.nextEventID] = &clone
	return nil
}

func (f *FakeScoringRepository) GetEvent(_ context.Context, _ bun.IDB, eventID sharedtypes.EventID) (*scoringtypes.BattingEvent, error) {
	f.record("GetEvent")
	ev, ok := f.Events[int64(eventID)]
	if !ok {
		return nil, scoringdb.ErrNotFound
	}
	clone := *ev
	return &clone, nil
}

func (f *FakeScoringRepository) GetEventsForInning(ctx context.Context, _ bun.IDB, gameID sharedtypes.GameID, inning int, battingFirst bool) ([]scoringtypes.BattingEvent, error) {
	f.record("GetEventsForInning")
	if f.GetEventsForInningFunc != nil {
		return f.GetEventsForInningFunc(ctx, gameID, inning, battingFirst)
	}
	ids := make([]int64, 0, len(f.Events))
	for id, ev := range f.Events {
		if ev.GameID == gameID && ev.Inning == inning && ev.BattingFirst == battingFirst {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	events := make([]scoringtypes.BattingEvent, 0, len(ids))
	for _, id := range ids {
		events = append(events, *f.Events[id])
	}
	return events, nil
}

func (f *FakeScoringRepository) UpdateEvent(ctx context.Context, _ bun.IDB, event *scoringtypes.BattingEvent) error {
	f.record("UpdateEvent")
	if f.UpdateEventFunc != nil {
		if err := f.UpdateEventFunc(ctx, event); err != nil {
			return err
		}
	}
	if _, ok := f.Events[int64(event.ID)]; !ok {
		return scoringdb.ErrNoRowsAffected
	}
	clone := *event
	f.Events[int64(event.ID)] = &clone
	return nil
}

func (f *FakeScoringRepository) MarkRunScored(_ context.Context, _ bun.IDB, gameID sharedtypes.GameID, inning int, playerID string) error {
	f.record("MarkRunScored")
	var latest *scoringtypes.BattingEvent
	for _, ev := range f.Events {
		if ev.GameID == gameID && ev.Inning == inning && ev.PlayerID == playerID {
			if latest == nil || ev.ID > latest.ID {
				latest = ev
			}
		}
	}
	if latest == nil {
		return scoringdb.ErrNotFound
	}
	latest.RunScored = true
	return nil
}

func (f *FakeScoringRepository) DeleteEvent(_ context.Context, _ bun.IDB, eventID sharedtypes.EventID) error {
	f.record("DeleteEvent")
	if _, ok := f.Events[int64(eventID)]; !ok {
		return scoringdb.ErrNoRowsAffected
	}
	delete(f.Events, int64(eventID))
	return nil
}

func (f *FakeScoringRepository) DeleteEventsForGame(_ context.Context, _ bun.IDB, gameID sharedtypes.GameID) error {
	f.record("DeleteEventsForGame")
	for id, ev := range f.Events {
		if ev.GameID == gameID {
			delete(f.Events, id)
		}
	}
	return nil
}

func (f *FakeScoringRepository) UpsertRunner(_ context.Context, _ bun.IDB, runner *scoringtypes.Runner) error {
	f.record("UpsertRunner")
	for id, r := range f.Runners {
		if r.GameID == runner.GameID && r.Inning == runner.Inning && r.PlayerID == runner.PlayerID {
			delete(f.Runners, id)
		}
	}
	f.nextRunnerID++
	runner.ID = f.nextRunnerID
	clone := *runner
	f.Runners[f.nextRunnerID] = &clone
	return nil
}

func (f *FakeScoringRepository) GetActiveRunners(ctx context.Context, _ bun.IDB, gameID sharedtypes.GameID, inning int) ([]scoringtypes.Runner, error) {
	f.record("GetActiveRunners")
	if f.GetActiveRunnersFunc != nil {
		return f.GetActiveRunnersFunc(ctx, gameID, inning)
	}
	runners := make([]scoringtypes.Runner, 0)
	for _, r := range f.Runners {
		if r.GameID == gameID && r.Inning == inning && r.Active {
			runners = append(runners, *r)
		}
	}
	sort.Slice(runners, func(i, j int) bool { return runners[i].Base < runners[j].Base })
	return runners, nil
}

func (f *FakeScoringRepository) UpdateRunnerBase(_ context.Context, _ bun.IDB, runnerID int64, base scoringtypes.BaseNumber) error {
	f.record("UpdateRunnerBase")
	r, ok := f.Runners[runnerID]
	if !ok {
		return scoringdb.ErrNoRowsAffected
	}
	r.Base = base
	return nil
}

func (f *FakeScoringRepository) DeactivateRunner(_ context.Context, _ bun.IDB, runnerID int64) error {
	f.record("DeactivateRunner")
	r, ok := f.Runners[runnerID]
	if !ok {
		return scoringdb.ErrNoRowsAffected
	}
	r.Active = false
	return nil
}

func (f *FakeScoringRepository) DeactivateRunnersForInning(_ context.Context, _ bun.IDB, gameID sharedtypes.GameID, inning int) error {
	f.record("DeactivateRunnersForInning")
	for _, r := range f.Runners {
		if r.GameID == gameID && r.Inning == inning {
			r.Active = false
		}
	}
	return nil
}

func (f *FakeScoringRepository) DeleteRunnersForGame(_ context.Context, _ bun.IDB, gameID sharedtypes.GameID) error {
	f.record("DeleteRunnersForGame")
	for id, r := range f.Runners {
		if r.GameID == gameID {
			delete(f.Runners, id)
		}
	}
	return nil
}

func (f *FakeScoringRepository) UpsertHalfInningScore(ctx context.Context, _ bun.IDB, gameID sharedtypes.GameID, inning int, battingFirst bool, runs int) error {
	f.record("UpsertHalfInningScore")
	if f.UpsertScoreFunc != nil {
		if err := f.UpsertScoreFunc(ctx, gameID, inning, battingFirst, runs); err != nil {
			return err
		}
	}
	key := scoreKey(gameID, inning)
	score, ok := f.Scores[key]
	if !ok {
		score = &scoringtypes.HalfInningScore{GameID: gameID, Inning: inning, SideBattingFirst: battingFirst}
		f.Scores[key] = score
	}
	if battingFirst {
		score.RunsFirst = runs
	} else {
		score.RunsSecond = runs
	}
	return nil
}

func (f *FakeScoringRepository) GetHalfInningScore(_ context.Context, _ bun.IDB, gameID sharedtypes.GameID, inning int) (*scoringtypes.HalfInningScore, error) {
	f.record("GetHalfInningScore")
	score, ok := f.Scores[scoreKey(gameID, inning)]
	if !ok {
		return nil, scoringdb.ErrNotFound
	}
	clone := *score
	return &clone, nil
}

func (f *FakeScoringRepository) GetScoresForGame(_ context.Context, _ bun.IDB, gameID sharedtypes.GameID) ([]scoringtypes.HalfInningScore, error) {
	f.record("GetScoresForGame")
	scores := make([]scoringtypes.HalfInningScore, 0)
	for _, s := range f.Scores {
		if s.GameID == gameID {
			scores = append(scores, *s)
		}
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].Inning < scores[j].Inning })
	return scores, nil
}

func (f *FakeScoringRepository) DeleteScoresForGame(_ context.Context, _ bun.IDB, gameID sharedtypes.GameID) error {
	f.record("DeleteScoresForGame")
	for key, s := range f.Scores {
		if s.GameID == gameID {
			delete(f.Scores, key)
		}
	}
	return nil
}
