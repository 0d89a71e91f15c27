package lineupservice

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun"

	lineuptypes "github.com/sandlot-league/scorebook/app/modules/lineup/domain/types"
	lineupdb "github.com/sandlot-league/scorebook/app/modules/lineup/infrastructure/repositories"
	sharedtypes "github.com/sandlot-league/scorebook/app/shared/types"
)

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

type gameKey struct {
	gameID sharedtypes.GameID
	teamID sharedtypes.TeamID
}

// FakeLineupRepository is a stateful in-memory stand-in for the Record
// Store. Each method records its call in a trace and can be overridden with
// a programmable Func field to inject errors.
type FakeLineupRepository struct {
	trace []string

	Starters  map[gameKey][]lineuptypes.LineupSlot
	Subs      map[gameKey][]lineuptypes.Substitute
	Templates map[sharedtypes.TeamID]*lineuptypes.DefaultLineupTemplate

	GetGamePlayersFunc     func(ctx context.Context, gameID sharedtypes.GameID, teamID sharedtypes.TeamID) ([]lineuptypes.LineupSlot, []lineuptypes.Substitute, error)
	ReplaceGamePlayersFunc func(ctx context.Context, gameID sharedtypes.GameID, teamID sharedtypes.TeamID, starters []lineuptypes.LineupSlot, subs []lineuptypes.Substitute) error
	GetTemplateFunc        func(ctx context.Context, teamID sharedtypes.TeamID) (*lineuptypes.DefaultLineupTemplate, error)
	UpsertTemplateFunc     func(ctx context.Context, template *lineuptypes.DefaultLineupTemplate) error
}

var _ lineupdb.Repository = (*FakeLineupRepository)(nil)

func NewFakeLineupRepository() *FakeLineupRepository {
	return &FakeLineupRepository{
		Starters:  make(map[gameKey][]lineuptypes.LineupSlot),
		Subs:      make(map[gameKey][]lineuptypes.Substitute),
		Templates: make(map[sharedtypes.TeamID]*lineuptypes.DefaultLineupTemplate),
	}
}

func (f *FakeLineupRepository) GetGamePlayers(ctx context.Context, _ bun.IDB, gameID sharedtypes.GameID, teamID sharedtypes.TeamID) ([]lineuptypes.LineupSlot, []lineuptypes.Substitute, error) {
	f.trace = append(f.trace, "GetGamePlayers")
	if f.GetGamePlayersFunc != nil {
		return f.GetGamePlayersFunc(ctx, gameID, teamID)
	}
	key := gameKey{gameID, teamID}
	return f.Starters[key], f.Subs[key], nil
}

func (f *FakeLineupRepository) ReplaceGamePlayers(ctx context.Context, _ bun.IDB, gameID sharedtypes.GameID, teamID sharedtypes.TeamID, starters []lineuptypes.LineupSlot, subs []lineuptypes.Substitute) error {
	f.trace = append(f.trace, "ReplaceGamePlayers")
	if f.ReplaceGamePlayersFunc != nil {
		return f.ReplaceGamePlayersFunc(ctx, gameID, teamID, starters, subs)
	}
	key := gameKey{gameID, teamID}
	f.Starters[key] = append([]lineuptypes.LineupSlot(nil), starters...)
	f.Subs[key] = append([]lineuptypes.Substitute(nil), subs...)
	return nil
}

func (f *FakeLineupRepository) DeleteGamePlayersForGame(_ context.Context, _ bun.IDB, gameID sharedtypes.GameID) error {
	f.trace = append(f.trace, "DeleteGamePlayersForGame")
	for key := range f.Starters {
		if key.gameID == gameID {
			delete(f.Starters, key)
			delete(f.Subs, key)
		}
	}
	return nil
}

func (f *FakeLineupRepository) GetTemplate(ctx context.Context, _ bun.IDB, teamID sharedtypes.TeamID) (*lineuptypes.DefaultLineupTemplate, error) {
	f.trace = append(f.trace, "GetTemplate")
	if f.GetTemplateFunc != nil {
		return f.GetTemplateFunc(ctx, teamID)
	}
	template, ok := f.Templates[teamID]
	if !ok {
		return nil, lineupdb.ErrNotFound
	}
	return template, nil
}

func (f *FakeLineupRepository) UpsertTemplate(ctx context.Context, _ bun.IDB, template *lineuptypes.DefaultLineupTemplate) error {
	f.trace = append(f.trace, "UpsertTemplate")
	if f.UpsertTemplateFunc != nil {
		return f.UpsertTemplateFunc(ctx, template)
	}
	f.Templates[template.TeamID] = template
	return nil
}

func (f *FakeLineupRepository) DeleteTemplate(_ context.Context, _ bun.IDB, teamID sharedtypes.TeamID) error {
	f.trace = append(f.trace, "DeleteTemplate")
	delete(f.Templates, teamID)
	return nil
}
