package lineupservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace/noop"

	lineuptypes "github.com/sandlot-league/scorebook/app/modules/lineup/domain/types"
	"github.com/sandlot-league/scorebook/app/shared/observability"
	sharedtypes "github.com/sandlot-league/scorebook/app/shared/types"
)

const (
	testGameID = sharedtypes.GameID("game-1")
	testTeamID = sharedtypes.TeamID("team-1")
)

func newTestService(repo *FakeLineupRepository) *LineupService {
	return NewLineupService(
		repo,
		&fakeDB{},
		observability.NoOpLogger,
		&observability.NoOpMetrics{},
		noop.NewTracerProvider().Tracer("test"),
	)
}

func TestGetLineup_EmptyWhenNothingStored(t *testing.T) {
	service := newTestService(NewFakeLineupRepository())

	lineup, err := service.GetLineup(context.Background(), testGameID, testTeamID, false)
	if err != nil {
		t.Fatalf("GetLineup error: %v", err)
	}

	if len(lineup.Starters) != 9 {
		t.Fatalf("expected 9 starters, got %d", len(lineup.Starters))
	}
	for _, slot := range lineup.Starters {
		if !slot.IsEmpty() {
			t.Errorf("slot %d should be empty, got %+v", slot.Order, slot)
		}
	}
}

func TestGetLineup_TemplateFillsUnassignedSlots(t *testing.T) {
	repo := NewFakeLineupRepository()
	repo.Templates[testTeamID] = &lineuptypes.DefaultLineupTemplate{
		TeamID: testTeamID,
		Starters: []lineuptypes.LineupSlot{
			{Order: 1, PlayerName: "Template Leadoff", Position: lineuptypes.PositionShortstop},
			{Order: 2, PlayerName: "Template Two", Position: lineuptypes.PositionCatcher},
		},
		Substitutes: []lineuptypes.Substitute{{PlayerName: "Template Sub"}},
		UpdatedAt:   time.Now(),
	}
	repo.Starters[gameKey{testGameID, testTeamID}] = []lineuptypes.LineupSlot{
		{Order: 1, PlayerName: "Game Leadoff", Position: lineuptypes.PositionCenterField},
	}
	service := newTestService(repo)

	lineup, err := service.GetLineup(context.Background(), testGameID, testTeamID, false)
	if err != nil {
		t.Fatalf("GetLineup error: %v", err)
	}

	if got := lineup.Starters[0].PlayerName; got != "Game Leadoff" {
		t.Errorf("slot 1: game record should win over template, got %q", got)
	}
	if got := lineup.Starters[1].PlayerName; got != "Template Two" {
		t.Errorf("slot 2: expected template fill, got %q", got)
	}
	if !lineup.Starters[2].IsEmpty() {
		t.Errorf("slot 3 should be empty, got %+v", lineup.Starters[2])
	}
	if len(lineup.Substitutes) != 1 || lineup.Substitutes[0].PlayerName != "Template Sub" {
		t.Errorf("expected template substitutes, got %+v", lineup.Substitutes)
	}
}

func TestGetLineup_DHAddsSlotTen(t *testing.T) {
	service := newTestService(NewFakeLineupRepository())

	lineup, err := service.GetLineup(context.Background(), testGameID, testTeamID, true)
	if err != nil {
		t.Fatalf("GetLineup error: %v", err)
	}

	if len(lineup.Starters) != 10 {
		t.Fatalf("expected 10 starters with DH, got %d", len(lineup.Starters))
	}
	if got := lineup.Starters[9].Position; got != lineuptypes.PositionDesignatedHitter {
		t.Errorf("slot 10 position = %q, want DH", got)
	}
}

func TestGetLineup_MissingIDs(t *testing.T) {
	repo := NewFakeLineupRepository()
	service := newTestService(repo)

	if _, err := service.GetLineup(context.Background(), "", testTeamID, false); !errors.Is(err, ErrMissingGameID) {
		t.Errorf("expected ErrMissingGameID, got %v", err)
	}
	if _, err := service.GetLineup(context.Background(), testGameID, "", false); !errors.Is(err, ErrMissingTeamID) {
		t.Errorf("expected ErrMissingTeamID, got %v", err)
	}
	if len(repo.trace) != 0 {
		t.Errorf("repository should not be touched on validation failure, got %v", repo.trace)
	}
}

func TestGetLineup_TemplateReadFailure(t *testing.T) {
	repo := NewFakeLineupRepository()
	repo.GetTemplateFunc = func(context.Context, sharedtypes.TeamID) (*lineuptypes.DefaultLineupTemplate, error) {
		return nil, errors.New("connection reset")
	}
	service := newTestService(repo)

	if _, err := service.GetLineup(context.Background(), testGameID, testTeamID, false); err == nil {
		t.Fatal("expected error when template read fails")
	}
}

func TestGetTemplate_NilWhenNoneSaved(t *testing.T) {
	service := newTestService(NewFakeLineupRepository())

	template, err := service.GetTemplate(context.Background(), testTeamID)
	if err != nil {
		t.Fatalf("GetTemplate error: %v", err)
	}
	if template != nil {
		t.Errorf("expected nil template, got %+v", template)
	}
}
