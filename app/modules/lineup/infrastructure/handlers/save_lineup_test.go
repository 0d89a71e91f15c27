package lineuphandlers

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace/noop"

	lineupservice "github.com/sandlot-league/scorebook/app/modules/lineup/application"
	lineuptypes "github.com/sandlot-league/scorebook/app/modules/lineup/domain/types"
	lineupevents "github.com/sandlot-league/scorebook/app/modules/lineup/events"
	"github.com/sandlot-league/scorebook/app/shared/observability"
	"github.com/sandlot-league/scorebook/app/shared/results"
	sharedtypes "github.com/sandlot-league/scorebook/app/shared/types"
)

func newHandlers(service *FakeLineupService) Handlers {
	return NewLineupHandlers(
		service,
		observability.NoOpLogger,
		&observability.NoOpMetrics{},
		noop.NewTracerProvider().Tracer("test"),
	)
}

func TestHandleLineupSaveRequest(t *testing.T) {
	gameID := sharedtypes.GameID("game-1")
	teamID := sharedtypes.TeamID("team-1")

	tests := []struct {
		name       string
		result     lineupservice.SaveLineupResult
		serviceErr error
		wantTopics []string
		wantErr    bool
	}{
		{
			name: "success publishes saved",
			result: results.Succeed[lineupevents.LineupSavedPayloadV1, lineupevents.LineupSaveFailedPayloadV1](
				lineupevents.LineupSavedPayloadV1{GameID: gameID, TeamID: teamID, StarterCount: 9, TemplateSaved: true},
			),
			wantTopics: []string{lineupevents.LineupSavedV1},
		},
		{
			name: "handled failure publishes failed",
			result: results.Fail[lineupevents.LineupSavedPayloadV1](
				lineupevents.LineupSaveFailedPayloadV1{GameID: gameID, TeamID: teamID, Reason: "duplicate batting-order number: 4"},
			),
			wantTopics: []string{lineupevents.LineupSaveFailedV1},
		},
		{
			name:       "infrastructure error propagates for redelivery",
			serviceErr: errors.New("store unavailable"),
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &FakeLineupService{
				SaveLineupFunc: func(context.Context, lineuptypes.Lineup) (lineupservice.SaveLineupResult, error) {
					return tt.result, tt.serviceErr
				},
			}
			handlers := newHandlers(service)

			out, err := handlers.HandleLineupSaveRequest(context.Background(), &lineupevents.LineupSaveRequestedPayloadV1{
				Lineup: lineuptypes.Lineup{GameID: gameID, TeamID: teamID},
			})
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("handler error: %v", err)
			}

			if len(out) != len(tt.wantTopics) {
				t.Fatalf("got %d results, want %d", len(out), len(tt.wantTopics))
			}
			for i, want := range tt.wantTopics {
				if out[i].Topic != want {
					t.Errorf("result %d topic = %q, want %q", i, out[i].Topic, want)
				}
			}
		})
	}
}

func TestHandleLineupSaveRequest_NilPayload(t *testing.T) {
	handlers := newHandlers(&FakeLineupService{})

	if _, err := handlers.HandleLineupSaveRequest(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil payload")
	}
}

func TestHandleLineupImportRequest(t *testing.T) {
	gameID := sharedtypes.GameID("game-1")
	teamID := sharedtypes.TeamID("team-1")
	payload := &lineupevents.LineupImportRequestedPayloadV1{
		GameID:   gameID,
		TeamID:   teamID,
		Filename: "lineup.csv",
		Content:  []byte("1,Ava,SS\n"),
	}

	t.Run("success publishes imported", func(t *testing.T) {
		service := &FakeLineupService{
			ImportLineupFunc: func(_ context.Context, got lineupevents.LineupImportRequestedPayloadV1) (lineupservice.ImportLineupResult, error) {
				if got.Filename != payload.Filename {
					t.Errorf("Filename = %q, want %q", got.Filename, payload.Filename)
				}
				return results.Succeed[lineupevents.LineupImportedPayloadV1, lineupevents.LineupImportFailedPayloadV1](
					lineupevents.LineupImportedPayloadV1{Lineup: lineuptypes.Lineup{GameID: gameID, TeamID: teamID}},
				), nil
			},
		}

		out, err := newHandlers(service).HandleLineupImportRequest(context.Background(), payload)
		if err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if len(out) != 1 || out[0].Topic != lineupevents.LineupImportedV1 {
			t.Fatalf("results = %+v, want one imported message", out)
		}
	})

	t.Run("handled failure publishes failed", func(t *testing.T) {
		service := &FakeLineupService{
			ImportLineupFunc: func(context.Context, lineupevents.LineupImportRequestedPayloadV1) (lineupservice.ImportLineupResult, error) {
				return results.Fail[lineupevents.LineupImportedPayloadV1](
					lineupevents.LineupImportFailedPayloadV1{GameID: gameID, Filename: "lineup.csv", Reason: "unsupported lineup sheet format"},
				), nil
			},
		}

		out, err := newHandlers(service).HandleLineupImportRequest(context.Background(), payload)
		if err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if len(out) != 1 || out[0].Topic != lineupevents.LineupImportFailedV1 {
			t.Fatalf("results = %+v, want one failed message", out)
		}
	})

	t.Run("nil payload", func(t *testing.T) {
		if _, err := newHandlers(&FakeLineupService{}).HandleLineupImportRequest(context.Background(), nil); err == nil {
			t.Fatal("expected error for nil payload")
		}
	})
}
