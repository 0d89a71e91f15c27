package scoringhandlers

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace/noop"

	scoringservice "github.com/sandlot-league/scorebook/app/modules/scoring/application"
	scoringevents "github.com/sandlot-league/scorebook/app/modules/scoring/events"
	"github.com/sandlot-league/scorebook/app/shared/observability"
	"github.com/sandlot-league/scorebook/app/shared/results"
	sharedtypes "github.com/sandlot-league/scorebook/app/shared/types"
)

func newHandlers(service *FakeScoringService) Handlers {
	return NewScoringHandlers(
		service,
		observability.NoOpLogger,
		&observability.NoOpMetrics{},
		noop.NewTracerProvider().Tracer("test"),
	)
}

func TestHandleBattingEventRecordRequest(t *testing.T) {
	gameID := sharedtypes.GameID("game-1")

	tests := []struct {
		name       string
		result     scoringservice.RecordBattingEventResult
		serviceErr error
		wantTopics []string
		wantErr    bool
	}{
		{
			name: "success publishes recorded",
			result: results.Succeed[scoringevents.BattingEventRecordedPayloadV1, scoringevents.BattingEventRecordFailedPayloadV1](
				scoringevents.BattingEventRecordedPayloadV1{GameID: gameID, Inning: 1, EventID: 1, Outs: 1},
			),
			wantTopics: []string{scoringevents.BattingEventRecordedV1},
		},
		{
			name: "third out additionally announces finalized half-inning",
			result: results.Succeed[scoringevents.BattingEventRecordedPayloadV1, scoringevents.BattingEventRecordFailedPayloadV1](
				scoringevents.BattingEventRecordedPayloadV1{GameID: gameID, Inning: 1, EventID: 3, Outs: 3, InningFinished: true},
			),
			wantTopics: []string{scoringevents.BattingEventRecordedV1, scoringevents.HalfInningFinalizedV1},
		},
		{
			name: "handled failure publishes failed",
			result: results.Fail[scoringevents.BattingEventRecordedPayloadV1](
				scoringevents.BattingEventRecordFailedPayloadV1{GameID: gameID, Inning: 1, Reason: "invalid result label"},
			),
			wantTopics: []string{scoringevents.BattingEventRecordFailedV1},
		},
		{
			name:       "infrastructure error propagates for redelivery",
			serviceErr: errors.New("store unavailable"),
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &FakeScoringService{
				RecordBattingEventFunc: func(context.Context, scoringevents.BattingEventInput, []int64) (scoringservice.RecordBattingEventResult, error) {
					return tt.result, tt.serviceErr
				},
			}
			h := newHandlers(service)

			payload := &scoringevents.BattingEventRecordRequestedPayloadV1{
				Input: scoringevents.BattingEventInput{GameID: gameID, Inning: 1},
			}
			out, err := h.HandleBattingEventRecordRequest(context.Background(), payload)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("HandleBattingEventRecordRequest() error: %v", err)
			}
			if len(out) != len(tt.wantTopics) {
				t.Fatalf("got %d results, want %d", len(out), len(tt.wantTopics))
			}
			for i, topic := range tt.wantTopics {
				if out[i].Topic != topic {
					t.Errorf("result[%d].Topic = %s, want %s", i, out[i].Topic, topic)
				}
			}
		})
	}
}

func TestHandleBattingEventRecordRequest_NilPayload(t *testing.T) {
	h := newHandlers(&FakeScoringService{})
	if _, err := h.HandleBattingEventRecordRequest(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil payload")
	}
}

func TestHandleBattingEventCorrectRequest(t *testing.T) {
	gameID := sharedtypes.GameID("game-1")

	t.Run("success publishes corrected", func(t *testing.T) {
		service := &FakeScoringService{
			CorrectBattingEventFunc: func(context.Context, sharedtypes.EventID, scoringevents.BattingEventInput, []int64) (scoringservice.CorrectBattingEventResult, error) {
				return results.Succeed[scoringevents.BattingEventCorrectedPayloadV1, scoringevents.BattingEventCorrectFailedPayloadV1](
					scoringevents.BattingEventCorrectedPayloadV1{GameID: gameID, Inning: 2, EventID: 7},
				), nil
			},
		}
		h := newHandlers(service)

		out, err := h.HandleBattingEventCorrectRequest(context.Background(), &scoringevents.BattingEventCorrectRequestedPayloadV1{
			EventID: 7,
			Input:   scoringevents.BattingEventInput{GameID: gameID, Inning: 2},
		})
		if err != nil {
			t.Fatalf("HandleBattingEventCorrectRequest() error: %v", err)
		}
		if len(out) != 1 || out[0].Topic != scoringevents.BattingEventCorrectedV1 {
			t.Fatalf("got %v, want one corrected result", out)
		}
	})

	t.Run("failure publishes correct failed", func(t *testing.T) {
		service := &FakeScoringService{
			CorrectBattingEventFunc: func(context.Context, sharedtypes.EventID, scoringevents.BattingEventInput, []int64) (scoringservice.CorrectBattingEventResult, error) {
				return results.Fail[scoringevents.BattingEventCorrectedPayloadV1](
					scoringevents.BattingEventCorrectFailedPayloadV1{EventID: 7, Reason: "batting event not found"},
				), nil
			},
		}
		h := newHandlers(service)

		out, err := h.HandleBattingEventCorrectRequest(context.Background(), &scoringevents.BattingEventCorrectRequestedPayloadV1{EventID: 7})
		if err != nil {
			t.Fatalf("HandleBattingEventCorrectRequest() error: %v", err)
		}
		if len(out) != 1 || out[0].Topic != scoringevents.BattingEventCorrectFailedV1 {
			t.Fatalf("got %v, want one correct-failed result", out)
		}
	})
}

func TestHandleInningRecomputeRequest(t *testing.T) {
	gameID := sharedtypes.GameID("game-1")

	service := &FakeScoringService{
		RecomputeInningFunc: func(_ context.Context, g sharedtypes.GameID, inning int, _ bool) (scoringservice.RecomputeInningResult, error) {
			return results.Succeed[scoringevents.InningRecomputedPayloadV1, scoringevents.BattingEventRecordFailedPayloadV1](
				scoringevents.InningRecomputedPayloadV1{GameID: g, Inning: inning, Runs: 2, Outs: 3},
			), nil
		},
	}
	h := newHandlers(service)

	out, err := h.HandleInningRecomputeRequest(context.Background(), &scoringevents.InningRecomputeRequestedPayloadV1{
		GameID: gameID,
		Inning: 4,
	})
	if err != nil {
		t.Fatalf("HandleInningRecomputeRequest() error: %v", err)
	}
	if len(out) != 1 || out[0].Topic != scoringevents.InningRecomputedV1 {
		t.Fatalf("got %v, want one recomputed result", out)
	}
	payload, ok := out[0].Payload.(*scoringevents.InningRecomputedPayloadV1)
	if !ok {
		t.Fatalf("payload type = %T", out[0].Payload)
	}
	if payload.Runs != 2 || payload.Outs != 3 {
		t.Errorf("Runs/Outs = %d/%d, want 2/3", payload.Runs, payload.Outs)
	}
}
