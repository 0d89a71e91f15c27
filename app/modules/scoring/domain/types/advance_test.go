package scoringtypes

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func runner(id int64, base BaseNumber) Runner {
	return Runner{ID: id, GameID: "game-1", Inning: 1, PlayerID: "player-" + string(rune('0'+id)), Base: base, Active: true}
}

func TestAdvanceRunners_BatterToFirst(t *testing.T) {
	tests := []struct {
		name     string
		occupied []Runner
		want     []RunnerUpdate
	}{
		{
			name:     "runner on first is forced to second",
			occupied: []Runner{runner(1, BaseFirst)},
			want: []RunnerUpdate{
				{RunnerID: 1, PlayerID: "player-1", NewBase: BaseSecond},
			},
		},
		{
			name:     "runner on second holds with first empty",
			occupied: []Runner{runner(2, BaseSecond)},
			want:     []RunnerUpdate{},
		},
		{
			name:     "runner on third holds without the double force",
			occupied: []Runner{runner(3, BaseThird), runner(1, BaseFirst)},
			want: []RunnerUpdate{
				{RunnerID: 1, PlayerID: "player-1", NewBase: BaseSecond},
			},
		},
		{
			name:     "first and second both forced",
			occupied: []Runner{runner(1, BaseFirst), runner(2, BaseSecond)},
			want: []RunnerUpdate{
				{RunnerID: 2, PlayerID: "player-2", NewBase: BaseThird},
				{RunnerID: 1, PlayerID: "player-1", NewBase: BaseSecond},
			},
		},
		{
			name:     "bases loaded walk forces in a run",
			occupied: []Runner{runner(1, BaseFirst), runner(2, BaseSecond), runner(3, BaseThird)},
			want: []RunnerUpdate{
				{RunnerID: 3, PlayerID: "player-3", NewBase: BaseHome, Scored: true},
				{RunnerID: 2, PlayerID: "player-2", NewBase: BaseThird},
				{RunnerID: 1, PlayerID: "player-1", NewBase: BaseSecond},
			},
		},
		{
			name:     "second and third hold with first empty",
			occupied: []Runner{runner(2, BaseSecond), runner(3, BaseThird)},
			want:     []RunnerUpdate{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdvanceRunners(tt.occupied, BaseFirst)
			if got == nil {
				got = []RunnerUpdate{}
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("AdvanceRunners mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAdvanceRunners_BatterToSecond(t *testing.T) {
	// Double: every runner moves exactly two bases, capped at home.
	occupied := []Runner{runner(1, BaseFirst), runner(2, BaseSecond), runner(3, BaseThird)}
	want := []RunnerUpdate{
		{RunnerID: 3, PlayerID: "player-3", NewBase: BaseHome, Scored: true},
		{RunnerID: 2, PlayerID: "player-2", NewBase: BaseHome, Scored: true},
		{RunnerID: 1, PlayerID: "player-1", NewBase: BaseThird},
	}
	got := AdvanceRunners(occupied, BaseSecond)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AdvanceRunners mismatch (-want +got):\n%s", diff)
	}
}

func TestAdvanceRunners_DoubleWithRunnerOnFirstOnly(t *testing.T) {
	got := AdvanceRunners([]Runner{runner(1, BaseFirst)}, BaseSecond)
	want := []RunnerUpdate{
		{RunnerID: 1, PlayerID: "player-1", NewBase: BaseThird},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AdvanceRunners mismatch (-want +got):\n%s", diff)
	}
}

func TestAdvanceRunners_TripleAndHomeRunClearTheBases(t *testing.T) {
	for _, batterBase := range []BaseNumber{BaseThird, BaseHome} {
		occupied := []Runner{runner(1, BaseFirst), runner(2, BaseSecond), runner(3, BaseThird)}
		got := AdvanceRunners(occupied, batterBase)
		if len(got) != 3 {
			t.Fatalf("batterBase=%d: expected 3 updates, got %d", batterBase, len(got))
		}
		for _, u := range got {
			if u.NewBase != BaseHome || !u.Scored {
				t.Errorf("batterBase=%d: runner %d should score, got %+v", batterBase, u.RunnerID, u)
			}
		}
	}
}

func TestAdvanceRunners_NoMovementCases(t *testing.T) {
	if got := AdvanceRunners(nil, BaseSecond); got != nil {
		t.Errorf("no runners: expected nil, got %v", got)
	}
	if got := AdvanceRunners([]Runner{runner(1, BaseFirst)}, BaseNone); got != nil {
		t.Errorf("clean out: expected nil, got %v", got)
	}
}

func TestAdvanceRunners_EvaluatesLeadRunnersFirst(t *testing.T) {
	occupied := []Runner{runner(1, BaseFirst), runner(3, BaseThird), runner(2, BaseSecond)}
	got := AdvanceRunners(occupied, BaseFirst)
	// Order of updates must run from home backward regardless of input order.
	wantOrder := []int64{3, 2, 1}
	if len(got) != len(wantOrder) {
		t.Fatalf("expected %d updates, got %d", len(wantOrder), len(got))
	}
	for i, id := range wantOrder {
		if got[i].RunnerID != id {
			t.Errorf("update %d: expected runner %d, got %d", i, id, got[i].RunnerID)
		}
	}
}
