package scoringtypes

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		result   BattingResult
		hasError bool
		want     Classification
	}{
		{"single", ResultHit, false, Classification{BaseReached: BaseFirst, IsOut: false}},
		{"double", ResultDouble, false, Classification{BaseReached: BaseSecond, IsOut: false}},
		{"triple", ResultTriple, false, Classification{BaseReached: BaseThird, IsOut: false}},
		{"home run", ResultHomeRun, false, Classification{BaseReached: BaseHome, IsOut: false}},
		{"walk", ResultWalk, false, Classification{BaseReached: BaseFirst, IsOut: false}},
		{"hit by pitch", ResultHitByPitch, false, Classification{BaseReached: BaseFirst, IsOut: false}},
		{"fielder's choice reaches first but is an out", ResultFieldersChoice, false, Classification{BaseReached: BaseFirst, IsOut: true}},
		{"strikeout", ResultStrikeout, false, Classification{BaseReached: BaseNone, IsOut: true}},
		{"groundout", ResultGroundout, false, Classification{BaseReached: BaseNone, IsOut: true}},
		{"flyout", ResultFlyout, false, Classification{BaseReached: BaseNone, IsOut: true}},
		{"lineout", ResultLineout, false, Classification{BaseReached: BaseNone, IsOut: true}},
		{"sacrifice bunt", ResultSacrificeBunt, false, Classification{BaseReached: BaseNone, IsOut: true}},
		{"sacrifice fly", ResultSacrificeFly, false, Classification{BaseReached: BaseNone, IsOut: true}},
		{"error overrides groundout", ResultGroundout, true, Classification{BaseReached: BaseFirst, IsOut: false}},
		{"error overrides strikeout", ResultStrikeout, true, Classification{BaseReached: BaseFirst, IsOut: false}},
		{"error overrides fielder's choice", ResultFieldersChoice, true, Classification{BaseReached: BaseFirst, IsOut: false}},
		{"error on a single is a no-op", ResultHit, true, Classification{BaseReached: BaseFirst, IsOut: false}},
		{"error on a double still forces first", ResultDouble, true, Classification{BaseReached: BaseFirst, IsOut: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.result, tt.hasError)
			if got != tt.want {
				t.Errorf("Classify(%s, %v) = %+v, want %+v", tt.result, tt.hasError, got, tt.want)
			}
		})
	}
}

func TestClassify_AllErrorResultsReachFirstSafely(t *testing.T) {
	all := []BattingResult{
		ResultHit, ResultDouble, ResultTriple, ResultHomeRun,
		ResultWalk, ResultHitByPitch, ResultFieldersChoice,
		ResultStrikeout, ResultGroundout, ResultFlyout, ResultLineout,
		ResultSacrificeBunt, ResultSacrificeFly,
	}
	for _, r := range all {
		got := Classify(r, true)
		if got.BaseReached != BaseFirst || got.IsOut {
			t.Errorf("Classify(%s, true) = %+v, want base 1 and not out", r, got)
		}
	}
}

func TestBattingResult_IsValid(t *testing.T) {
	if !ResultHomeRun.IsValid() {
		t.Error("HOME_RUN should be valid")
	}
	if BattingResult("BUNT_SINGLE").IsValid() {
		t.Error("unknown label should be invalid")
	}
	if BattingResult("").IsValid() {
		t.Error("empty label should be invalid")
	}
}

func TestAnnotation_DisplayTags(t *testing.T) {
	tests := []struct {
		name string
		ann  Annotation
		want string
	}{
		{"empty", Annotation{}, ""},
		{"position only", Annotation{Position: "6"}, "6"},
		{"position and error", Annotation{Position: "4", HasError: true}, "4,error"},
		{"double play", Annotation{Position: "6", OutRunnerCount: 1}, "6,double play"},
		{"triple play", Annotation{OutRunnerCount: 2}, "triple play"},
		{"everything", Annotation{Position: "5", HasError: true, OutRunnerCount: 1}, "5,error,double play"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ann.DisplayTags(); got != tt.want {
				t.Errorf("DisplayTags() = %q, want %q", got, tt.want)
			}
		})
	}
}
