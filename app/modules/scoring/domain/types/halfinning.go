package scoringtypes

// MaxOuts ends a half-inning.
const MaxOuts = 3

// HalfInningState tracks cumulative outs for one team's half of one inning.
// It moves from Active (0-2 outs) to Finalized (3 outs) and never back.
type HalfInningState struct {
	Outs      int  `json:"outs"`
	Finalized bool `json:"finalized"`
}

// NewHalfInningState starts a fresh half-inning with no outs.
func NewHalfInningState() HalfInningState {
	return HalfInningState{}
}

// AddOuts records n additional outs. If the total would exceed three it is
// clamped at exactly three and clamped is returned true so the caller can
// warn; scorers correcting mid-entry routinely overshoot and the engine must
// not persist an over-count. Reaching three outs finalizes the half-inning.
func (s *HalfInningState) AddOuts(n int) (clamped bool) {
	if n < 0 {
		n = 0
	}
	s.Outs += n
	if s.Outs >= MaxOuts {
		clamped = s.Outs > MaxOuts
		s.Outs = MaxOuts
		s.Finalized = true
	}
	return clamped
}

// IsFinalized reports whether the half-inning has ended. Once finalized the
// caller clears every remaining active runner for the inning.
func (s *HalfInningState) IsFinalized() bool {
	return s.Finalized
}
