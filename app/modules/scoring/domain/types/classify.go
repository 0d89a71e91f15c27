package scoringtypes

// Classification is the classifier's verdict on a plate appearance.
type Classification struct {
	BaseReached BaseNumber `json:"base_reached"`
	IsOut       bool       `json:"is_out"`
}

// baseReachedByResult is the fixed base-reached table.
var baseReachedByResult = map[BattingResult]BaseNumber{
	ResultHit:            BaseFirst,
	ResultDouble:         BaseSecond,
	ResultTriple:         BaseThird,
	ResultHomeRun:        BaseHome,
	ResultWalk:           BaseFirst,
	ResultHitByPitch:     BaseFirst,
	ResultFieldersChoice: BaseFirst,
	ResultStrikeout:      BaseNone,
	ResultGroundout:      BaseNone,
	ResultFlyout:         BaseNone,
	ResultLineout:        BaseNone,
	ResultSacrificeBunt:  BaseNone,
	ResultSacrificeFly:   BaseNone,
}

// outResults are the results counted as an out for the batter.
var outResults = map[BattingResult]bool{
	ResultStrikeout:      true,
	ResultGroundout:      true,
	ResultFlyout:         true,
	ResultLineout:        true,
	ResultSacrificeBunt:  true,
	ResultSacrificeFly:   true,
	ResultFieldersChoice: true,
}

// Classify maps a result label plus the scorer's error flag to the base the
// batter reached and whether the batter is out. A set error flag always puts
// the batter safely on first, overriding the nominal result; this is the
// scorer-facing override, not a judgment call the engine makes on its own.
// Classify never fails: unknown labels are rejected upstream by validation.
func Classify(result BattingResult, hasError bool) Classification {
	if hasError {
		return Classification{BaseReached: BaseFirst, IsOut: false}
	}
	return Classification{
		BaseReached: baseReachedByResult[result],
		IsOut:       outResults[result],
	}
}
