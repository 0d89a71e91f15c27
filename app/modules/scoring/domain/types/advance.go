package scoringtypes

import "sort"

// AdvanceRunners computes each active runner's new base given the base the
// batter reached. Runners are evaluated from the base closest to home
// backward so a lead runner vacates before a trailing runner arrives.
//
// Rules:
//   - batter to first: forced advances only. First always moves up; second
//     moves only if first was occupied; third scores only on a bases-loaded
//     force. Unforced runners hold.
//   - batter to second: everyone moves exactly two bases, capped at home.
//   - batter to third or home: every runner scores.
//
// A runner whose new base is home is marked Scored. Callers must not invoke
// this for a clean out (batter base 0 and no error); with batterBase 0 no
// runner moves.
func AdvanceRunners(occupied []Runner, batterBase BaseNumber) []RunnerUpdate {
	if batterBase == BaseNone || len(occupied) == 0 {
		return nil
	}

	onBase := map[BaseNumber]bool{}
	for _, r := range occupied {
		onBase[r.Base] = true
	}

	// Lead runners first.
	runners := make([]Runner, len(occupied))
	copy(runners, occupied)
	sort.Slice(runners, func(i, j int) bool {
		return runners[i].Base > runners[j].Base
	})

	updates := make([]RunnerUpdate, 0, len(runners))
	for _, r := range runners {
		newBase := r.Base

		switch {
		case batterBase >= BaseThird:
			newBase = BaseHome
		case batterBase == BaseSecond:
			newBase = r.Base + 2
			if newBase > BaseHome {
				newBase = BaseHome
			}
		case batterBase == BaseFirst:
			switch r.Base {
			case BaseFirst:
				newBase = BaseSecond
			case BaseSecond:
				if onBase[BaseFirst] {
					newBase = BaseThird
				}
			case BaseThird:
				if onBase[BaseFirst] && onBase[BaseSecond] {
					newBase = BaseHome
				}
			}
		}

		if newBase == r.Base {
			continue
		}
		updates = append(updates, RunnerUpdate{
			RunnerID: r.ID,
			PlayerID: r.PlayerID,
			NewBase:  newBase,
			Scored:   newBase == BaseHome,
		})
	}
	return updates
}
