package lineuptypes

import (
	"errors"
	"fmt"

	sharedtypes "github.com/sandlot-league/scorebook/app/shared/types"
)

var (
	ErrSlotNotFound     = errors.New("batting-order slot not found")
	ErrMemberInUse      = errors.New("member already assigned elsewhere")
	ErrPositionInUse    = errors.New("fielding position already assigned")
	ErrInvalidPosition  = errors.New("invalid fielding position")
	ErrInvalidOrder     = errors.New("batting order out of range")
	ErrDuplicateOrder   = errors.New("duplicate batting-order number")
	ErrNonContiguous    = errors.New("batting-order numbers not contiguous from one")
	ErrDHWithoutSlotTen = errors.New("designated hitter position outside slot ten")
)

// BuildLineup assembles a game's lineup. Per batting-order slot the
// resolution order is: an existing game-scoped record, else the team's
// default template entry, else an empty slot. Slot ten exists only with
// the designated hitter and defaults to the DH position.
func BuildLineup(
	gameID sharedtypes.GameID,
	teamID sharedtypes.TeamID,
	existing []LineupSlot,
	existingSubs []Substitute,
	template *DefaultLineupTemplate,
	useDH bool,
) Lineup {
	byOrder := make(map[int]LineupSlot, len(existing))
	for _, slot := range existing {
		byOrder[slot.Order] = slot
	}
	var templateByOrder map[int]LineupSlot
	if template != nil {
		templateByOrder = make(map[int]LineupSlot, len(template.Starters))
		for _, slot := range template.Starters {
			templateByOrder[slot.Order] = slot
		}
	}

	maxOrder := MaxOrder
	if useDH {
		maxOrder = DHOrder
	}
	starters := make([]LineupSlot, 0, maxOrder)
	for order := MinOrder; order <= maxOrder; order++ {
		if slot, ok := byOrder[order]; ok {
			starters = append(starters, slot)
			continue
		}
		if slot, ok := templateByOrder[order]; ok {
			starters = append(starters, slot)
			continue
		}
		slot := LineupSlot{Order: order}
		if order == DHOrder {
			slot.Position = PositionDesignatedHitter
		}
		starters = append(starters, slot)
	}

	subs := existingSubs
	if len(subs) == 0 && template != nil {
		subs = append([]Substitute(nil), template.Substitutes...)
	}

	return Lineup{
		GameID:      gameID,
		TeamID:      teamID,
		UseDH:       useDH,
		Starters:    starters,
		Substitutes: subs,
	}
}

func (l *Lineup) slot(order int) (*LineupSlot, error) {
	for i := range l.Starters {
		if l.Starters[i].Order == order {
			return &l.Starters[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrSlotNotFound, order)
}

// memberUsed reports whether the member occupies a slot or substitute
// entry other than the given order (-1 checks everywhere).
func (l *Lineup) memberUsed(memberID sharedtypes.MemberID, exceptOrder int) bool {
	if memberID == "" {
		return false
	}
	for _, slot := range l.Starters {
		if slot.Order != exceptOrder && slot.MemberID == memberID {
			return true
		}
	}
	for _, sub := range l.Substitutes {
		if sub.MemberID == memberID {
			return true
		}
	}
	return false
}

// AssignMember puts a team member in the slot, auto-filling the display
// name from the member's profile and clearing any free-text name. A member
// already used in another slot or substitute entry is rejected.
func (l *Lineup) AssignMember(order int, member Member) error {
	slot, err := l.slot(order)
	if err != nil {
		return err
	}
	if l.memberUsed(member.ID, order) {
		return fmt.Errorf("%w: %s", ErrMemberInUse, member.ID)
	}
	slot.MemberID = member.ID
	slot.PlayerName = member.DisplayName
	return nil
}

// SetPlayerName sets a free-text name on the slot, clearing any member
// assignment. Name and member are mutually exclusive per slot.
func (l *Lineup) SetPlayerName(order int, name string) error {
	slot, err := l.slot(order)
	if err != nil {
		return err
	}
	slot.MemberID = ""
	slot.PlayerName = name
	return nil
}

// SetPosition assigns a fielding position to the slot. A position held by
// another starter is rejected; the designated-hitter position is allowed
// only on slot ten.
func (l *Lineup) SetPosition(order int, position FieldingPosition) error {
	slot, err := l.slot(order)
	if err != nil {
		return err
	}
	if !position.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidPosition, position)
	}
	if position == PositionDesignatedHitter && order != DHOrder {
		return ErrDHWithoutSlotTen
	}
	if position != PositionNone {
		for _, other := range l.Starters {
			if other.Order != order && other.Position == position {
				return fmt.Errorf("%w: %s", ErrPositionInUse, position)
			}
		}
	}
	slot.Position = position
	return nil
}

// AddSubstitute appends a bench entry. A referenced member must not occupy
// a slot or another substitute entry.
func (l *Lineup) AddSubstitute(sub Substitute) error {
	if l.memberUsed(sub.MemberID, -1) {
		return fmt.Errorf("%w: %s", ErrMemberInUse, sub.MemberID)
	}
	l.Substitutes = append(l.Substitutes, sub)
	return nil
}

// AvailableMembers filters the roster down to members not already used in
// a slot or substitute entry. The member currently in the given slot stays
// selectable for that slot.
func (l *Lineup) AvailableMembers(order int, roster []Member) []Member {
	available := make([]Member, 0, len(roster))
	for _, m := range roster {
		if !l.memberUsed(m.ID, order) {
			available = append(available, m)
		}
	}
	return available
}

// AvailablePositions lists the positions the slot may take: positions used
// by other starters are excluded, and the designated-hitter position is
// offered only to slot ten.
func (l *Lineup) AvailablePositions(order int) []FieldingPosition {
	used := make(map[FieldingPosition]bool, len(l.Starters))
	for _, slot := range l.Starters {
		if slot.Order != order && slot.Position != PositionNone {
			used[slot.Position] = true
		}
	}
	available := make([]FieldingPosition, 0, len(FieldingPositions))
	for _, p := range FieldingPositions {
		if used[p] {
			continue
		}
		if p == PositionDesignatedHitter && order != DHOrder {
			continue
		}
		available = append(available, p)
	}
	return available
}

// ToggleDH turns the designated hitter on or off. Toggling on appends slot
// ten pre-set to the DH position; toggling off removes slot ten entirely.
// Other slots are never rebalanced.
func (l *Lineup) ToggleDH(on bool) {
	if on == l.UseDH {
		return
	}
	l.UseDH = on
	if on {
		l.Starters = append(l.Starters, LineupSlot{
			Order:    DHOrder,
			Position: PositionDesignatedHitter,
		})
		return
	}
	starters := make([]LineupSlot, 0, len(l.Starters))
	for _, slot := range l.Starters {
		if slot.Order != DHOrder {
			starters = append(starters, slot)
		}
	}
	l.Starters = starters
}

// Validate checks the lineup invariants: contiguous batting order from one,
// no duplicate non-DH position, no member referenced twice, DH position
// confined to slot ten.
func (l *Lineup) Validate() error {
	maxOrder := MaxOrder
	if l.UseDH {
		maxOrder = DHOrder
	}
	if len(l.Starters) != maxOrder {
		return fmt.Errorf("%w: have %d slots, want %d", ErrNonContiguous, len(l.Starters), maxOrder)
	}

	seenOrder := make(map[int]bool, len(l.Starters))
	seenPosition := make(map[FieldingPosition]bool, len(l.Starters))
	seenMember := make(map[sharedtypes.MemberID]bool)
	for _, slot := range l.Starters {
		if slot.Order < MinOrder || slot.Order > maxOrder {
			return fmt.Errorf("%w: %d", ErrInvalidOrder, slot.Order)
		}
		if seenOrder[slot.Order] {
			return fmt.Errorf("%w: %d", ErrDuplicateOrder, slot.Order)
		}
		seenOrder[slot.Order] = true

		if !slot.Position.IsValid() {
			return fmt.Errorf("%w: %s", ErrInvalidPosition, slot.Position)
		}
		if slot.Position == PositionDesignatedHitter && slot.Order != DHOrder {
			return ErrDHWithoutSlotTen
		}
		if slot.Position != PositionNone && slot.Position != PositionDesignatedHitter {
			if seenPosition[slot.Position] {
				return fmt.Errorf("%w: %s", ErrPositionInUse, slot.Position)
			}
			seenPosition[slot.Position] = true
		}

		if slot.MemberID != "" {
			if seenMember[slot.MemberID] {
				return fmt.Errorf("%w: %s", ErrMemberInUse, slot.MemberID)
			}
			seenMember[slot.MemberID] = true
		}
	}
	for order := MinOrder; order <= maxOrder; order++ {
		if !seenOrder[order] {
			return fmt.Errorf("%w: missing %d", ErrNonContiguous, order)
		}
	}

	for _, sub := range l.Substitutes {
		if sub.MemberID == "" {
			continue
		}
		if seenMember[sub.MemberID] {
			return fmt.Errorf("%w: %s", ErrMemberInUse, sub.MemberID)
		}
		seenMember[sub.MemberID] = true
	}
	return nil
}
