package slots

import (
	"time"

	"github.com/pitchside/Turf-BookingService/pkg/types"
)

// Selection is a contiguous run of selected slot start times, in sequence
// order. Empty means nothing is selected.
type Selection []types.TimeString

// Contains reports whether the start time is part of the selection.
func (s Selection) Contains(start types.TimeString) bool {
	for _, v := range s {
		if v == start {
			return true
		}
	}
	return false
}

// State is the caller-held selection state for one calendar date.
type State struct {
	Date  time.Time
	Slots Selection
}

// ForDate returns the state adjusted to the given calendar date. Moving to
// a different date clears the selection; selections never carry across days.
func (s State) ForDate(date time.Time) State {
	if !s.Date.IsZero() && sameDay(s.Date, date) {
		return s
	}
	return State{Date: date}
}

// Reduce applies one slot click to the selection state and returns the new
// state. The rules:
//
//   - a click on a disabled slot (booked or lapsed) is ignored;
//   - a click on a slot already in the selection clears the whole selection,
//     whether it held one slot or many;
//   - a click with an empty selection selects just the clicked slot;
//   - a click with exactly one selected slot extends to the forward range
//     between the two, unless any slot in that range is disabled, in which
//     case only the clicked slot stays selected;
//   - a click with a multi-slot selection collapses to the clicked slot.
//
// A click dated differently from the state resets the selection first and
// is then applied to the fresh state.
func Reduce(cal *Calendar, state State, clicked types.TimeString, date time.Time, booked BookedSet, now time.Time) State {
	state = state.ForDate(date)

	clickedIdx, ok := cal.IndexOf(clicked)
	if !ok {
		return state
	}
	if cal.IsDisabled(clicked, booked, date, now) {
		return state
	}

	if state.Slots.Contains(clicked) {
		return State{Date: state.Date}
	}

	switch len(state.Slots) {
	case 0:
		return State{Date: state.Date, Slots: Selection{clicked}}
	case 1:
		anchorIdx, ok := cal.IndexOf(state.Slots[0])
		if !ok {
			return State{Date: state.Date, Slots: Selection{clicked}}
		}
		rng := cal.ForwardRange(anchorIdx, clickedIdx)
		for _, s := range rng {
			if cal.IsDisabled(s, booked, date, now) {
				return State{Date: state.Date, Slots: Selection{clicked}}
			}
		}
		return State{Date: state.Date, Slots: Selection(rng)}
	default:
		return State{Date: state.Date, Slots: Selection{clicked}}
	}
}
