// Package slots generates the bookable hourly slot sequence for a turf's
// operating window and implements the selection rules over it. Everything
// here is pure computation: callers supply the schedule, the booked starts
// and the current time, and get values back.
package slots

import (
	"fmt"
	"time"

	"github.com/pitchside/Turf-BookingService/pkg/types"
)

// BookedSet holds slot start times already reserved for one calendar date.
type BookedSet map[types.TimeString]struct{}

// NewBookedSet builds a BookedSet from a list of slot start times.
func NewBookedSet(starts ...types.TimeString) BookedSet {
	set := make(BookedSet, len(starts))
	for _, s := range starts {
		set[s] = struct{}{}
	}
	return set
}

// Contains reports whether the start time is reserved.
func (b BookedSet) Contains(start types.TimeString) bool {
	_, ok := b[start]
	return ok
}

// Calendar is the ordered hourly slot sequence for one operating window.
// A window whose close is numerically at or before its open spans midnight:
// the sequence runs open→23:00 and then 00:00→close, and contiguity is
// defined by that index order, not by clock order. Open equal to close
// produces the full 24-hour sequence.
type Calendar struct {
	open      types.TimeString
	close     types.TimeString
	overnight bool
	sequence  []types.TimeString
	index     map[types.TimeString]int
}

// NewCalendar validates the operating window and builds the slot sequence.
func NewCalendar(open, close types.TimeString) (*Calendar, error) {
	openMin, err := open.Minutes()
	if err != nil {
		return nil, fmt.Errorf("invalid open time %q: %w", open, err)
	}
	closeMin, err := close.Minutes()
	if err != nil {
		return nil, fmt.Errorf("invalid close time %q: %w", close, err)
	}

	c := &Calendar{
		open:      open,
		close:     close,
		overnight: closeMin <= openMin,
	}

	if c.overnight {
		for m := openMin; m < 24*60; m += 60 {
			c.sequence = append(c.sequence, types.FromMinutes(m))
		}
		for m := 0; m < closeMin; m += 60 {
			c.sequence = append(c.sequence, types.FromMinutes(m))
		}
	} else {
		for m := openMin; m < closeMin; m += 60 {
			c.sequence = append(c.sequence, types.FromMinutes(m))
		}
	}

	c.index = make(map[types.TimeString]int, len(c.sequence))
	for i, s := range c.sequence {
		c.index[s] = i
	}

	return c, nil
}

// IsOvernight reports whether the window spans midnight.
func (c *Calendar) IsOvernight() bool {
	return c.overnight
}

// Sequence returns the slot start times in traversal order. The returned
// slice is a copy.
func (c *Calendar) Sequence() []types.TimeString {
	out := make([]types.TimeString, len(c.sequence))
	copy(out, c.sequence)
	return out
}

// Len returns the number of slots in the window.
func (c *Calendar) Len() int {
	return len(c.sequence)
}

// IndexOf returns the slot's position in the sequence.
func (c *Calendar) IndexOf(start types.TimeString) (int, bool) {
	i, ok := c.index[start]
	return i, ok
}

// Label formats a slot as "HH:MM - HH:MM"; the end wraps past midnight,
// so the slot starting at 23:00 is labelled "23:00 - 00:00".
func Label(start types.TimeString) string {
	end, err := start.AddMinutes(60)
	if err != nil {
		return start.String()
	}
	return start.String() + " - " + end.String()
}

// IsDisabled reports whether the slot cannot be selected: its start is
// already booked, or the selected date is today and the start instant has
// lapsed. Slots on future dates never lapse regardless of clock time.
func (c *Calendar) IsDisabled(start types.TimeString, booked BookedSet, date, now time.Time) bool {
	if booked.Contains(start) {
		return true
	}
	if !sameDay(date, now) {
		return false
	}
	instant, err := start.OnDate(date)
	if err != nil {
		return true
	}
	return !instant.After(now)
}

// ForwardRange returns the inclusive run of slots from index i to index j.
// For a non-overnight window the run is the ascending slice between the two
// indices. For an overnight window the sequence is circular and the run
// always walks forward from i, wrapping through the end of the sequence when
// j < i, so the endpoints are not symmetric. Out-of-range indices yield nil.
func (c *Calendar) ForwardRange(i, j int) []types.TimeString {
	n := len(c.sequence)
	if i < 0 || j < 0 || i >= n || j >= n {
		return nil
	}
	if i == j {
		return []types.TimeString{c.sequence[i]}
	}
	if !c.overnight && j < i {
		i, j = j, i
	}
	if j > i {
		out := make([]types.TimeString, 0, j-i+1)
		out = append(out, c.sequence[i:j+1]...)
		return out
	}
	out := make([]types.TimeString, 0, n-i+j+1)
	out = append(out, c.sequence[i:]...)
	out = append(out, c.sequence[:j+1]...)
	return out
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
