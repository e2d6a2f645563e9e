package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchside/Turf-BookingService/pkg/types"
)

func TestReduce(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

	cal := mustCalendar(t, "06:00", "12:00")

	click := func(state State, slot types.TimeString, booked BookedSet) State {
		return Reduce(cal, state, slot, date, booked, now)
	}

	t.Run("first click selects single slot", func(t *testing.T) {
		state := click(State{}, "07:00", nil)
		assert.Equal(t, Selection{"07:00"}, state.Slots)
	})

	t.Run("click on disabled slot is ignored", func(t *testing.T) {
		booked := NewBookedSet("07:00")
		state := click(State{Date: date, Slots: Selection{"06:00"}}, "07:00", booked)
		assert.Equal(t, Selection{"06:00"}, state.Slots)
	})

	t.Run("click on unknown slot is ignored", func(t *testing.T) {
		state := click(State{Date: date, Slots: Selection{"06:00"}}, "13:00", nil)
		assert.Equal(t, Selection{"06:00"}, state.Slots)
	})

	t.Run("re-click on lone selected slot deselects", func(t *testing.T) {
		state := click(State{Date: date, Slots: Selection{"07:00"}}, "07:00", nil)
		assert.Empty(t, state.Slots)
	})

	t.Run("second click extends to the forward range", func(t *testing.T) {
		state := click(State{Date: date, Slots: Selection{"07:00"}}, "10:00", nil)
		assert.Equal(t, Selection{"07:00", "08:00", "09:00", "10:00"}, state.Slots)
	})

	t.Run("second click before anchor still yields ascending range", func(t *testing.T) {
		state := click(State{Date: date, Slots: Selection{"10:00"}}, "07:00", nil)
		assert.Equal(t, Selection{"07:00", "08:00", "09:00", "10:00"}, state.Slots)
	})

	t.Run("range with booked interior falls back to clicked slot", func(t *testing.T) {
		booked := NewBookedSet("08:00")
		state := click(State{Date: date, Slots: Selection{"07:00"}}, "10:00", booked)
		assert.Equal(t, Selection{"10:00"}, state.Slots)
	})

	t.Run("click on member of multi-slot selection clears everything", func(t *testing.T) {
		state := State{Date: date, Slots: Selection{"07:00", "08:00", "09:00"}}
		state = click(state, "08:00", nil)
		assert.Empty(t, state.Slots)
	})

	t.Run("click outside multi-slot selection collapses to single", func(t *testing.T) {
		state := State{Date: date, Slots: Selection{"07:00", "08:00", "09:00"}}
		state = click(state, "11:00", nil)
		assert.Equal(t, Selection{"11:00"}, state.Slots)
	})

	t.Run("date change resets selection before the click applies", func(t *testing.T) {
		otherDate := date.AddDate(0, 0, 1)
		state := State{Date: date, Slots: Selection{"07:00", "08:00"}}
		state = Reduce(cal, state, "08:00", otherDate, nil, now)
		// On the fresh date the click is a first pick, not a member re-click.
		assert.Equal(t, Selection{"08:00"}, state.Slots)
		assert.True(t, state.Date.Equal(otherDate))
	})
}

func TestReduce_Overnight(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

	cal := mustCalendar(t, "22:00", "03:00")
	require.Equal(t, starts("22:00", "23:00", "00:00", "01:00", "02:00"), cal.Sequence())

	t.Run("range crosses midnight in sequence order", func(t *testing.T) {
		state := State{Date: date, Slots: Selection{"23:00"}}
		state = Reduce(cal, state, "01:00", date, nil, now)
		assert.Equal(t, Selection{"23:00", "00:00", "01:00"}, state.Slots)
	})

	t.Run("backward pick wraps through the sequence end", func(t *testing.T) {
		state := State{Date: date, Slots: Selection{"01:00"}}
		state = Reduce(cal, state, "23:00", date, nil, now)
		assert.Equal(t, Selection{"01:00", "02:00", "22:00", "23:00"}, state.Slots)
	})
}

func TestState_ForDate(t *testing.T) {
	date := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	state := State{Date: date, Slots: Selection{"07:00"}}

	sameLater := time.Date(2026, 3, 20, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, state, state.ForDate(sameLater))

	next := date.AddDate(0, 0, 1)
	reset := state.ForDate(next)
	assert.Empty(t, reset.Slots)
	assert.True(t, reset.Date.Equal(next))
}
