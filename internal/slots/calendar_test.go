package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchside/Turf-BookingService/pkg/types"
)

func mustCalendar(t *testing.T, open, close types.TimeString) *Calendar {
	t.Helper()
	cal, err := NewCalendar(open, close)
	require.NoError(t, err)
	return cal
}

func starts(ss ...string) []types.TimeString {
	out := make([]types.TimeString, len(ss))
	for i, s := range ss {
		out[i] = types.TimeString(s)
	}
	return out
}

func TestNewCalendar_Sequence(t *testing.T) {
	t.Run("regular day window", func(t *testing.T) {
		cal := mustCalendar(t, "06:00", "22:00")

		seq := cal.Sequence()
		assert.Len(t, seq, 16)
		assert.Equal(t, types.TimeString("06:00"), seq[0])
		assert.Equal(t, types.TimeString("21:00"), seq[len(seq)-1])
		assert.False(t, cal.IsOvernight())
	})

	t.Run("overnight window wraps midnight", func(t *testing.T) {
		cal := mustCalendar(t, "23:00", "05:00")

		assert.True(t, cal.IsOvernight())
		assert.Equal(t, starts("23:00", "00:00", "01:00", "02:00", "03:00", "04:00"), cal.Sequence())
	})

	t.Run("open equal to close covers the full day", func(t *testing.T) {
		cal := mustCalendar(t, "08:00", "08:00")

		seq := cal.Sequence()
		require.Len(t, seq, 24)
		assert.Equal(t, types.TimeString("08:00"), seq[0])
		assert.Equal(t, types.TimeString("07:00"), seq[len(seq)-1])
		assert.True(t, cal.IsOvernight())
	})

	t.Run("invalid open time rejected", func(t *testing.T) {
		_, err := NewCalendar("25:00", "05:00")
		assert.Error(t, err)
	})

	t.Run("invalid close time rejected", func(t *testing.T) {
		_, err := NewCalendar("09:00", "9am")
		assert.Error(t, err)
	})
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "06:00 - 07:00", Label("06:00"))
	assert.Equal(t, "23:00 - 00:00", Label("23:00"))
}

func TestCalendar_IsDisabled(t *testing.T) {
	cal := mustCalendar(t, "06:00", "22:00")
	now := time.Date(2026, 3, 14, 14, 30, 0, 0, time.UTC)
	today := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)

	t.Run("booked slot disabled", func(t *testing.T) {
		booked := NewBookedSet("10:00")
		assert.True(t, cal.IsDisabled("10:00", booked, tomorrow, now))
	})

	t.Run("lapsed slot disabled today", func(t *testing.T) {
		assert.True(t, cal.IsDisabled("14:00", nil, today, now))
		assert.False(t, cal.IsDisabled("15:00", nil, today, now))
	})

	t.Run("slot starting exactly now is lapsed", func(t *testing.T) {
		atNow := time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC)
		assert.True(t, cal.IsDisabled("14:00", nil, today, atNow))
	})

	t.Run("future date never lapses", func(t *testing.T) {
		assert.False(t, cal.IsDisabled("14:00", nil, tomorrow, now))
		assert.False(t, cal.IsDisabled("06:00", nil, tomorrow, now))
	})
}

func TestCalendar_ForwardRange(t *testing.T) {
	t.Run("regular window is order independent", func(t *testing.T) {
		cal := mustCalendar(t, "06:00", "10:00")

		want := starts("06:00", "07:00", "08:00", "09:00")
		assert.Equal(t, want, cal.ForwardRange(0, 3))
		assert.Equal(t, want, cal.ForwardRange(3, 0))
	})

	t.Run("single index", func(t *testing.T) {
		cal := mustCalendar(t, "06:00", "10:00")
		assert.Equal(t, starts("07:00"), cal.ForwardRange(1, 1))
	})

	t.Run("overnight walks forward through the wrap", func(t *testing.T) {
		cal := mustCalendar(t, "23:00", "02:00")
		require.Equal(t, starts("23:00", "00:00", "01:00"), cal.Sequence())

		assert.Equal(t, starts("23:00", "00:00", "01:00"), cal.ForwardRange(0, 2))
		assert.Equal(t, starts("01:00", "23:00"), cal.ForwardRange(2, 0))
		assert.Equal(t, starts("00:00", "01:00"), cal.ForwardRange(1, 2))
	})

	t.Run("out of range index yields nil", func(t *testing.T) {
		cal := mustCalendar(t, "06:00", "10:00")
		assert.Nil(t, cal.ForwardRange(-1, 2))
		assert.Nil(t, cal.ForwardRange(0, 4))
	})
}
