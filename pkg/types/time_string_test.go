package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "canonical", input: "09:30", want: "09:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "last minute", input: "23:59", want: "23:59"},
		{name: "seconds truncated", input: "14:00:00", want: "14:00"},
		{name: "hour out of range", input: "25:00", wantErr: true},
		{name: "minute out of range", input: "10:75", wantErr: true},
		{name: "not zero padded", input: "9:30", wantErr: true},
		{name: "garbage", input: "9am", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
	}{
		{name: "plain hour", start: "10:00", minutes: 60, want: "11:00"},
		{name: "wraps past midnight", start: "23:00", minutes: 60, want: "00:00"},
		{name: "wraps well past midnight", start: "23:30", minutes: 90, want: "01:00"},
		{name: "negative wraps backwards", start: "00:00", minutes: -60, want: "23:00"},
		{name: "full day is identity", start: "07:15", minutes: 1440, want: "07:15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := TimeString("bogus").AddMinutes(60)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestTimeString_OnDate(t *testing.T) {
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	got, err := TimeString("14:30").OnDate(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC), got)

	// Часовой пояс даты сохраняется
	msk := time.FixedZone("MSK", 3*60*60)
	got, err = TimeString("08:00").OnDate(date.In(msk))
	require.NoError(t, err)
	assert.Equal(t, msk, got.Location())

	_, err = TimeString("").OnDate(date)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("08:00:00"))
	assert.Equal(t, TimeString("08:00"), ts)

	require.NoError(t, ts.Scan([]byte("21:45")))
	assert.Equal(t, TimeString("21:45"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 1, 1, 6, 30, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("06:30"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.ErrorIs(t, ts.Scan(42), ErrInvalidScanValue)
	assert.ErrorIs(t, ts.Scan("not a time"), ErrInvalidScanValue)
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("12:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "12:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("99:99").Value()
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestFromMinutes(t *testing.T) {
	assert.Equal(t, TimeString("00:00"), FromMinutes(0))
	assert.Equal(t, TimeString("23:00"), FromMinutes(1380))
	assert.Equal(t, TimeString("01:30"), FromMinutes(90))
	// Нормализация за пределами суток
	assert.Equal(t, TimeString("00:30"), FromMinutes(1470))
	assert.Equal(t, TimeString("23:00"), FromMinutes(-60))
}
