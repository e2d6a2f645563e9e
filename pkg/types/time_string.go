package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const (
	// Layout is the canonical wall-clock format ("HH:MM", zero-padded).
	Layout = "15:04"

	minutesPerDay = 24 * 60
)

var (
	// ErrInvalidFormat is returned when a string is not a valid "HH:MM" time.
	ErrInvalidFormat = errors.New("types: invalid time string format, expected HH:MM")

	// ErrInvalidScanValue is returned when a database value cannot be scanned into a TimeString.
	ErrInvalidScanValue = errors.New("types: cannot scan value into TimeString")
)

// TimeString is a wall-clock time of day ("HH:MM") with minute precision.
// It is the wire and storage representation for slot start times and
// operating hours. The zero value is the empty string.
type TimeString string

// NewTimeString creates a TimeString from the wall-clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(Layout))
}

// NewTimeStringFromString parses and validates s as "HH:MM".
// Seconds, if present, are truncated to minute precision.
func NewTimeStringFromString(s string) (TimeString, error) {
	if len(s) > len("15:04:05") {
		return "", ErrInvalidFormat
	}
	// "HH:MM:SS" is accepted and truncated, anything else must be "HH:MM".
	if len(s) == len("15:04:05") {
		if _, err := time.Parse("15:04:05", s); err != nil {
			return "", ErrInvalidFormat
		}
		s = s[:len(Layout)]
	}
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// String returns the canonical "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the value is empty (unset).
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value is a zero-padded "HH:MM" time.
func (t TimeString) Validate() error {
	if len(t) != len(Layout) {
		return ErrInvalidFormat
	}
	if _, err := time.Parse(Layout, string(t)); err != nil {
		return ErrInvalidFormat
	}
	return nil
}

// Minutes returns the value as minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(Layout, string(t))
	if err != nil {
		return 0, ErrInvalidFormat
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns the time shifted by the given number of minutes.
// The result wraps around midnight, so "23:00" + 60 minutes is "00:00".
// Negative shifts are allowed and wrap backwards.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	m, err := t.Minutes()
	if err != nil {
		return "", err
	}
	m = ((m+minutes)%minutesPerDay + minutesPerDay) % minutesPerDay
	return FromMinutes(m), nil
}

// FromMinutes builds a TimeString from minutes since midnight.
// The input is normalized into [0, 1440).
func FromMinutes(minutes int) TimeString {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
}

// IsBefore reports whether t is strictly earlier in the day than other.
// Invalid values compare as 00:00.
func (t TimeString) IsBefore(other TimeString) bool {
	a, _ := t.Minutes()
	b, _ := other.Minutes()
	return a < b
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	a, _ := t.Minutes()
	b, _ := other.Minutes()
	return a > b
}

// OnDate combines the wall-clock time with a calendar date in the date's location.
func (t TimeString) OnDate(date time.Time) (time.Time, error) {
	m, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), m/60, m%60, 0, 0, date.Location()), nil
}

// Scan implements sql.Scanner. Postgres TIME columns arrive as "HH:MM:SS"
// strings or time.Time values; both are truncated to minute precision.
func (t *TimeString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidScanValue, v)
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidScanValue, string(v))
		}
		*t = parsed
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidScanValue, value)
	}
}

// Value implements driver.Valuer.
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}
