package domain

import (
	"time"

	"github.com/pitchside/Turf-BookingService/pkg/types"
)

// TurfSchedule represents the daily operating window of a turf.
// Supports two-level configuration:
// 1. Weekday-specific (turf_id, weekday)
// 2. Turf-wide default (turf_id, NULL)
//
// A window whose close time is numerically less than or equal to its open
// time spans midnight (e.g. 23:00-05:00 covers 23:00-23:59 and 00:00-04:59).
// An open time equal to the close time is treated as a full 24-hour window.
type TurfSchedule struct {
	ID        int64
	TurfID    int64
	Weekday   *int // 0 = Sunday ... 6 = Saturday; NULL = all days
	OpenTime  types.TimeString
	CloseTime types.TimeString
	IsClosed  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTurfWide returns true if this schedule applies to every weekday
func (s *TurfSchedule) IsTurfWide() bool {
	return s.Weekday == nil
}

// IsOvernight returns true if the operating window spans midnight
func (s *TurfSchedule) IsOvernight() bool {
	open, err := s.OpenTime.Minutes()
	if err != nil {
		return false
	}
	close, err := s.CloseTime.Minutes()
	if err != nil {
		return false
	}
	return close <= open
}

// Validate checks the open/close times fail-fast at the configuration boundary
func (s *TurfSchedule) Validate() error {
	if err := s.OpenTime.Validate(); err != nil {
		return err
	}
	return s.CloseTime.Validate()
}
