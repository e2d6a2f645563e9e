package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pitchside/Turf-BookingService/pkg/types"
)

func TestBooking_PaymentPredicates(t *testing.T) {
	b := &Booking{Status: StatusConfirmed, PaymentStatus: PaymentStatusCompleted}
	assert.True(t, b.IsPaid())
	assert.True(t, b.CanBeCancelled())

	for _, status := range []PaymentStatus{PaymentStatusPending, PaymentStatusFailed, PaymentStatusRefunded} {
		b.PaymentStatus = status
		assert.False(t, b.IsPaid(), "status %s", status)
	}
}

func TestBooking_StatusPredicates(t *testing.T) {
	tests := []struct {
		status    BookingStatus
		active    bool
		cancelled bool
	}{
		{StatusConfirmed, true, false},
		{StatusCompleted, true, false},
		{StatusCancelledByUser, false, true},
		{StatusCancelledByTurf, false, true},
		{StatusNoShow, false, false},
	}

	for _, tt := range tests {
		b := &Booking{Status: tt.status}
		assert.Equal(t, tt.active, b.IsActive(), "IsActive for %s", tt.status)
		assert.Equal(t, tt.cancelled, b.IsCancelled(), "IsCancelled for %s", tt.status)
	}
}

func TestBooking_SlotStarts(t *testing.T) {
	b := &Booking{StartTime: "10:00", DurationMinutes: 180}
	assert.Equal(t, []types.TimeString{"10:00", "11:00", "12:00"}, b.SlotStarts())

	// Двухчасовое бронирование на 23:00 переходит через полночь
	b = &Booking{StartTime: "23:00", DurationMinutes: 120}
	assert.Equal(t, []types.TimeString{"23:00", "00:00"}, b.SlotStarts())
}
