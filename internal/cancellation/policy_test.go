package cancellation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pitchside/Turf-BookingService/internal/domain"
	"github.com/pitchside/Turf-BookingService/pkg/types"
)

func TestPolicy_Evaluate(t *testing.T) {
	policy := NewPolicy()
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	today := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		startTime     types.TimeString
		totalAmount   float64
		paymentStatus domain.PaymentStatus
		want          Decision
	}{
		{
			name:          "pending payment five hours out cancels without refund",
			startTime:     "15:00",
			totalAmount:   1000,
			paymentStatus: domain.PaymentStatusPending,
			want:          Decision{CanCancel: true, RefundAmount: 0},
		},
		{
			name:          "completed payment three hours out refunds in full",
			startTime:     "13:00",
			totalAmount:   1000,
			paymentStatus: domain.PaymentStatusCompleted,
			want:          Decision{CanCancel: true, RefundAmount: 1000},
		},
		{
			name:          "completed payment one hour out cancels without refund",
			startTime:     "11:00",
			totalAmount:   1000,
			paymentStatus: domain.PaymentStatusCompleted,
			want:          Decision{CanCancel: true, RefundAmount: 0},
		},
		{
			name:          "completed payment exactly at the window refunds",
			startTime:     "12:00",
			totalAmount:   750,
			paymentStatus: domain.PaymentStatusCompleted,
			want:          Decision{CanCancel: true, RefundAmount: 750},
		},
		{
			name:          "past booking cannot be cancelled",
			startTime:     "09:00",
			totalAmount:   1000,
			paymentStatus: domain.PaymentStatusCompleted,
			want:          Decision{},
		},
		{
			name:          "booking starting right now cannot be cancelled",
			startTime:     "10:00",
			totalAmount:   1000,
			paymentStatus: domain.PaymentStatusCompleted,
			want:          Decision{},
		},
		{
			name:          "failed payment gets no refund",
			startTime:     "20:00",
			totalAmount:   1000,
			paymentStatus: domain.PaymentStatusFailed,
			want:          Decision{CanCancel: true, RefundAmount: 0},
		},
		{
			name:          "malformed start time degrades safe",
			startTime:     "25:99",
			totalAmount:   1000,
			paymentStatus: domain.PaymentStatusCompleted,
			want:          Decision{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.Evaluate(today, tt.startTime, tt.totalAmount, tt.paymentStatus, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPolicy_EvaluateBooking(t *testing.T) {
	policy := NewPolicy()
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("nil booking degrades safe", func(t *testing.T) {
		assert.Equal(t, Decision{}, policy.EvaluateBooking(nil, now))
	})

	t.Run("future booking on a later date refunds", func(t *testing.T) {
		b := &domain.Booking{
			BookingDate:   time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			StartTime:     "09:00",
			TotalAmount:   500,
			PaymentStatus: domain.PaymentStatusCompleted,
		}
		assert.Equal(t, Decision{CanCancel: true, RefundAmount: 500}, policy.EvaluateBooking(b, now))
	})
}

func TestPolicy_CustomWindow(t *testing.T) {
	policy := Policy{RefundWindow: 30 * time.Minute}
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	today := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	got := policy.Evaluate(today, "11:00", 200, domain.PaymentStatusCompleted, now)
	assert.Equal(t, Decision{CanCancel: true, RefundAmount: 200}, got)

	// Zero window falls back to the default.
	zero := Policy{}
	got = zero.Evaluate(today, "11:00", 200, domain.PaymentStatusCompleted, now)
	assert.Equal(t, Decision{CanCancel: true, RefundAmount: 0}, got)
}
