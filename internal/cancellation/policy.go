// Package cancellation decides whether a booking may still be cancelled and
// what refund applies. The decision is a pure function of the booking and the
// current time; it is recomputed on every call rather than cached, since the
// answer changes as the start time approaches.
package cancellation

import (
	"time"

	"github.com/pitchside/Turf-BookingService/internal/domain"
	"github.com/pitchside/Turf-BookingService/pkg/types"
)

// DefaultRefundWindow is the minimum time before the booking start at which
// a completed payment is still refunded in full.
const DefaultRefundWindow = 2 * time.Hour

// Decision is the cancellation verdict for one booking at one moment.
type Decision struct {
	CanCancel    bool
	RefundAmount float64
}

// Policy evaluates cancellation eligibility against a refund window.
type Policy struct {
	RefundWindow time.Duration
}

// NewPolicy returns a policy with the default refund window.
func NewPolicy() Policy {
	return Policy{RefundWindow: DefaultRefundWindow}
}

// Evaluate decides whether a booking starting at bookingDate+startTime can be
// cancelled now, and how much of totalAmount is refunded.
//
// A booking that has already started (or whose start time cannot be parsed)
// cannot be cancelled and gets no refund; this result drives a user-facing
// cancel action, so it degrades safe rather than failing. A cancellable
// booking is refunded in full only when the payment is completed and the
// start is at least RefundWindow away.
func (p Policy) Evaluate(bookingDate time.Time, startTime types.TimeString, totalAmount float64, paymentStatus domain.PaymentStatus, now time.Time) Decision {
	startsAt, err := startTime.OnDate(bookingDate)
	if err != nil {
		return Decision{}
	}
	if !startsAt.After(now) {
		return Decision{}
	}

	decision := Decision{CanCancel: true}
	if paymentStatus == domain.PaymentStatusCompleted && startsAt.Sub(now) >= p.refundWindow() {
		decision.RefundAmount = totalAmount
	}
	return decision
}

// EvaluateBooking applies the policy to a stored booking record.
func (p Policy) EvaluateBooking(b *domain.Booking, now time.Time) Decision {
	if b == nil {
		return Decision{}
	}
	return p.Evaluate(b.BookingDate, b.StartTime, b.TotalAmount, b.PaymentStatus, now)
}

func (p Policy) refundWindow() time.Duration {
	if p.RefundWindow <= 0 {
		return DefaultRefundWindow
	}
	return p.RefundWindow
}
