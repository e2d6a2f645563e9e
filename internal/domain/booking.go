package domain

import (
	"time"

	"github.com/pitchside/Turf-BookingService/pkg/types"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusConfirmed       BookingStatus = "confirmed"
	StatusCompleted       BookingStatus = "completed"
	StatusCancelledByUser BookingStatus = "cancelled_by_user"
	StatusCancelledByTurf BookingStatus = "cancelled_by_turf"
	StatusNoShow          BookingStatus = "no_show"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// Booking represents a turf booking in the system.
// A booking covers one or more contiguous one-hour slots starting at
// StartTime; DurationMinutes is always a multiple of SlotDurationMinutes.
type Booking struct {
	ID              int64
	UserID          int64
	TurfID          int64
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus
	PaymentStatus   PaymentStatus

	// Denormalized data for history
	TurfName     string
	PricePerHour float64
	TotalAmount  float64

	// PaymentRef is the gateway payment intent id, set once payment completes
	PaymentRef   *string
	RefundAmount float64

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slots
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByUser &&
		b.Status != StatusCancelledByTurf &&
		b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking is in a cancellable state
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByUser || b.Status == StatusCancelledByTurf
}

// IsPaid returns true if the payment went through
func (b *Booking) IsPaid() bool {
	return b.PaymentStatus == PaymentStatusCompleted
}

// Hours returns the number of one-hour slots the booking covers.
func (b *Booking) Hours() int {
	return b.DurationMinutes / SlotDurationMinutes
}

// SlotStarts expands the booking into the start labels of the hourly slots
// it occupies, wrapping past midnight for overnight operating windows
// (e.g. a two-hour booking at 23:00 occupies "23:00" and "00:00").
func (b *Booking) SlotStarts() []types.TimeString {
	starts := make([]types.TimeString, 0, b.Hours())
	cursor := b.StartTime
	for i := 0; i < b.Hours(); i++ {
		starts = append(starts, cursor)
		next, err := cursor.AddMinutes(SlotDurationMinutes)
		if err != nil {
			break
		}
		cursor = next
	}
	return starts
}

// TurfBookingsFilter фильтр для получения бронирований площадки
type TurfBookingsFilter struct {
	TurfID          int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые и no-show бронирования
}
