package domain

// Slot granularity: turfs are booked by the hour only
const (
	SlotDurationMinutes = 60
)

// Business validation constants
const (
	MaxBookingHours             = 6   // longest contiguous booking in one request
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих слоты.
// Используется при фильтрации для подсчёта занятых слотов.
var InactiveStatuses = []BookingStatus{
	StatusCancelledByUser,
	StatusCancelledByTurf,
	StatusNoShow,
}

// ActiveStatuses список статусов, занимающих слоты.
var ActiveStatuses = []BookingStatus{
	StatusConfirmed,
	StatusCompleted,
}
