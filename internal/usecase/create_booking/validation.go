package create_booking

import (
	"fmt"
	"time"

	"github.com/pitchside/Turf-BookingService/internal/domain"
	"github.com/pitchside/Turf-BookingService/internal/slots"
	"github.com/pitchside/Turf-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.TurfID <= 0 {
		return fmt.Errorf("%w: turfID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(req.SlotStarts) == 0 {
		return fmt.Errorf("%w: at least one slot is required", ErrInvalidInput)
	}

	if len(req.SlotStarts) > domain.MaxBookingHours {
		return fmt.Errorf("%w: at most %d slots per booking", ErrTooManySlots, domain.MaxBookingHours)
	}

	for _, start := range req.SlotStarts {
		if err := start.Validate(); err != nil {
			return fmt.Errorf("%w: invalid slot start %q", ErrInvalidInput, start)
		}
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(requestDate time.Time, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	requestDateOnly := time.Date(requestDate.Year(), requestDate.Month(), requestDate.Day(), 0, 0, 0, 0, requestDate.Location())

	if requestDateOnly.Before(today) {
		return ErrInvalidDate
	}

	return nil
}

// validateSelection проверяет, что выбранные слоты образуют непрерывный
// отрезок последовательности рабочего окна: отрезок от первого до последнего
// выбранного слота в порядке обхода (с учётом перехода через полночь) должен
// в точности совпадать с присланным списком
func validateSelection(calendar *slots.Calendar, starts []types.TimeString) error {
	first, ok := calendar.IndexOf(starts[0])
	if !ok {
		return fmt.Errorf("%w: slot %s is outside the operating window", ErrInvalidSelection, starts[0])
	}
	last, ok := calendar.IndexOf(starts[len(starts)-1])
	if !ok {
		return fmt.Errorf("%w: slot %s is outside the operating window", ErrInvalidSelection, starts[len(starts)-1])
	}

	run := calendar.ForwardRange(first, last)
	if len(run) != len(starts) {
		return ErrInvalidSelection
	}
	for i, start := range starts {
		if run[i] != start {
			return ErrInvalidSelection
		}
	}

	return nil
}
