package create_booking

import (
	"time"

	"github.com/pitchside/Turf-BookingService/internal/domain"
	createBooking "github.com/pitchside/Turf-BookingService/internal/usecase/create_booking"
	"github.com/pitchside/Turf-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	TurfID     int64    `json:"turfId"`
	Date       string   `json:"date"`
	SlotStarts []string `json:"slotStarts"`
}

// ToUseCaseRequest создает запрос use case из тела запроса
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	starts := make([]types.TimeString, len(r.SlotStarts))
	for i, s := range r.SlotStarts {
		start, err := types.NewTimeStringFromString(s)
		if err != nil {
			return nil, err
		}
		starts[i] = start
	}

	return &createBooking.Request{
		UserID:     userID,
		TurfID:     r.TurfID,
		Date:       date,
		SlotStarts: starts,
	}, nil
}
