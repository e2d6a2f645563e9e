package get_availability

import (
	"time"

	"github.com/pitchside/Turf-BookingService/internal/domain"
	getAvailability "github.com/pitchside/Turf-BookingService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date      string `json:"date"`
	TurfID    int64  `json:"turfId"`
	TurfName  string `json:"turfName"`
	IsClosed  bool   `json:"isClosed"`
	Overnight bool   `json:"overnight"`
	OpenTime  string `json:"openTime,omitempty"`
	CloseTime string `json:"closeTime,omitempty"`
	Slots     []Slot `json:"slots"`
}

// Slot модель одного часового слота
type Slot struct {
	StartTime string `json:"startTime"`
	Label     string `json:"label"`
	Booked    bool   `json:"booked"`
	Lapsed    bool   `json:"lapsed"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			StartTime: slot.StartTime.String(),
			Label:     slot.Label,
			Booked:    slot.Booked,
			Lapsed:    slot.Lapsed,
			Available: slot.Available,
		}
	}

	out := &AvailabilityResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		TurfID:    resp.TurfID,
		TurfName:  resp.TurfName,
		IsClosed:  resp.IsClosed,
		Overnight: resp.Overnight,
		Slots:     slots,
	}

	if !resp.IsClosed {
		out.OpenTime = resp.OpenTime.String()
		out.CloseTime = resp.CloseTime.String()
	}

	return out
}

// ToUseCaseRequest создает запрос use case из параметров URL
func ToUseCaseRequest(userID, turfID int64, dateStr string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		UserID: userID,
		TurfID: turfID,
		Date:   date,
	}, nil
}
