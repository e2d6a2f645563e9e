package get_turf_bookings

import (
	"net/url"
	"strconv"
	"time"

	"github.com/pitchside/Turf-BookingService/internal/domain"
	"github.com/pitchside/Turf-BookingService/internal/service/bookings/models"
)

// ToServiceRequest создает запрос сервиса из query параметров
func ToServiceRequest(userID, turfID int64, query url.Values) (*models.GetTurfBookingsRequest, error) {
	req := &models.GetTurfBookingsRequest{
		UserID: userID,
		TurfID: turfID,
	}

	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	if raw := query.Get("includeInactive"); raw != "" {
		includeInactive, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
