package update_turf_schedule

import (
	"github.com/pitchside/Turf-BookingService/internal/service/schedule/models"
)

// UpsertScheduleRequest HTTP request model для PUT
type UpsertScheduleRequest struct {
	Weekday   *int   `json:"weekday,omitempty"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
	IsClosed  bool   `json:"isClosed"`
}

// ToServiceRequest создает запрос сервиса из тела запроса
func (r *UpsertScheduleRequest) ToServiceRequest(userID, turfID int64) *models.UpsertScheduleRequest {
	return &models.UpsertScheduleRequest{
		UserID:    userID,
		TurfID:    turfID,
		Weekday:   r.Weekday,
		OpenTime:  r.OpenTime,
		CloseTime: r.CloseTime,
		IsClosed:  r.IsClosed,
	}
}

// DeleteScheduleRequest HTTP request model для DELETE
type DeleteScheduleRequest struct {
	Weekday *int `json:"weekday,omitempty"`
}
