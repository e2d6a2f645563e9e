package get_turf_schedule

import (
	"context"

	"github.com/pitchside/Turf-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetByTurf(ctx context.Context, turfID int64) (*models.ScheduleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
