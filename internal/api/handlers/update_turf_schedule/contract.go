package update_turf_schedule

import (
	"context"

	"github.com/pitchside/Turf-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	Upsert(ctx context.Context, req *models.UpsertScheduleRequest) (*models.ScheduleResponse, error)
	Delete(ctx context.Context, req *models.DeleteScheduleRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
