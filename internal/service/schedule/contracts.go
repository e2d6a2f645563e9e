package schedule

import (
	"context"

	"github.com/pitchside/Turf-BookingService/internal/domain"
	"github.com/pitchside/Turf-BookingService/internal/integrations/turfservice"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	Upsert(ctx context.Context, schedule *domain.TurfSchedule) (*domain.TurfSchedule, error)
	GetAllByTurf(ctx context.Context, turfID int64) ([]*domain.TurfSchedule, error)
	Delete(ctx context.Context, turfID int64, weekday *int) error
}

// TurfServiceClient интерфейс клиента для TurfService
type TurfServiceClient interface {
	GetTurf(ctx context.Context, turfID int64) (*turfservice.Turf, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
