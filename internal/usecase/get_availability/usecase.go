package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/pitchside/Turf-BookingService/internal/domain"
	scheduleRepo "github.com/pitchside/Turf-BookingService/internal/infra/storage/schedule"
	turfClient "github.com/pitchside/Turf-BookingService/internal/integrations/turfservice"
	"github.com/pitchside/Turf-BookingService/internal/slots"
)

// UseCase use case для получения слотов площадки на дату
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	turfClient   TurfServiceClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	turfClient TurfServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		turfClient:   turfClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
// Результат не кешируется: признак lapsed зависит от текущего времени,
// поэтому слоты пересчитываются на каждый запрос
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: user=%d, turf=%d, date=%s",
		req.UserID, req.TurfID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailability: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем площадку
	turf, err := uc.turfClient.GetTurf(ctx, req.TurfID)
	if err != nil {
		if errors.Is(err, turfClient.ErrTurfNotFound) {
			uc.logger.Warn("GetAvailability: turf id=%d not found", req.TurfID)
			return nil, ErrTurfNotFound
		}
		uc.logger.Error("GetAvailability: failed to get turf id=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: failed to get turf: %v", ErrInternal, err)
	}

	if !turf.IsActive {
		uc.logger.Warn("GetAvailability: turf id=%d is not active", req.TurfID)
		return nil, ErrTurfInactive
	}

	// 5. Получаем расписание на день недели (конкретный день -> площадка целиком)
	weekday := int(req.Date.Weekday())
	schedule, err := uc.scheduleRepo.GetScheduleForDay(ctx, req.TurfID, weekday)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Info("GetAvailability: no schedule for turf=%d, weekday=%d", req.TurfID, weekday)
			return closedResponse(req, turf.Name), nil
		}
		uc.logger.Error("GetAvailability: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	if schedule.IsClosed {
		uc.logger.Info("GetAvailability: turf=%d is closed on %s", req.TurfID, req.Date.Format(domain.DateFormat))
		return closedResponse(req, turf.Name), nil
	}

	// 6. Строим последовательность слотов рабочего окна
	calendar, err := slots.NewCalendar(schedule.OpenTime, schedule.CloseTime)
	if err != nil {
		uc.logger.Error("GetAvailability: invalid schedule for turf=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: invalid schedule: %v", ErrInternal, err)
	}

	// 7. Получаем активные бронирования на эту дату
	filter := domain.TurfBookingsFilter{
		TurfID:          req.TurfID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false,
	}

	bookings, err := uc.bookingRepo.GetByTurfWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 8. Собираем множество занятых часов из бронирований
	booked := slots.BookedSet{}
	for _, b := range bookings {
		for _, start := range b.SlotStarts() {
			booked[start] = struct{}{}
		}
	}

	// 9. Вычисляем состояние каждого слота
	out := make([]Slot, 0, calendar.Len())
	for _, start := range calendar.Sequence() {
		isBooked := booked.Contains(start)
		disabled := calendar.IsDisabled(start, booked, req.Date, now)

		out = append(out, Slot{
			StartTime: start,
			Label:     slots.Label(start),
			Booked:    isBooked,
			Lapsed:    disabled && !isBooked,
			Available: !disabled,
		})
	}

	uc.logger.Info("GetAvailability: generated %d slots for turf=%d, date=%s",
		len(out), req.TurfID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:      req.Date,
		TurfID:    req.TurfID,
		TurfName:  turf.Name,
		Overnight: calendar.IsOvernight(),
		OpenTime:  schedule.OpenTime,
		CloseTime: schedule.CloseTime,
		Slots:     out,
	}, nil
}

// closedResponse формирует ответ для закрытого дня
func closedResponse(req *Request, turfName string) *Response {
	return &Response{
		Date:     req.Date,
		TurfID:   req.TurfID,
		TurfName: turfName,
		IsClosed: true,
		Slots:    []Slot{},
	}
}
