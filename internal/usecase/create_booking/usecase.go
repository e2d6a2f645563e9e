package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/pitchside/Turf-BookingService/internal/domain"
	scheduleRepo "github.com/pitchside/Turf-BookingService/internal/infra/storage/schedule"
	turfClient "github.com/pitchside/Turf-BookingService/internal/integrations/turfservice"
	"github.com/pitchside/Turf-BookingService/internal/slots"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	turfClient   TurfServiceClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	turfClient TurfServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		turfClient:   turfClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// бронирования на дату блокируются через FOR UPDATE до коммита
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, turf=%d, date=%s, slots=%d",
		req.UserID, req.TurfID, req.Date.Format(domain.DateFormat), len(req.SlotStarts))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем площадку
	turf, err := uc.turfClient.GetTurf(ctx, req.TurfID)
	if err != nil {
		if errors.Is(err, turfClient.ErrTurfNotFound) {
			uc.logger.Warn("CreateBooking: turf id=%d not found", req.TurfID)
			return nil, ErrTurfNotFound
		}
		uc.logger.Error("CreateBooking: failed to get turf id=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: failed to get turf: %v", ErrInternal, err)
	}

	if !turf.IsActive {
		uc.logger.Warn("CreateBooking: turf id=%d is not active", req.TurfID)
		return nil, ErrTurfInactive
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем расписание на день недели
		weekday := int(req.Date.Weekday())
		schedule, err := uc.scheduleRepo.GetScheduleForDay(txCtx, req.TurfID, weekday)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				uc.logger.Warn("CreateBooking: no schedule for turf=%d, weekday=%d", req.TurfID, weekday)
				return ErrTurfClosed
			}
			uc.logger.Error("CreateBooking: failed to get schedule: %v", err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		if schedule.IsClosed {
			uc.logger.Warn("CreateBooking: turf=%d is closed on %s", req.TurfID, req.Date.Format(domain.DateFormat))
			return ErrTurfClosed
		}

		// 5.2. Строим последовательность слотов рабочего окна
		calendar, err := slots.NewCalendar(schedule.OpenTime, schedule.CloseTime)
		if err != nil {
			uc.logger.Error("CreateBooking: invalid schedule for turf=%d: %v", req.TurfID, err)
			return fmt.Errorf("%w: invalid schedule: %v", ErrInternal, err)
		}

		// 5.3. Проверяем, что выбор - непрерывный отрезок последовательности
		if err := validateSelection(calendar, req.SlotStarts); err != nil {
			uc.logger.Warn("CreateBooking: selection validation failed: %v", err)
			return err
		}

		// 5.4. Получаем активные бронирования на эту дату с блокировкой (FOR UPDATE)
		filter := domain.TurfBookingsFilter{
			TurfID:          req.TurfID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false,
		}

		bookings, err := uc.bookingRepo.GetByTurfWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.5. Собираем множество занятых часов
		booked := slots.BookedSet{}
		for _, b := range bookings {
			for _, start := range b.SlotStarts() {
				booked[start] = struct{}{}
			}
		}

		// 5.6. Проверяем каждый выбранный слот: не занят и не прошёл
		for _, start := range req.SlotStarts {
			if booked.Contains(start) {
				uc.logger.Warn("CreateBooking: slot %s already booked for turf=%d", start, req.TurfID)
				return fmt.Errorf("%w: %s", ErrSlotNotAvailable, start)
			}
			if calendar.IsDisabled(start, nil, req.Date, now) {
				uc.logger.Warn("CreateBooking: slot %s already lapsed", start)
				return fmt.Errorf("%w: %s", ErrSlotLapsed, start)
			}
		}

		hours := len(req.SlotStarts)

		// 5.7. Создаем бронирование с денормализацией данных площадки
		booking := &domain.Booking{
			UserID:          req.UserID,
			TurfID:          req.TurfID,
			BookingDate:     req.Date,
			StartTime:       req.SlotStarts[0],
			DurationMinutes: hours * domain.SlotDurationMinutes,
			Status:          domain.StatusConfirmed,
			PaymentStatus:   domain.PaymentStatusPending,
			TurfName:        turf.Name,
			PricePerHour:    turf.PricePerHour,
			TotalAmount:     turf.PricePerHour * float64(hours),
		}

		// 5.8. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, total=%.2f", result.ID, result.TotalAmount)

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		UserID:          result.UserID,
		TurfID:          result.TurfID,
		TurfName:        result.TurfName,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		PaymentStatus:   string(result.PaymentStatus),
		PricePerHour:    result.PricePerHour,
		TotalAmount:     result.TotalAmount,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
