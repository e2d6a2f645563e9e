package schedule

import (
	"context"
	"errors"
	"fmt"

	scheduleRepo "github.com/pitchside/Turf-BookingService/internal/infra/storage/schedule"
	turfClient "github.com/pitchside/Turf-BookingService/internal/integrations/turfservice"
	"github.com/pitchside/Turf-BookingService/internal/service/schedule/models"
	"github.com/pitchside/Turf-BookingService/internal/slots"
)

// Service сервис для работы с расписаниями площадок
type Service struct {
	scheduleRepo ScheduleRepository
	turfClient   TurfServiceClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	turfClient TurfServiceClient,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		turfClient:   turfClient,
		logger:       logger,
	}
}

// GetByTurf получает все строки расписания площадки
// Публичный метод - доступен всем (витрина показывает часы работы)
func (s *Service) GetByTurf(ctx context.Context, turfID int64) (*models.ScheduleListResponse, error) {
	s.logger.Info("GetByTurf: fetching schedules for turf=%d", turfID)

	if turfID <= 0 {
		return nil, fmt.Errorf("%w: turfID must be positive", ErrInvalidInput)
	}

	schedules, err := s.scheduleRepo.GetAllByTurf(ctx, turfID)
	if err != nil {
		s.logger.Error("GetByTurf: repository error for turf=%d: %v", turfID, err)
		return nil, fmt.Errorf("%w: GetByTurf - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByTurf: successfully fetched %d schedule rows for turf=%d", len(schedules), turfID)
	return models.FromDomainScheduleList(turfID, schedules), nil
}

// Upsert создает или обновляет строку расписания площадки
// Доступно только менеджерам площадки
// Время валидируется на границе: некорректное "HH:MM" отклоняется сразу,
// до построения последовательности слотов
func (s *Service) Upsert(ctx context.Context, req *models.UpsertScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Upsert: schedule for turf=%d, weekday=%v by user=%d", req.TurfID, req.Weekday, req.UserID)

	// 1. Валидируем входные данные
	if err := validateUpsertRequest(req); err != nil {
		s.logger.Warn("Upsert: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем права доступа (только менеджер площадки)
	if err := s.checkManagerAccess(ctx, req.TurfID, req.UserID); err != nil {
		return nil, err
	}

	// 3. Конвертируем и валидируем время
	schedule, err := req.ToDomainSchedule()
	if err != nil {
		s.logger.Warn("Upsert: invalid time for turf=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	// 4. Проверяем, что окно даёт валидную последовательность слотов
	if !schedule.IsClosed {
		if _, err := slots.NewCalendar(schedule.OpenTime, schedule.CloseTime); err != nil {
			s.logger.Warn("Upsert: invalid operating window for turf=%d: %v", req.TurfID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidTime, err)
		}
	}

	// 5. Сохраняем
	saved, err := s.scheduleRepo.Upsert(ctx, schedule)
	if err != nil {
		s.logger.Error("Upsert: repository error for turf=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: successfully saved schedule id=%d for turf=%d", saved.ID, req.TurfID)
	return models.FromDomainSchedule(saved), nil
}

// Delete удаляет строку расписания площадки
// Доступно только менеджерам площадки
func (s *Service) Delete(ctx context.Context, req *models.DeleteScheduleRequest) error {
	s.logger.Info("Delete: schedule for turf=%d, weekday=%v by user=%d", req.TurfID, req.Weekday, req.UserID)

	if req.TurfID <= 0 {
		return fmt.Errorf("%w: turfID must be positive", ErrInvalidInput)
	}
	if req.Weekday != nil && (*req.Weekday < 0 || *req.Weekday > 6) {
		return ErrInvalidWeekday
	}

	// Проверяем права доступа
	if err := s.checkManagerAccess(ctx, req.TurfID, req.UserID); err != nil {
		return err
	}

	if err := s.scheduleRepo.Delete(ctx, req.TurfID, req.Weekday); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("Delete: schedule not found for turf=%d, weekday=%v", req.TurfID, req.Weekday)
			return ErrScheduleNotFound
		}
		s.logger.Error("Delete: repository error for turf=%d: %v", req.TurfID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted schedule for turf=%d, weekday=%v", req.TurfID, req.Weekday)
	return nil
}

// validateUpsertRequest валидирует запрос на изменение расписания
func validateUpsertRequest(req *models.UpsertScheduleRequest) error {
	if req.TurfID <= 0 {
		return fmt.Errorf("%w: turfID must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Weekday != nil && (*req.Weekday < 0 || *req.Weekday > 6) {
		return ErrInvalidWeekday
	}

	return nil
}

// checkManagerAccess проверяет, что пользователь является менеджером площадки
func (s *Service) checkManagerAccess(ctx context.Context, turfID int64, userID int64) error {
	turf, err := s.turfClient.GetTurf(ctx, turfID)
	if err != nil {
		if errors.Is(err, turfClient.ErrTurfNotFound) {
			s.logger.Warn("checkManagerAccess: turf id=%d not found", turfID)
			return ErrTurfNotFound
		}
		s.logger.Error("checkManagerAccess: failed to get turf id=%d: %v", turfID, err)
		return fmt.Errorf("%w: checkManagerAccess - failed to get turf: %v", ErrInternal, err)
	}

	if turf.IsManager(userID) {
		return nil
	}

	s.logger.Warn("checkManagerAccess: user=%d is not a manager of turf=%d", userID, turfID)
	return ErrAccessDenied
}
