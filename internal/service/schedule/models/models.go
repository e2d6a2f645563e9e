package models

import (
	"time"

	"github.com/pitchside/Turf-BookingService/internal/domain"
	"github.com/pitchside/Turf-BookingService/pkg/types"
)

// Request модели

// UpsertScheduleRequest запрос на создание или обновление строки расписания
type UpsertScheduleRequest struct {
	UserID    int64  `json:"userId"`
	TurfID    int64  `json:"turfId"`
	Weekday   *int   `json:"weekday,omitempty"` // 0 = воскресенье ... 6 = суббота; NULL = все дни
	OpenTime  string `json:"openTime"`          // "HH:MM"
	CloseTime string `json:"closeTime"`         // "HH:MM"; close <= open - окно через полночь
	IsClosed  bool   `json:"isClosed"`
}

// ToDomainSchedule конвертирует request в domain модель с валидацией времени
func (r *UpsertScheduleRequest) ToDomainSchedule() (*domain.TurfSchedule, error) {
	open, err := types.NewTimeStringFromString(r.OpenTime)
	if err != nil {
		return nil, err
	}
	close, err := types.NewTimeStringFromString(r.CloseTime)
	if err != nil {
		return nil, err
	}

	return &domain.TurfSchedule{
		TurfID:    r.TurfID,
		Weekday:   r.Weekday,
		OpenTime:  open,
		CloseTime: close,
		IsClosed:  r.IsClosed,
	}, nil
}

// DeleteScheduleRequest запрос на удаление строки расписания
type DeleteScheduleRequest struct {
	UserID  int64 `json:"userId"`
	TurfID  int64 `json:"turfId"`
	Weekday *int  `json:"weekday,omitempty"`
}

// Response модели

// ScheduleResponse ответ с данными строки расписания
type ScheduleResponse struct {
	ID        int64     `json:"id"`
	TurfID    int64     `json:"turfId"`
	Weekday   *int      `json:"weekday,omitempty"`
	OpenTime  string    `json:"openTime"`
	CloseTime string    `json:"closeTime"`
	IsClosed  bool      `json:"isClosed"`
	Overnight bool      `json:"overnight"` // Рабочее окно переходит через полночь
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ScheduleListResponse ответ со списком строк расписания площадки
type ScheduleListResponse struct {
	TurfID    int64              `json:"turfId"`
	Schedules []ScheduleResponse `json:"schedules"`
}

// Методы конвертации

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(s *domain.TurfSchedule) *ScheduleResponse {
	if s == nil {
		return nil
	}

	return &ScheduleResponse{
		ID:        s.ID,
		TurfID:    s.TurfID,
		Weekday:   s.Weekday,
		OpenTime:  s.OpenTime.String(),
		CloseTime: s.CloseTime.String(),
		IsClosed:  s.IsClosed,
		Overnight: s.IsOvernight(),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// FromDomainScheduleList конвертирует список domain моделей в DTO
func FromDomainScheduleList(turfID int64, schedules []*domain.TurfSchedule) *ScheduleListResponse {
	resp := &ScheduleListResponse{
		TurfID:    turfID,
		Schedules: make([]ScheduleResponse, 0, len(schedules)),
	}

	for _, schedule := range schedules {
		if scheduleResp := FromDomainSchedule(schedule); scheduleResp != nil {
			resp.Schedules = append(resp.Schedules, *scheduleResp)
		}
	}

	return resp
}
