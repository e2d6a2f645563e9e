package create_booking

import (
	"time"

	"github.com/pitchside/Turf-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID     int64              // ID пользователя (из заголовка авторизации)
	TurfID     int64              // ID площадки
	Date       time.Time          // Дата бронирования (без времени)
	SlotStarts []types.TimeString // Выбранные слоты в порядке обхода рабочего окна
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            `json:"id"`
	UserID          int64            `json:"user_id"`
	TurfID          int64            `json:"turf_id"`
	TurfName        string           `json:"turf_name"`
	BookingDate     time.Time        `json:"booking_date"`
	StartTime       types.TimeString `json:"start_time"`
	DurationMinutes int              `json:"duration_minutes"`
	Status          string           `json:"status"`
	PaymentStatus   string           `json:"payment_status"`
	PricePerHour    float64          `json:"price_per_hour"`
	TotalAmount     float64          `json:"total_amount"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
