package cancel_booking

import (
	"context"
	"time"

	"github.com/pitchside/Turf-BookingService/internal/domain"
	"github.com/pitchside/Turf-BookingService/internal/integrations/payments"
	"github.com/pitchside/Turf-BookingService/internal/integrations/turfservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string, paymentStatus domain.PaymentStatus, refundAmount float64) error
	UpdatePaymentStatus(ctx context.Context, id int64, paymentStatus domain.PaymentStatus) error
}

// TurfServiceClient интерфейс клиента для TurfService
type TurfServiceClient interface {
	GetTurf(ctx context.Context, turfID int64) (*turfservice.Turf, error)
}

// PaymentsClient интерфейс клиента платёжного шлюза
type PaymentsClient interface {
	CreateRefundWithGracefulDegradation(ctx context.Context, paymentRef string, amount float64) (*payments.Refund, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
