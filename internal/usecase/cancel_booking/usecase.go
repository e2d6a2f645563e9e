package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/pitchside/Turf-BookingService/internal/cancellation"
	"github.com/pitchside/Turf-BookingService/internal/domain"
	bookingRepo "github.com/pitchside/Turf-BookingService/internal/infra/storage/booking"
	"github.com/pitchside/Turf-BookingService/internal/integrations/payments"
	turfClient "github.com/pitchside/Turf-BookingService/internal/integrations/turfservice"
)

// UseCase use case для отмены бронирования и расчёта возврата
type UseCase struct {
	bookingRepo    BookingRepository
	turfClient     TurfServiceClient
	paymentsClient PaymentsClient
	txManager      TransactionManager
	policy         cancellation.Policy
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	turfClient TurfServiceClient,
	paymentsClient PaymentsClient,
	txManager TransactionManager,
	policy cancellation.Policy,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		turfClient:     turfClient,
		paymentsClient: paymentsClient,
		txManager:      txManager,
		policy:         policy,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет отмену бронирования
// Пользователь отменяет своё бронирование (cancelled_by_user),
// менеджер площадки - любое бронирование площадки (cancelled_by_turf).
// Возврат средств выполняется при завершённой оплате и отмене не позднее
// чем за окно возврата до начала
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: booking=%d, user=%d", req.BookingID, req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CancelBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: repository error for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Определяем статус отмены в зависимости от прав доступа
	cancelStatus, err := uc.resolveCancelStatus(ctx, booking, req.UserID)
	if err != nil {
		return nil, err
	}

	// 4. Проверяем статус бронирования
	if !booking.CanBeCancelled() {
		uc.logger.Warn("CancelBooking: booking id=%d cannot be cancelled, status=%s", req.BookingID, booking.Status)
		return nil, ErrCannotCancel
	}

	// 5. Рассчитываем возврат на текущий момент
	now := uc.timeProvider.Now()
	decision := uc.policy.EvaluateBooking(booking, now)
	if !decision.CanCancel {
		uc.logger.Warn("CancelBooking: booking id=%d already started", req.BookingID)
		return nil, ErrCannotCancel
	}

	// 6. Фиксируем отмену в транзакции. Отмена записывается до обращения
	// к платёжному шлюзу: сбой записи не должен оставить возврат без отмены
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		return uc.bookingRepo.Cancel(txCtx, req.BookingID, cancelStatus, req.Reason, booking.PaymentStatus, decision.RefundAmount)
	})
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: failed to cancel booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
	}

	// 7. Выполняем возврат средств через платёжный шлюз
	paymentStatus := booking.PaymentStatus
	refundPending := false

	if decision.RefundAmount > 0 && booking.PaymentRef != nil {
		refund, err := uc.paymentsClient.CreateRefundWithGracefulDegradation(ctx, *booking.PaymentRef, decision.RefundAmount)
		switch {
		case err == nil:
			paymentStatus = domain.PaymentStatusRefunded
			if updErr := uc.bookingRepo.UpdatePaymentStatus(ctx, req.BookingID, domain.PaymentStatusRefunded); updErr != nil {
				// Возврат прошёл, статус платежа не записался: оставляем след
				// для ручной сверки по ID возврата
				uc.logger.Error("CancelBooking: refund %s for booking id=%d succeeded but payment status update failed: %v",
					refund.ID, req.BookingID, updErr)
			}
		case errors.Is(err, payments.ErrServiceDegraded):
			// Шлюз недоступен: отмена уже записана, возврат уходит в ручную обработку
			uc.logger.Error("CancelBooking: refund for booking id=%d deferred to manual processing: %v", req.BookingID, err)
			refundPending = true
		default:
			uc.logger.Error("CancelBooking: refund failed for booking id=%d, deferred to manual processing: %v", req.BookingID, err)
			refundPending = true
		}
	}

	uc.logger.Info("CancelBooking: booking id=%d cancelled with status=%s, refund=%.2f",
		req.BookingID, cancelStatus, decision.RefundAmount)

	now = uc.timeProvider.Now()
	return &Response{
		ID:            req.BookingID,
		Status:        string(cancelStatus),
		PaymentStatus: string(paymentStatus),
		RefundAmount:  decision.RefundAmount,
		RefundPending: refundPending,
		CancelledAt:   &now,
	}, nil
}

// Quote рассчитывает возможность отмены и сумму возврата без изменения
// состояния. Клиент перезапрашивает расчёт перед показом диалога отмены
func (uc *UseCase) Quote(ctx context.Context, req *QuoteRequest) (*QuoteResponse, error) {
	uc.logger.Info("CancellationQuote: booking=%d, user=%d", req.BookingID, req.UserID)

	if req.BookingID <= 0 || req.UserID <= 0 {
		return nil, fmt.Errorf("%w: bookingID and userID must be positive", ErrInvalidInput)
	}

	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CancellationQuote: repository error for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if _, err := uc.resolveCancelStatus(ctx, booking, req.UserID); err != nil {
		return nil, err
	}

	decision := cancellation.Decision{}
	if booking.CanBeCancelled() {
		decision = uc.policy.EvaluateBooking(booking, uc.timeProvider.Now())
	}

	return &QuoteResponse{
		BookingID:    req.BookingID,
		CanCancel:    decision.CanCancel,
		RefundAmount: decision.RefundAmount,
	}, nil
}

// resolveCancelStatus определяет, от чьего имени выполняется отмена
func (uc *UseCase) resolveCancelStatus(ctx context.Context, booking *domain.Booking, userID int64) (domain.BookingStatus, error) {
	if booking.UserID == userID {
		return domain.StatusCancelledByUser, nil
	}

	turf, err := uc.turfClient.GetTurf(ctx, booking.TurfID)
	if err != nil {
		if errors.Is(err, turfClient.ErrTurfNotFound) {
			uc.logger.Warn("CancelBooking: turf id=%d not found", booking.TurfID)
			return "", ErrAccessDenied
		}
		uc.logger.Error("CancelBooking: failed to get turf id=%d: %v", booking.TurfID, err)
		return "", fmt.Errorf("%w: failed to get turf: %v", ErrInternal, err)
	}

	if !turf.IsManager(userID) {
		uc.logger.Warn("CancelBooking: access denied for user=%d to booking id=%d", userID, booking.ID)
		return "", ErrAccessDenied
	}

	return domain.StatusCancelledByTurf, nil
}
