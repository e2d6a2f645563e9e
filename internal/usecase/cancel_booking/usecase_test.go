package cancel_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchside/Turf-BookingService/internal/cancellation"
	"github.com/pitchside/Turf-BookingService/internal/domain"
	bookingRepo "github.com/pitchside/Turf-BookingService/internal/infra/storage/booking"
	"github.com/pitchside/Turf-BookingService/internal/integrations/payments"
	"github.com/pitchside/Turf-BookingService/internal/integrations/turfservice"
	"github.com/pitchside/Turf-BookingService/pkg/ptr"
	"github.com/pitchside/Turf-BookingService/pkg/types"
)

type mockBookingRepo struct {
	booking      *domain.Booking
	getErr       error
	cancelErr    error
	updatePayErr error

	cancelledID     int64
	cancelledStatus domain.BookingStatus
	cancelledPay    domain.PaymentStatus
	cancelledRefund float64
	updatedPay      domain.PaymentStatus
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.booking, nil
}

func (m *mockBookingRepo) Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string, paymentStatus domain.PaymentStatus, refundAmount float64) error {
	if m.cancelErr != nil {
		return m.cancelErr
	}
	m.cancelledID = id
	m.cancelledStatus = status
	m.cancelledPay = paymentStatus
	m.cancelledRefund = refundAmount
	return nil
}

func (m *mockBookingRepo) UpdatePaymentStatus(ctx context.Context, id int64, paymentStatus domain.PaymentStatus) error {
	if m.updatePayErr != nil {
		return m.updatePayErr
	}
	m.updatedPay = paymentStatus
	return nil
}

type mockTurfClient struct {
	turf *turfservice.Turf
	err  error
}

func (m *mockTurfClient) GetTurf(ctx context.Context, turfID int64) (*turfservice.Turf, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.turf, nil
}

type mockPaymentsClient struct {
	refund *payments.Refund
	err    error
	calls  int
}

func (m *mockPaymentsClient) CreateRefundWithGracefulDegradation(ctx context.Context, paymentRef string, amount float64) (*payments.Refund, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.refund, nil
}

type mockTxManager struct{}

func (m *mockTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *mockBookingRepo, turfs *mockTurfClient, pay *mockPaymentsClient, now time.Time) *UseCase {
	uc := NewUseCase(repo, turfs, pay, &mockTxManager{}, cancellation.NewPolicy(), nopLogger{})
	uc.timeProvider = fixedTime{t: now}
	return uc
}

func confirmedBooking(startsIn time.Duration, now time.Time, payStatus domain.PaymentStatus) *domain.Booking {
	startsAt := now.Add(startsIn)
	return &domain.Booking{
		ID:            10,
		UserID:        1,
		TurfID:        5,
		BookingDate:   time.Date(startsAt.Year(), startsAt.Month(), startsAt.Day(), 0, 0, 0, 0, time.UTC),
		StartTime:     types.NewTimeString(startsAt),
		Status:        domain.StatusConfirmed,
		PaymentStatus: payStatus,
		TotalAmount:   1200,
		PaymentRef:    ptr.Ptr("pi_123"),
	}
}

func TestExecute(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("owner cancels with full refund", func(t *testing.T) {
		repo := &mockBookingRepo{booking: confirmedBooking(5*time.Hour, now, domain.PaymentStatusCompleted)}
		pay := &mockPaymentsClient{refund: &payments.Refund{ID: "re_1", Amount: 1200, Status: "succeeded"}}
		uc := newTestUseCase(repo, &mockTurfClient{}, pay, now)

		resp, err := uc.Execute(context.Background(), &Request{BookingID: 10, UserID: 1, Reason: "rain"})
		require.NoError(t, err)

		assert.Equal(t, string(domain.StatusCancelledByUser), resp.Status)
		assert.Equal(t, string(domain.PaymentStatusRefunded), resp.PaymentStatus)
		assert.Equal(t, 1200.0, resp.RefundAmount)
		assert.False(t, resp.RefundPending)
		assert.Equal(t, 1, pay.calls)
		assert.Equal(t, domain.PaymentStatusRefunded, repo.updatedPay)
		assert.Equal(t, 1200.0, repo.cancelledRefund)
	})

	t.Run("persist failure leaves the money untouched", func(t *testing.T) {
		repo := &mockBookingRepo{
			booking:   confirmedBooking(5*time.Hour, now, domain.PaymentStatusCompleted),
			cancelErr: bookingRepo.ErrExecQuery,
		}
		pay := &mockPaymentsClient{}
		uc := newTestUseCase(repo, &mockTurfClient{}, pay, now)

		_, err := uc.Execute(context.Background(), &Request{BookingID: 10, UserID: 1})
		assert.ErrorIs(t, err, ErrInternal)
		assert.Equal(t, 0, pay.calls)
	})

	t.Run("refund succeeds but status update fails", func(t *testing.T) {
		repo := &mockBookingRepo{
			booking:      confirmedBooking(5*time.Hour, now, domain.PaymentStatusCompleted),
			updatePayErr: bookingRepo.ErrExecQuery,
		}
		pay := &mockPaymentsClient{refund: &payments.Refund{ID: "re_2", Amount: 1200, Status: "succeeded"}}
		uc := newTestUseCase(repo, &mockTurfClient{}, pay, now)

		resp, err := uc.Execute(context.Background(), &Request{BookingID: 10, UserID: 1})
		require.NoError(t, err)

		// Отмена записана, деньги вернулись: сбой фиксации статуса платежа
		// уходит в лог на ручную сверку, а не в ошибку клиенту
		assert.Equal(t, string(domain.StatusCancelledByUser), resp.Status)
		assert.Equal(t, string(domain.PaymentStatusRefunded), resp.PaymentStatus)
		assert.False(t, resp.RefundPending)
	})

	t.Run("pending payment cancels without refund call", func(t *testing.T) {
		repo := &mockBookingRepo{booking: confirmedBooking(5*time.Hour, now, domain.PaymentStatusPending)}
		pay := &mockPaymentsClient{}
		uc := newTestUseCase(repo, &mockTurfClient{}, pay, now)

		resp, err := uc.Execute(context.Background(), &Request{BookingID: 10, UserID: 1})
		require.NoError(t, err)

		assert.Equal(t, 0.0, resp.RefundAmount)
		assert.Equal(t, 0, pay.calls)
		assert.Equal(t, domain.PaymentStatusPending, repo.cancelledPay)
	})

	t.Run("completed payment inside refund window gets no refund", func(t *testing.T) {
		repo := &mockBookingRepo{booking: confirmedBooking(time.Hour, now, domain.PaymentStatusCompleted)}
		pay := &mockPaymentsClient{}
		uc := newTestUseCase(repo, &mockTurfClient{}, pay, now)

		resp, err := uc.Execute(context.Background(), &Request{BookingID: 10, UserID: 1})
		require.NoError(t, err)

		assert.Equal(t, 0.0, resp.RefundAmount)
		assert.Equal(t, 0, pay.calls)
	})

	t.Run("past booking cannot be cancelled", func(t *testing.T) {
		repo := &mockBookingRepo{booking: confirmedBooking(-time.Hour, now, domain.PaymentStatusCompleted)}
		uc := newTestUseCase(repo, &mockTurfClient{}, &mockPaymentsClient{}, now)

		_, err := uc.Execute(context.Background(), &Request{BookingID: 10, UserID: 1})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("already cancelled booking is rejected", func(t *testing.T) {
		b := confirmedBooking(5*time.Hour, now, domain.PaymentStatusCompleted)
		b.Status = domain.StatusCancelledByUser
		uc := newTestUseCase(&mockBookingRepo{booking: b}, &mockTurfClient{}, &mockPaymentsClient{}, now)

		_, err := uc.Execute(context.Background(), &Request{BookingID: 10, UserID: 1})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("manager cancels on behalf of the turf", func(t *testing.T) {
		repo := &mockBookingRepo{booking: confirmedBooking(5*time.Hour, now, domain.PaymentStatusPending)}
		turfs := &mockTurfClient{turf: &turfservice.Turf{ID: 5, ManagerIDs: []int64{99}}}
		uc := newTestUseCase(repo, turfs, &mockPaymentsClient{}, now)

		resp, err := uc.Execute(context.Background(), &Request{BookingID: 10, UserID: 99})
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelledByTurf), resp.Status)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		repo := &mockBookingRepo{booking: confirmedBooking(5*time.Hour, now, domain.PaymentStatusPending)}
		turfs := &mockTurfClient{turf: &turfservice.Turf{ID: 5, ManagerIDs: []int64{99}}}
		uc := newTestUseCase(repo, turfs, &mockPaymentsClient{}, now)

		_, err := uc.Execute(context.Background(), &Request{BookingID: 10, UserID: 42})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("gateway outage defers refund but cancellation succeeds", func(t *testing.T) {
		repo := &mockBookingRepo{booking: confirmedBooking(5*time.Hour, now, domain.PaymentStatusCompleted)}
		pay := &mockPaymentsClient{err: payments.ErrServiceDegraded}
		uc := newTestUseCase(repo, &mockTurfClient{}, pay, now)

		resp, err := uc.Execute(context.Background(), &Request{BookingID: 10, UserID: 1})
		require.NoError(t, err)

		assert.True(t, resp.RefundPending)
		assert.Equal(t, domain.PaymentStatusCompleted, repo.cancelledPay)
		assert.Equal(t, 1200.0, repo.cancelledRefund)
	})

	t.Run("missing booking", func(t *testing.T) {
		repo := &mockBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
		uc := newTestUseCase(repo, &mockTurfClient{}, &mockPaymentsClient{}, now)

		_, err := uc.Execute(context.Background(), &Request{BookingID: 10, UserID: 1})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestQuote(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("refundable booking", func(t *testing.T) {
		repo := &mockBookingRepo{booking: confirmedBooking(3*time.Hour, now, domain.PaymentStatusCompleted)}
		uc := newTestUseCase(repo, &mockTurfClient{}, &mockPaymentsClient{}, now)

		resp, err := uc.Quote(context.Background(), &QuoteRequest{BookingID: 10, UserID: 1})
		require.NoError(t, err)
		assert.True(t, resp.CanCancel)
		assert.Equal(t, 1200.0, resp.RefundAmount)
	})

	t.Run("past booking quotes as not cancellable", func(t *testing.T) {
		repo := &mockBookingRepo{booking: confirmedBooking(-time.Hour, now, domain.PaymentStatusCompleted)}
		uc := newTestUseCase(repo, &mockTurfClient{}, &mockPaymentsClient{}, now)

		resp, err := uc.Quote(context.Background(), &QuoteRequest{BookingID: 10, UserID: 1})
		require.NoError(t, err)
		assert.False(t, resp.CanCancel)
		assert.Equal(t, 0.0, resp.RefundAmount)
	})

	t.Run("quote does not touch the gateway", func(t *testing.T) {
		repo := &mockBookingRepo{booking: confirmedBooking(3*time.Hour, now, domain.PaymentStatusCompleted)}
		pay := &mockPaymentsClient{}
		uc := newTestUseCase(repo, &mockTurfClient{}, pay, now)

		_, err := uc.Quote(context.Background(), &QuoteRequest{BookingID: 10, UserID: 1})
		require.NoError(t, err)
		assert.Equal(t, 0, pay.calls)
	})
}
