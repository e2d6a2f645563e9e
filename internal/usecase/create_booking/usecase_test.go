package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchside/Turf-BookingService/internal/domain"
	"github.com/pitchside/Turf-BookingService/internal/integrations/turfservice"
	"github.com/pitchside/Turf-BookingService/pkg/types"
)

type mockBookingRepo struct {
	existing []*domain.Booking
	created  *domain.Booking
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	booking.ID = 101
	m.created = booking
	return booking, nil
}

func (m *mockBookingRepo) GetByTurfWithFilter(ctx context.Context, filter domain.TurfBookingsFilter) ([]*domain.Booking, error) {
	return m.existing, nil
}

type mockScheduleRepo struct {
	schedule *domain.TurfSchedule
	err      error
}

func (m *mockScheduleRepo) GetScheduleForDay(ctx context.Context, turfID int64, weekday int) (*domain.TurfSchedule, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.schedule, nil
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

type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func daySchedule(open, close types.TimeString) *domain.TurfSchedule {
	return &domain.TurfSchedule{TurfID: 5, OpenTime: open, CloseTime: close}
}

func activeTurf() *turfservice.Turf {
	return &turfservice.Turf{ID: 5, Name: "Arena One", PricePerHour: 500, IsActive: true}
}

func newTestUseCase(repo *mockBookingRepo, sched *mockScheduleRepo, turfs *mockTurfClient, now time.Time) *UseCase {
	uc := NewUseCase(repo, sched, turfs, &mockTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{t: now}
	return uc
}

func TestExecute(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

	t.Run("books a contiguous run and prices per hour", func(t *testing.T) {
		repo := &mockBookingRepo{}
		uc := newTestUseCase(repo, &mockScheduleRepo{schedule: daySchedule("06:00", "22:00")}, &mockTurfClient{turf: activeTurf()}, now)

		resp, err := uc.Execute(context.Background(), &Request{
			UserID:     1,
			TurfID:     5,
			Date:       date,
			SlotStarts: []types.TimeString{"10:00", "11:00", "12:00"},
		})
		require.NoError(t, err)

		assert.Equal(t, int64(101), resp.ID)
		assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
		assert.Equal(t, 180, resp.DurationMinutes)
		assert.Equal(t, 1500.0, resp.TotalAmount)
		assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
		assert.Equal(t, string(domain.PaymentStatusPending), resp.PaymentStatus)
		assert.Equal(t, "Arena One", repo.created.TurfName)
	})

	t.Run("overnight run across midnight is contiguous", func(t *testing.T) {
		repo := &mockBookingRepo{}
		uc := newTestUseCase(repo, &mockScheduleRepo{schedule: daySchedule("22:00", "03:00")}, &mockTurfClient{turf: activeTurf()}, now)

		resp, err := uc.Execute(context.Background(), &Request{
			UserID:     1,
			TurfID:     5,
			Date:       date,
			SlotStarts: []types.TimeString{"23:00", "00:00", "01:00"},
		})
		require.NoError(t, err)
		assert.Equal(t, types.TimeString("23:00"), resp.StartTime)
		assert.Equal(t, 180, resp.DurationMinutes)
	})

	t.Run("gap in the selection is rejected", func(t *testing.T) {
		uc := newTestUseCase(&mockBookingRepo{}, &mockScheduleRepo{schedule: daySchedule("06:00", "22:00")}, &mockTurfClient{turf: activeTurf()}, now)

		_, err := uc.Execute(context.Background(), &Request{
			UserID:     1,
			TurfID:     5,
			Date:       date,
			SlotStarts: []types.TimeString{"10:00", "12:00"},
		})
		assert.ErrorIs(t, err, ErrInvalidSelection)
	})

	t.Run("slot outside the operating window is rejected", func(t *testing.T) {
		uc := newTestUseCase(&mockBookingRepo{}, &mockScheduleRepo{schedule: daySchedule("06:00", "22:00")}, &mockTurfClient{turf: activeTurf()}, now)

		_, err := uc.Execute(context.Background(), &Request{
			UserID:     1,
			TurfID:     5,
			Date:       date,
			SlotStarts: []types.TimeString{"23:00"},
		})
		assert.ErrorIs(t, err, ErrInvalidSelection)
	})

	t.Run("conflicting booking blocks the slot", func(t *testing.T) {
		taken := &domain.Booking{
			TurfID:          5,
			BookingDate:     date,
			StartTime:       "11:00",
			DurationMinutes: 120,
			Status:          domain.StatusConfirmed,
		}
		uc := newTestUseCase(&mockBookingRepo{existing: []*domain.Booking{taken}}, &mockScheduleRepo{schedule: daySchedule("06:00", "22:00")}, &mockTurfClient{turf: activeTurf()}, now)

		_, err := uc.Execute(context.Background(), &Request{
			UserID:     1,
			TurfID:     5,
			Date:       date,
			SlotStarts: []types.TimeString{"12:00", "13:00"},
		})
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("lapsed slot today is rejected", func(t *testing.T) {
		today := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
		uc := newTestUseCase(&mockBookingRepo{}, &mockScheduleRepo{schedule: daySchedule("06:00", "22:00")}, &mockTurfClient{turf: activeTurf()}, now)

		_, err := uc.Execute(context.Background(), &Request{
			UserID:     1,
			TurfID:     5,
			Date:       today,
			SlotStarts: []types.TimeString{"09:00"},
		})
		assert.ErrorIs(t, err, ErrSlotLapsed)
	})

	t.Run("closed day is rejected", func(t *testing.T) {
		closed := daySchedule("06:00", "22:00")
		closed.IsClosed = true
		uc := newTestUseCase(&mockBookingRepo{}, &mockScheduleRepo{schedule: closed}, &mockTurfClient{turf: activeTurf()}, now)

		_, err := uc.Execute(context.Background(), &Request{
			UserID:     1,
			TurfID:     5,
			Date:       date,
			SlotStarts: []types.TimeString{"10:00"},
		})
		assert.ErrorIs(t, err, ErrTurfClosed)
	})

	t.Run("inactive turf is rejected", func(t *testing.T) {
		turf := activeTurf()
		turf.IsActive = false
		uc := newTestUseCase(&mockBookingRepo{}, &mockScheduleRepo{schedule: daySchedule("06:00", "22:00")}, &mockTurfClient{turf: turf}, now)

		_, err := uc.Execute(context.Background(), &Request{
			UserID:     1,
			TurfID:     5,
			Date:       date,
			SlotStarts: []types.TimeString{"10:00"},
		})
		assert.ErrorIs(t, err, ErrTurfInactive)
	})

	t.Run("past date is rejected", func(t *testing.T) {
		uc := newTestUseCase(&mockBookingRepo{}, &mockScheduleRepo{schedule: daySchedule("06:00", "22:00")}, &mockTurfClient{turf: activeTurf()}, now)

		_, err := uc.Execute(context.Background(), &Request{
			UserID:     1,
			TurfID:     5,
			Date:       time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
			SlotStarts: []types.TimeString{"10:00"},
		})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("too many slots is rejected", func(t *testing.T) {
		uc := newTestUseCase(&mockBookingRepo{}, &mockScheduleRepo{schedule: daySchedule("06:00", "22:00")}, &mockTurfClient{turf: activeTurf()}, now)

		_, err := uc.Execute(context.Background(), &Request{
			UserID:     1,
			TurfID:     5,
			Date:       date,
			SlotStarts: []types.TimeString{"10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"},
		})
		assert.ErrorIs(t, err, ErrTooManySlots)
	})
}
