package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchside/Turf-BookingService/internal/domain"
	scheduleRepo "github.com/pitchside/Turf-BookingService/internal/infra/storage/schedule"
	"github.com/pitchside/Turf-BookingService/internal/integrations/turfservice"
	"github.com/pitchside/Turf-BookingService/pkg/types"
)

type mockBookingRepo struct {
	bookings []*domain.Booking
}

func (m *mockBookingRepo) GetByTurfWithFilter(ctx context.Context, filter domain.TurfBookingsFilter) ([]*domain.Booking, error) {
	return m.bookings, nil
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

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(bookings *mockBookingRepo, sched *mockScheduleRepo, turfs *mockTurfClient, now time.Time) *UseCase {
	uc := NewUseCase(bookings, sched, turfs, nopLogger{})
	uc.timeProvider = fixedTime{t: now}
	return uc
}

func slotByStart(t *testing.T, slots []Slot, start types.TimeString) Slot {
	t.Helper()
	for _, s := range slots {
		if s.StartTime == start {
			return s
		}
	}
	t.Fatalf("slot %s not found", start)
	return Slot{}
}

func TestExecute(t *testing.T) {
	now := time.Date(2026, 3, 14, 14, 30, 0, 0, time.UTC)
	futureDate := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	turf := &turfservice.Turf{ID: 5, Name: "Arena One", PricePerHour: 500, IsActive: true}

	t.Run("regular day with a booked run", func(t *testing.T) {
		booked := &domain.Booking{
			TurfID:          5,
			BookingDate:     futureDate,
			StartTime:       "10:00",
			DurationMinutes: 120,
			Status:          domain.StatusConfirmed,
		}
		uc := newTestUseCase(
			&mockBookingRepo{bookings: []*domain.Booking{booked}},
			&mockScheduleRepo{schedule: &domain.TurfSchedule{TurfID: 5, OpenTime: "06:00", CloseTime: "22:00"}},
			&mockTurfClient{turf: turf},
			now,
		)

		resp, err := uc.Execute(context.Background(), &Request{UserID: 1, TurfID: 5, Date: futureDate})
		require.NoError(t, err)

		assert.Len(t, resp.Slots, 16)
		assert.False(t, resp.Overnight)
		assert.Equal(t, "Arena One", resp.TurfName)

		ten := slotByStart(t, resp.Slots, "10:00")
		assert.True(t, ten.Booked)
		assert.False(t, ten.Available)

		eleven := slotByStart(t, resp.Slots, "11:00")
		assert.True(t, eleven.Booked)

		noon := slotByStart(t, resp.Slots, "12:00")
		assert.False(t, noon.Booked)
		assert.True(t, noon.Available)
		assert.Equal(t, "12:00 - 13:00", noon.Label)
	})

	t.Run("today marks lapsed slots", func(t *testing.T) {
		today := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
		uc := newTestUseCase(
			&mockBookingRepo{},
			&mockScheduleRepo{schedule: &domain.TurfSchedule{TurfID: 5, OpenTime: "06:00", CloseTime: "22:00"}},
			&mockTurfClient{turf: turf},
			now,
		)

		resp, err := uc.Execute(context.Background(), &Request{UserID: 1, TurfID: 5, Date: today})
		require.NoError(t, err)

		assert.True(t, slotByStart(t, resp.Slots, "14:00").Lapsed)
		assert.False(t, slotByStart(t, resp.Slots, "15:00").Lapsed)
		assert.True(t, slotByStart(t, resp.Slots, "15:00").Available)
	})

	t.Run("overnight window keeps traversal order", func(t *testing.T) {
		uc := newTestUseCase(
			&mockBookingRepo{},
			&mockScheduleRepo{schedule: &domain.TurfSchedule{TurfID: 5, OpenTime: "23:00", CloseTime: "05:00"}},
			&mockTurfClient{turf: turf},
			now,
		)

		resp, err := uc.Execute(context.Background(), &Request{UserID: 1, TurfID: 5, Date: futureDate})
		require.NoError(t, err)

		require.Len(t, resp.Slots, 6)
		assert.True(t, resp.Overnight)
		assert.Equal(t, types.TimeString("23:00"), resp.Slots[0].StartTime)
		assert.Equal(t, types.TimeString("00:00"), resp.Slots[1].StartTime)
		assert.Equal(t, "23:00 - 00:00", resp.Slots[0].Label)
	})

	t.Run("closed day yields empty slots", func(t *testing.T) {
		uc := newTestUseCase(
			&mockBookingRepo{},
			&mockScheduleRepo{schedule: &domain.TurfSchedule{TurfID: 5, OpenTime: "06:00", CloseTime: "22:00", IsClosed: true}},
			&mockTurfClient{turf: turf},
			now,
		)

		resp, err := uc.Execute(context.Background(), &Request{UserID: 1, TurfID: 5, Date: futureDate})
		require.NoError(t, err)
		assert.True(t, resp.IsClosed)
		assert.Empty(t, resp.Slots)
	})

	t.Run("missing schedule treated as closed", func(t *testing.T) {
		uc := newTestUseCase(
			&mockBookingRepo{},
			&mockScheduleRepo{err: scheduleRepo.ErrScheduleNotFound},
			&mockTurfClient{turf: turf},
			now,
		)

		resp, err := uc.Execute(context.Background(), &Request{UserID: 1, TurfID: 5, Date: futureDate})
		require.NoError(t, err)
		assert.True(t, resp.IsClosed)
	})

	t.Run("inactive turf rejected", func(t *testing.T) {
		inactive := &turfservice.Turf{ID: 5, IsActive: false}
		uc := newTestUseCase(&mockBookingRepo{}, &mockScheduleRepo{}, &mockTurfClient{turf: inactive}, now)

		_, err := uc.Execute(context.Background(), &Request{UserID: 1, TurfID: 5, Date: futureDate})
		assert.ErrorIs(t, err, ErrTurfInactive)
	})

	t.Run("unknown turf rejected", func(t *testing.T) {
		uc := newTestUseCase(&mockBookingRepo{}, &mockScheduleRepo{}, &mockTurfClient{err: turfservice.ErrTurfNotFound}, now)

		_, err := uc.Execute(context.Background(), &Request{UserID: 1, TurfID: 5, Date: futureDate})
		assert.ErrorIs(t, err, ErrTurfNotFound)
	})

	t.Run("past date rejected", func(t *testing.T) {
		uc := newTestUseCase(&mockBookingRepo{}, &mockScheduleRepo{}, &mockTurfClient{turf: turf}, now)

		_, err := uc.Execute(context.Background(), &Request{UserID: 1, TurfID: 5, Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}
