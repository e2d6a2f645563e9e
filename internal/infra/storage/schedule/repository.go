package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/pitchside/Turf-BookingService/internal/domain"
	"github.com/pitchside/Turf-BookingService/pkg/dbmetrics"
	"github.com/pitchside/Turf-BookingService/pkg/psqlbuilder"
)

var scheduleColumns = []string{
	"id",
	"turf_id",
	"weekday",
	"open_time",
	"close_time",
	"is_closed",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с расписаниями площадок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает или обновляет строку расписания
// Уникальность задаётся парой (turf_id, weekday); NULL weekday - расписание
// площадки по умолчанию для всех дней недели
func (r *Repository) Upsert(ctx context.Context, schedule *domain.TurfSchedule) (*domain.TurfSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("turf_schedules").
		Columns(
			"turf_id",
			"weekday",
			"open_time",
			"close_time",
			"is_closed",
		).
		Values(
			schedule.TurfID,
			schedule.Weekday,
			schedule.OpenTime,
			schedule.CloseTime,
			schedule.IsClosed,
		).
		Suffix(`ON CONFLICT (turf_id, COALESCE(weekday, -1)) DO UPDATE SET
			open_time = EXCLUDED.open_time,
			close_time = EXCLUDED.close_time,
			is_closed = EXCLUDED.is_closed,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return schedule, nil
}

// GetByTurfAndWeekday получает строку расписания для конкретного дня недели
// weekday == nil - расписание площадки по умолчанию
func (r *Repository) GetByTurfAndWeekday(ctx context.Context, turfID int64, weekday *int) (*domain.TurfSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(scheduleColumns...).
		From("turf_schedules").
		Where(squirrel.Eq{"turf_id": turfID})

	if weekday == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"weekday": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"weekday": *weekday})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTurfAndWeekday - build select query: %v", ErrBuildQuery, err)
	}

	schedule, err := r.scanSchedule(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTurfAndWeekday - scan schedule: %v", ErrScanRow, err)
	}

	return schedule, nil
}

// GetScheduleForDay получает действующее расписание площадки на день недели
// Двухуровневый поиск:
// 1. Строка для конкретного дня недели (turf_id, weekday)
// 2. Строка по умолчанию для всей площадки (turf_id, NULL)
func (r *Repository) GetScheduleForDay(ctx context.Context, turfID int64, weekday int) (*domain.TurfSchedule, error) {
	schedule, err := r.GetByTurfAndWeekday(ctx, turfID, &weekday)
	if err == nil {
		return schedule, nil
	}
	if err != ErrScheduleNotFound {
		return nil, err
	}

	return r.GetByTurfAndWeekday(ctx, turfID, nil)
}

// GetAllByTurf получает все строки расписания площадки
// Строка по умолчанию (weekday IS NULL) идёт первой
func (r *Repository) GetAllByTurf(ctx context.Context, turfID int64) ([]*domain.TurfSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("turf_schedules").
		Where(squirrel.Eq{"turf_id": turfID}).
		OrderBy("weekday ASC NULLS FIRST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAllByTurf - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllByTurf - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedules := make([]*domain.TurfSchedule, 0)
	for rows.Next() {
		schedule, err := r.scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAllByTurf - scan row: %v", ErrScanRow, err)
		}
		schedules = append(schedules, schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAllByTurf - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}

// Delete удаляет строку расписания для дня недели
// weekday == nil удаляет строку по умолчанию
func (r *Repository) Delete(ctx context.Context, turfID int64, weekday *int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteBuilder := psqlbuilder.Delete("turf_schedules").
		Where(squirrel.Eq{"turf_id": turfID})

	if weekday == nil {
		deleteBuilder = deleteBuilder.Where(squirrel.Eq{"weekday": nil})
	} else {
		deleteBuilder = deleteBuilder.Where(squirrel.Eq{"weekday": *weekday})
	}

	query, args, err := deleteBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanSchedule сканирует одну строку результата в расписание
func (r *Repository) scanSchedule(row rowScanner) (*domain.TurfSchedule, error) {
	var schedule domain.TurfSchedule
	var weekday sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&schedule.ID,
		&schedule.TurfID,
		&weekday,
		&schedule.OpenTime,
		&schedule.CloseTime,
		&schedule.IsClosed,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if weekday.Valid {
		wd := int(weekday.Int64)
		schedule.Weekday = &wd
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return &schedule, nil
}
