package update_turf_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pitchside/Turf-BookingService/internal/api/handlers"
	"github.com/pitchside/Turf-BookingService/internal/api/middleware"
	scheduleService "github.com/pitchside/Turf-BookingService/internal/service/schedule"
	"github.com/pitchside/Turf-BookingService/internal/service/schedule/models"
)

const (
	msgInvalidTurfID    = "некорректный ID площадки"
	msgInvalidBody      = "некорректное тело запроса"
	msgInvalidTime      = "некорректное время, ожидается HH:MM"
	msgInvalidWeekday   = "некорректный день недели, ожидается 0-6"
	msgTurfNotFound     = "площадка не найдена"
	msgScheduleNotFound = "строка расписания не найдена"
	msgAccessDenied     = "доступ запрещён"
	msgUnauthorizedUser = "пользователь не авторизован"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/turfs/{turfId}/schedule
// Доступно только менеджерам площадки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PUT /turfs/{turfId}/schedule - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorizedUser)
		return
	}

	// Извлекаем turfId из URL
	vars := mux.Vars(r)
	turfIDStr := vars["turfId"]

	turfID, err := strconv.ParseInt(turfIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /turfs/{turfId}/schedule - Invalid turf ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurfID)
		return
	}

	// Декодируем тело запроса
	var req UpsertScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /turfs/{turfId}/schedule - Invalid request body: turf_id=%d, error=%v", turfID, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Upsert(r.Context(), req.ToServiceRequest(userID, turfID))
	if err != nil {
		h.respondServiceError(w, "PUT", turfID, userID, err)
		return
	}

	h.logger.Info("PUT /turfs/{turfId}/schedule - Schedule upserted successfully: turf_id=%d, weekday=%v, user_id=%d",
		turfID, req.Weekday, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/turfs/{turfId}/schedule
// Доступно только менеджерам площадки
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("DELETE /turfs/{turfId}/schedule - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorizedUser)
		return
	}

	vars := mux.Vars(r)
	turfIDStr := vars["turfId"]

	turfID, err := strconv.ParseInt(turfIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /turfs/{turfId}/schedule - Invalid turf ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurfID)
		return
	}

	// Weekday передаётся в query: ?weekday=3; без параметра удаляется строка для всех дней
	var weekday *int
	if raw := r.URL.Query().Get("weekday"); raw != "" {
		day, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("DELETE /turfs/{turfId}/schedule - Invalid weekday: turf_id=%d, error=%v", turfID, err)
			handlers.RespondBadRequest(w, msgInvalidWeekday)
			return
		}
		weekday = &day
	}

	serviceReq := &models.DeleteScheduleRequest{
		UserID:  userID,
		TurfID:  turfID,
		Weekday: weekday,
	}

	if err := h.service.Delete(r.Context(), serviceReq); err != nil {
		h.respondServiceError(w, "DELETE", turfID, userID, err)
		return
	}

	h.logger.Info("DELETE /turfs/{turfId}/schedule - Schedule deleted successfully: turf_id=%d, weekday=%v, user_id=%d",
		turfID, weekday, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, method string, turfID, userID int64, err error) {
	switch {
	case errors.Is(err, scheduleService.ErrTurfNotFound):
		h.logger.Warn("%s /turfs/{turfId}/schedule - Turf not found: turf_id=%d", method, turfID)
		handlers.RespondNotFound(w, msgTurfNotFound)

	case errors.Is(err, scheduleService.ErrScheduleNotFound):
		h.logger.Warn("%s /turfs/{turfId}/schedule - Schedule not found: turf_id=%d", method, turfID)
		handlers.RespondNotFound(w, msgScheduleNotFound)

	case errors.Is(err, scheduleService.ErrAccessDenied):
		h.logger.Warn("%s /turfs/{turfId}/schedule - Access denied: turf_id=%d, user_id=%d", method, turfID, userID)
		handlers.RespondForbidden(w, msgAccessDenied)

	case errors.Is(err, scheduleService.ErrInvalidTime):
		h.logger.Warn("%s /turfs/{turfId}/schedule - Invalid time: turf_id=%d, error=%v", method, turfID, err)
		handlers.RespondBadRequest(w, msgInvalidTime)

	case errors.Is(err, scheduleService.ErrInvalidWeekday):
		h.logger.Warn("%s /turfs/{turfId}/schedule - Invalid weekday: turf_id=%d, error=%v", method, turfID, err)
		handlers.RespondBadRequest(w, msgInvalidWeekday)

	case errors.Is(err, scheduleService.ErrInvalidInput):
		h.logger.Warn("%s /turfs/{turfId}/schedule - Invalid input: turf_id=%d, error=%v", method, turfID, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s /turfs/{turfId}/schedule - Service error: turf_id=%d, error=%v", method, turfID, err)
		handlers.RespondInternalError(w)
	}
}
