package get_turf_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pitchside/Turf-BookingService/internal/api/handlers"
	"github.com/pitchside/Turf-BookingService/internal/api/middleware"
	bookingsService "github.com/pitchside/Turf-BookingService/internal/service/bookings"
)

const (
	msgInvalidTurfID    = "некорректный ID площадки"
	msgInvalidQuery     = "некорректные параметры фильтра"
	msgInvalidStatus    = "некорректный статус бронирования"
	msgTurfNotFound     = "площадка не найдена"
	msgAccessDenied     = "доступ запрещён"
	msgUnauthorizedUser = "пользователь не авторизован"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/turfs/{turfId}/bookings
// Query params: startDate, endDate (YYYY-MM-DD), status, includeInactive (все опциональны)
// Доступно только менеджерам площадки.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /turfs/{turfId}/bookings - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorizedUser)
		return
	}

	// Извлекаем turfId из URL
	vars := mux.Vars(r)
	turfIDStr := vars["turfId"]

	turfID, err := strconv.ParseInt(turfIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /turfs/{turfId}/bookings - Invalid turf ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurfID)
		return
	}

	// Формируем запрос к сервису (с парсингом фильтров)
	serviceReq, err := ToServiceRequest(userID, turfID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /turfs/{turfId}/bookings - Invalid query params: turf_id=%d, error=%v", turfID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.GetTurfBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrTurfNotFound):
			h.logger.Warn("GET /turfs/{turfId}/bookings - Turf not found: turf_id=%d", turfID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		case errors.Is(err, bookingsService.ErrAccessDenied):
			h.logger.Warn("GET /turfs/{turfId}/bookings - Access denied: turf_id=%d, user_id=%d", turfID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookingsService.ErrInvalidStatus):
			h.logger.Warn("GET /turfs/{turfId}/bookings - Invalid status: turf_id=%d", turfID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /turfs/{turfId}/bookings - Failed to get bookings: turf_id=%d, error=%v",
				turfID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /turfs/{turfId}/bookings - Bookings retrieved successfully: turf_id=%d, user_id=%d, count=%d",
		turfID, userID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
