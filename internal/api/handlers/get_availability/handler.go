package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pitchside/Turf-BookingService/internal/api/handlers"
	"github.com/pitchside/Turf-BookingService/internal/api/middleware"
	getAvailability "github.com/pitchside/Turf-BookingService/internal/usecase/get_availability"
)

const (
	msgInvalidTurfID = "некорректный ID площадки"
	msgMissingDate   = "дата обязательна"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgPastDate      = "дата не может быть в прошлом"
	msgTurfNotFound  = "площадка не найдена"
	msgTurfInactive  = "площадка неактивна"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/turfs/{turfId}/availability
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем turfId из URL
	vars := mux.Vars(r)
	turfIDStr := vars["turfId"]

	turfID, err := strconv.ParseInt(turfIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /turfs/{turfId}/availability - Invalid turf ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurfID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /turfs/{turfId}/availability - Missing date: turf_id=%d", turfID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Эндпоинт публичный: userID опционален, используется только для логирования
	userID, _ := middleware.UserIDFromContext(r.Context())

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(userID, turfID, dateStr)
	if err != nil {
		h.logger.Warn("GET /turfs/{turfId}/availability - Invalid date format: turf_id=%d, error=%v", turfID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrTurfNotFound):
			h.logger.Warn("GET /turfs/{turfId}/availability - Turf not found: turf_id=%d", turfID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		case errors.Is(err, getAvailability.ErrTurfInactive):
			h.logger.Warn("GET /turfs/{turfId}/availability - Turf inactive: turf_id=%d", turfID)
			handlers.RespondBadRequest(w, msgTurfInactive)

		case errors.Is(err, getAvailability.ErrInvalidDate):
			h.logger.Warn("GET /turfs/{turfId}/availability - Date in the past: turf_id=%d, date=%s", turfID, dateStr)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /turfs/{turfId}/availability - Invalid input: turf_id=%d, error=%v", turfID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /turfs/{turfId}/availability - Failed to get availability: turf_id=%d, date=%s, error=%v",
				turfID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /turfs/{turfId}/availability - Availability retrieved successfully: turf_id=%d, date=%s, slots_count=%d",
		turfID, dateStr, len(response.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
