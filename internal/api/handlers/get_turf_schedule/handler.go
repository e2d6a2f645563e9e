package get_turf_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pitchside/Turf-BookingService/internal/api/handlers"
	scheduleService "github.com/pitchside/Turf-BookingService/internal/service/schedule"
)

const (
	msgInvalidTurfID = "некорректный ID площадки"
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

// Handle GET /api/v1/turfs/{turfId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем turfId из URL
	vars := mux.Vars(r)
	turfIDStr := vars["turfId"]

	turfID, err := strconv.ParseInt(turfIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /turfs/{turfId}/schedule - Invalid turf ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurfID)
		return
	}

	result, err := h.service.GetByTurf(r.Context(), turfID)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("GET /turfs/{turfId}/schedule - Invalid input: turf_id=%d, error=%v", turfID, err)
			handlers.RespondBadRequest(w, msgInvalidTurfID)

		default:
			h.logger.Error("GET /turfs/{turfId}/schedule - Failed to get schedule: turf_id=%d, error=%v",
				turfID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /turfs/{turfId}/schedule - Schedule retrieved successfully: turf_id=%d, rows=%d",
		turfID, len(result.Schedules))
	handlers.RespondJSON(w, http.StatusOK, result)
}
