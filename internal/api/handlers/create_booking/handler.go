package create_booking

import (
	"errors"
	"net/http"

	"github.com/pitchside/Turf-BookingService/internal/api/handlers"
	"github.com/pitchside/Turf-BookingService/internal/api/middleware"
	createBooking "github.com/pitchside/Turf-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidBody       = "некорректное тело запроса"
	msgInvalidDate       = "некорректный формат даты или времени слота"
	msgPastDate          = "дата не может быть в прошлом"
	msgTurfNotFound      = "площадка не найдена"
	msgTurfInactive      = "площадка неактивна"
	msgTurfClosed        = "площадка закрыта в выбранный день"
	msgInvalidSelection  = "выбранные слоты должны идти подряд в пределах рабочего окна"
	msgSlotLapsed        = "время начала слота уже прошло"
	msgSlotNotAvailable  = "один или несколько слотов уже забронированы"
	msgTooManySlots      = "превышена максимальная длительность бронирования"
	msgUnauthorizedUser  = "пользователь не авторизован"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorizedUser)
		return
	}

	// Декодируем тело запроса
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	// Формируем запрос к use case (с парсингом даты и слотов)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date or slot format: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrTurfNotFound):
			h.logger.Warn("POST /bookings - Turf not found: user_id=%d, turf_id=%d", userID, req.TurfID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		case errors.Is(err, createBooking.ErrTurfInactive):
			h.logger.Warn("POST /bookings - Turf inactive: user_id=%d, turf_id=%d", userID, req.TurfID)
			handlers.RespondBadRequest(w, msgTurfInactive)

		case errors.Is(err, createBooking.ErrTurfClosed):
			h.logger.Warn("POST /bookings - Turf closed on date: user_id=%d, turf_id=%d, date=%s",
				userID, req.TurfID, req.Date)
			handlers.RespondBadRequest(w, msgTurfClosed)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Date in the past: user_id=%d, date=%s", userID, req.Date)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createBooking.ErrInvalidSelection):
			h.logger.Warn("POST /bookings - Invalid slot selection: user_id=%d, turf_id=%d, slots=%v",
				userID, req.TurfID, req.SlotStarts)
			handlers.RespondBadRequest(w, msgInvalidSelection)

		case errors.Is(err, createBooking.ErrSlotLapsed):
			h.logger.Warn("POST /bookings - Slot lapsed: user_id=%d, turf_id=%d, slots=%v",
				userID, req.TurfID, req.SlotStarts)
			handlers.RespondBadRequest(w, msgSlotLapsed)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot conflict: user_id=%d, turf_id=%d, date=%s, slots=%v",
				userID, req.TurfID, req.Date, req.SlotStarts)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrTooManySlots):
			h.logger.Warn("POST /bookings - Too many slots: user_id=%d, slots_count=%d", userID, len(req.SlotStarts))
			handlers.RespondBadRequest(w, msgTooManySlots)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, turf_id=%d, error=%v",
				userID, req.TurfID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, turf_id=%d, total=%.2f",
		result.ID, userID, req.TurfID, result.TotalAmount)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
