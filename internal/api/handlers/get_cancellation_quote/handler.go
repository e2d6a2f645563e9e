package get_cancellation_quote

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pitchside/Turf-BookingService/internal/api/handlers"
	"github.com/pitchside/Turf-BookingService/internal/api/middleware"
	cancelBooking "github.com/pitchside/Turf-BookingService/internal/usecase/cancel_booking"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgBookingNotFound  = "бронирование не найдено"
	msgAccessDenied     = "доступ запрещён"
	msgUnauthorizedUser = "пользователь не авторизован"
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}/cancellation
// Котировка считается на момент запроса и не кэшируется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/{bookingId}/cancellation - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorizedUser)
		return
	}

	// Извлекаем bookingId из URL
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{bookingId}/cancellation - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Вызываем use case
	useCaseReq := &cancelBooking.QuoteRequest{
		BookingID: bookingID,
		UserID:    userID,
	}

	result, err := h.useCase.Quote(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{bookingId}/cancellation - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, cancelBooking.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{bookingId}/cancellation - Access denied: booking_id=%d, user_id=%d",
				bookingID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /bookings/{bookingId}/cancellation - Failed to get quote: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{bookingId}/cancellation - Quote computed: booking_id=%d, can_cancel=%v, refund=%.2f",
		bookingID, result.CanCancel, result.RefundAmount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
