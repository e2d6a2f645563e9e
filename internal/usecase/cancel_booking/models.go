package cancel_booking

import "time"

// Request модель запроса на отмену бронирования
type Request struct {
	BookingID int64  // ID бронирования
	UserID    int64  // ID пользователя (из заголовка авторизации)
	Reason    string // Причина отмены
}

// Response модель ответа на отмену бронирования
type Response struct {
	ID            int64      `json:"id"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"payment_status"`
	RefundAmount  float64    `json:"refund_amount"`
	RefundPending bool       `json:"refund_pending"` // Возврат ожидает ручной обработки
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
}

// QuoteRequest модель запроса на предварительный расчёт отмены
type QuoteRequest struct {
	BookingID int64 // ID бронирования
	UserID    int64 // ID пользователя
}

// QuoteResponse модель ответа с расчётом отмены
// Рассчитывается на момент запроса: клиент должен перезапрашивать расчёт
// перед показом кнопки отмены, ответ не кешируется
type QuoteResponse struct {
	BookingID    int64   `json:"booking_id"`
	CanCancel    bool    `json:"can_cancel"`
	RefundAmount float64 `json:"refund_amount"`
}
