package payments

import "errors"

var (
	// ErrRefundFailed возвращается, когда платёжный шлюз отклонил возврат
	ErrRefundFailed = errors.New("payments client: refund failed")

	// ErrMissingPaymentRef возвращается при попытке возврата без идентификатора платежа
	ErrMissingPaymentRef = errors.New("payments client: missing payment reference")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что шлюз недоступен: отмена проходит, возврат помечается
	// для ручной обработки оператором
	ErrServiceDegraded = errors.New("payments gateway unavailable: graceful degradation applied")
)
