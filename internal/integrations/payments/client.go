package payments

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/refund"
)

// Logger интерфейс логгера для клиента
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Refund результат возврата средств
type Refund struct {
	ID     string
	Amount float64
	Status string
}

// Client клиент платёжного шлюза (Stripe)
// Выполняет только возвраты: приём платежей и вебхуки живут в отдельном
// платёжном сервисе
type Client struct {
	log Logger
}

// NewClient создает новый экземпляр клиента платёжного шлюза
// secretKey - ключ API Stripe из конфигурации
func NewClient(secretKey string, log Logger) *Client {
	stripe.Key = secretKey
	return &Client{log: log}
}

// CreateRefund выполняет возврат средств по идентификатору платежа
// amount указывается в основных денежных единицах (рубли/доллары),
// конвертация в минимальные единицы выполняется внутри
func (c *Client) CreateRefund(ctx context.Context, paymentRef string, amount float64) (*Refund, error) {
	if paymentRef == "" {
		return nil, ErrMissingPaymentRef
	}

	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(paymentRef),
		Amount:        stripe.Int64(int64(math.Round(amount * 100))),
	}
	params.Context = ctx

	result, err := refund.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: payment_ref=%s: %v", ErrRefundFailed, paymentRef, err)
	}

	return &Refund{
		ID:     result.ID,
		Amount: float64(result.Amount) / 100,
		Status: string(result.Status),
	}, nil
}

// CreateRefundWithGracefulDegradation выполняет возврат с graceful degradation
// При недоступности шлюза возвращает ErrServiceDegraded: отмена бронирования
// должна пройти, а возврат - уйти в ручную обработку
func (c *Client) CreateRefundWithGracefulDegradation(ctx context.Context, paymentRef string, amount float64) (*Refund, error) {
	c.log.Info("Creating refund for payment_ref=%s, amount=%.2f", paymentRef, amount)

	result, err := c.CreateRefund(ctx, paymentRef, amount)
	if err != nil {
		// Отсутствие идентификатора платежа - бизнес-ошибка, пробрасываем как есть
		if err == ErrMissingPaymentRef {
			return nil, err
		}

		// Для всех остальных ошибок (недоступность шлюза, timeout) применяем
		// graceful degradation, повышаем уровень логирования до ERROR
		c.log.Error("Payments gateway unavailable, applying graceful degradation for payment_ref=%s: %v", paymentRef, err)
		return nil, fmt.Errorf("%w: payment_ref=%s, error=%v", ErrServiceDegraded, paymentRef, err)
	}

	c.log.Info("Refund created: id=%s, status=%s", result.ID, result.Status)
	return result, nil
}
