package get_availability

import (
	"time"

	"github.com/pitchside/Turf-BookingService/pkg/types"
)

// Request модель запроса доступности площадки на дату
type Request struct {
	UserID int64     // ID пользователя (для логирования, не влияет на результат)
	TurfID int64     // ID площадки
	Date   time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со слотами площадки
type Response struct {
	Date      time.Time        // Дата, на которую запрашивались слоты
	TurfID    int64            // ID площадки
	TurfName  string           // Название площадки
	IsClosed  bool             // Площадка закрыта в этот день
	Overnight bool             // Рабочее окно переходит через полночь
	OpenTime  types.TimeString // Время открытия
	CloseTime types.TimeString // Время закрытия
	Slots     []Slot           // Слоты в порядке обхода рабочего окна
}

// Slot модель одного часового слота
type Slot struct {
	StartTime types.TimeString // Время начала слота (например, "23:00")
	Label     string           // Отображаемый интервал ("23:00 - 00:00")
	Booked    bool             // Слот уже забронирован
	Lapsed    bool             // Время начала уже прошло (только для сегодняшней даты)
	Available bool             // Слот можно выбрать
}
