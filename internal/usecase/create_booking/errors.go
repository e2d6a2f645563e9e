package create_booking

import "errors"

var (
	// ErrTurfNotFound возвращается, когда площадка не найдена
	ErrTurfNotFound = errors.New("turf not found")

	// ErrTurfInactive возвращается, когда площадка снята с публикации
	ErrTurfInactive = errors.New("turf is not active")

	// ErrTurfClosed возвращается, когда площадка закрыта в указанную дату
	ErrTurfClosed = errors.New("turf is closed on this date")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrInvalidSelection возвращается, когда выбранные слоты не образуют
	// непрерывный отрезок рабочего окна
	ErrInvalidSelection = errors.New("selected slots are not a contiguous run of the operating window")

	// ErrSlotLapsed возвращается, когда время начала слота уже прошло
	ErrSlotLapsed = errors.New("slot start time has already passed")

	// ErrSlotNotAvailable возвращается, когда хотя бы один слот уже занят
	ErrSlotNotAvailable = errors.New("slot not available")

	// ErrTooManySlots возвращается при превышении лимита длительности бронирования
	ErrTooManySlots = errors.New("too many slots requested")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
