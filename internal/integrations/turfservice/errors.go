package turfservice

import "errors"

var (
	// ErrTurfNotFound возвращается, когда площадка не найдена
	ErrTurfNotFound = errors.New("turf not found")

	// ErrTurfInactive возвращается, когда площадка снята с публикации
	ErrTurfInactive = errors.New("turf is not active")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("turfservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("turfservice client: invalid response")
)
