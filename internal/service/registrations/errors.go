package registrations

import "errors"

var (
	// ErrNotFound возвращается, когда строки с такой позицией нет
	ErrNotFound = errors.New("registration not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
