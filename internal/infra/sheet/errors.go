package sheet

import "errors"

var (
	// ErrRowOutOfRange возвращается, когда строки с такой позицией нет
	ErrRowOutOfRange = errors.New("sheet: row position out of range")

	// ErrUnavailable возвращается, когда хранилище недоступно
	ErrUnavailable = errors.New("sheet: backend unavailable")
)
