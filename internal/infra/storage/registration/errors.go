package registration

import "errors"

var (
	// ErrStoreUnavailable возвращается, когда хранилище недоступно или операция не выполнена
	ErrStoreUnavailable = errors.New("registration.store: store unavailable")

	// ErrPositionOutOfRange возвращается, когда строки для удаления уже нет
	ErrPositionOutOfRange = errors.New("registration.store: position out of range")
)
