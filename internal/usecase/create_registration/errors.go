package create_registration

import "errors"

var (
	// ErrValidationFailed возвращается при некорректных данных формы
	ErrValidationFailed = errors.New("create_registration: validation failed")

	// ErrSessionFull возвращается, когда в сеансе нет мест (ожидаемая ситуация, не сбой)
	ErrSessionFull = errors.New("create_registration: session is full")

	// ErrStoreUnavailable возвращается, когда хранилище недоступно; запись не сохранена
	ErrStoreUnavailable = errors.New("create_registration: store unavailable")
)
