package googlesheets

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("googlesheets client: internal error")

	// ErrRequest возвращается, когда запрос к Sheets API не выполнен
	ErrRequest = errors.New("googlesheets client: request failed")
)
