// Package sheet описывает построчное хранилище, которое используется как таблица записей.
// Позиции строк считаются с 1, как в электронных таблицах; строка заголовка, если есть, тоже строка.
package sheet

//go:generate mockgen -source=contract.go -destination=mocks/mock_sheet.go -package=mocks

import "context"

// Sheet построчное хранилище
type Sheet interface {
	// ReadRows возвращает все строки в порядке хранения
	ReadRows(ctx context.Context) ([][]string, error)
	// AppendRow добавляет строку в конец
	AppendRow(ctx context.Context, row []string) error
	// DeleteRow удаляет строку по позиции (с 1), последующие строки сдвигаются вверх
	DeleteRow(ctx context.Context, position int) error
}
