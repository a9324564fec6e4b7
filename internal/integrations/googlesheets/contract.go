package googlesheets

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config параметры подключения к листу
type Config struct {
	CredentialsFile string        // JSON ключ сервисного аккаунта
	SpreadsheetID   string        // ID документа из URL
	SheetName       string        // Имя листа, используется как A1-диапазон
	SheetID         int64         // Числовой gid листа, нужен для удаления строк
	Timeout         time.Duration // Таймаут одного запроса к API
}
