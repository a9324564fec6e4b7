package registration

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TennisBooking/internal/domain"
	"github.com/m04kA/SMC-TennisBooking/internal/infra/sheet"
)

// Sheet построчное хранилище (memory, postgres, Google Sheets)
type Sheet = sheet.Sheet

// Cache кэш снимка таблицы
// Промах и ошибка кэша неотличимы для вызывающего: в обоих случаях читается хранилище
type Cache interface {
	Get(ctx context.Context) (domain.Table, bool)
	Set(ctx context.Context, table domain.Table)
	Invalidate(ctx context.Context)
}

// Metrics метрики адаптера, реализуется *metrics.Metrics
type Metrics interface {
	ObserveCacheLookup(hit bool)
	ObserveSheetOperation(operation string, started time.Time, err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Clock источник текущего времени (для тестов)
type Clock func() time.Time
