package registration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TennisBooking/internal/domain"
	"github.com/m04kA/SMC-TennisBooking/internal/infra/sheet"
)

// Названия операций для метрик
const (
	opRead   = "read"
	opAppend = "append"
	opDelete = "delete"
)

// Store адаптер таблицы записей: чтение через кэш, добавление и удаление строк
// Экземпляр создаётся один раз на процесс и передаётся явно
type Store struct {
	sheet   Sheet
	cache   Cache
	metrics Metrics
	now     Clock
	logger  Logger
}

// NewStore создает адаптер поверх хранилища и кэша
func NewStore(backend Sheet, cache Cache, metrics Metrics, logger Logger) *Store {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Store{
		sheet:   backend,
		cache:   cache,
		metrics: metrics,
		now:     time.Now,
		logger:  logger,
	}
}

// WithClock подменяет источник времени (для тестов)
func (s *Store) WithClock(now Clock) *Store {
	s.now = now
	return s
}

// ReadAll возвращает снимок таблицы, по возможности из кэша
// При недоступности хранилища возвращает пустой снимок
func (s *Store) ReadAll(ctx context.Context) domain.Table {
	if table, ok := s.cache.Get(ctx); ok {
		s.metrics.ObserveCacheLookup(true)
		return table
	}
	s.metrics.ObserveCacheLookup(false)

	table, err := s.Refresh(ctx)
	if err != nil {
		s.logger.Error("ReadAll: degrading to empty table: %v", err)
		return domain.EmptyTable()
	}

	return table
}

// Refresh читает хранилище в обход кэша и перезаполняет кэш
// Используется для повторной проверки вместимости перед записью
func (s *Store) Refresh(ctx context.Context) (domain.Table, error) {
	rows, err := s.readRows(ctx)
	if err != nil {
		return domain.Table{}, err
	}

	table := parseTable(rows)
	s.cache.Set(ctx, table)

	s.logger.Info("Refresh: loaded %d registrations (rows=%d, strategy=%s)",
		table.Len(), len(rows), table.Strategy)
	return table, nil
}

// Append добавляет запись в конец таблицы
// Кэш сбрасывается в любом случае: при ошибке состояние хранилища неизвестно
func (s *Store) Append(ctx context.Context, reg *domain.Registration) error {
	defer s.cache.Invalidate(ctx)

	if reg.CreatedAt.IsZero() {
		reg.CreatedAt = s.now().UTC().Truncate(time.Second)
	}

	started := time.Now()
	err := s.sheet.AppendRow(ctx, toRow(reg))
	s.metrics.ObserveSheetOperation(opAppend, started, err)
	if err != nil {
		s.logger.Error("Append: failed to append %s (%s %s): %v", reg.FullName(), reg.Day, reg.TimeSlot, err)
		return fmt.Errorf("%w: append row: %v", ErrStoreUnavailable, err)
	}

	s.logger.Info("Append: registration appended: %s, day=%s, time=%s, level=%s",
		reg.FullName(), reg.Day, reg.TimeSlot, reg.Level)
	return nil
}

// DeleteAt удаляет строку по позиции хранилища (с 1, заголовок учитывается)
// Позиция заголовка и позиция за пределами таблицы дают ErrPositionOutOfRange без изменений
func (s *Store) DeleteAt(ctx context.Context, position int) error {
	defer s.cache.Invalidate(ctx)

	if position < 1 {
		return fmt.Errorf("%w: position=%d", ErrPositionOutOfRange, position)
	}

	rows, err := s.readRows(ctx)
	if err != nil {
		return err
	}

	headerRows := parseTable(rows).HeaderRows()
	if position <= headerRows || position > len(rows) {
		s.logger.Warn("DeleteAt: position=%d out of range (rows=%d, header=%d)", position, len(rows), headerRows)
		return fmt.Errorf("%w: position=%d, rows=%d", ErrPositionOutOfRange, position, len(rows))
	}

	// Пустая строка не является записью
	if isBlank(rows[position-1]) {
		s.logger.Warn("DeleteAt: position=%d is a blank row", position)
		return fmt.Errorf("%w: position=%d is blank", ErrPositionOutOfRange, position)
	}

	started := time.Now()
	err = s.sheet.DeleteRow(ctx, position)
	s.metrics.ObserveSheetOperation(opDelete, started, err)
	if err != nil {
		if errors.Is(err, sheet.ErrRowOutOfRange) {
			s.logger.Warn("DeleteAt: position=%d vanished before delete: %v", position, err)
			return fmt.Errorf("%w: %v", ErrPositionOutOfRange, err)
		}
		s.logger.Error("DeleteAt: failed to delete position=%d: %v", position, err)
		return fmt.Errorf("%w: delete row: %v", ErrStoreUnavailable, err)
	}

	deleted := parseRow(rows[position-1], position)
	s.logger.Info("DeleteAt: deleted position=%d: %s, day=%s, time=%s",
		position, deleted.FullName(), deleted.Day, deleted.TimeSlot)
	return nil
}

func (s *Store) readRows(ctx context.Context) ([][]string, error) {
	started := time.Now()
	rows, err := s.sheet.ReadRows(ctx)
	s.metrics.ObserveSheetOperation(opRead, started, err)
	if err != nil {
		return nil, fmt.Errorf("%w: read rows: %v", ErrStoreUnavailable, err)
	}
	return rows, nil
}

type noopMetrics struct{}

func (noopMetrics) ObserveCacheLookup(bool) {}

func (noopMetrics) ObserveSheetOperation(string, time.Time, error) {}
