package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-TennisBooking/internal/infra/sheet"
)

// Sheet хранилище строк в памяти процесса (dev-режим и тесты)
type Sheet struct {
	mu   sync.RWMutex
	rows [][]string
}

// New создает хранилище с начальными строками
func New(rows ...[]string) *Sheet {
	s := &Sheet{rows: make([][]string, 0, len(rows))}
	for _, row := range rows {
		s.rows = append(s.rows, copyRow(row))
	}
	return s
}

// ReadRows возвращает копию всех строк
func (s *Sheet) ReadRows(_ context.Context) ([][]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([][]string, len(s.rows))
	for i, row := range s.rows {
		rows[i] = copyRow(row)
	}
	return rows, nil
}

// AppendRow добавляет строку в конец
func (s *Sheet) AppendRow(_ context.Context, row []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows = append(s.rows, copyRow(row))
	return nil
}

// DeleteRow удаляет строку по позиции (с 1)
func (s *Sheet) DeleteRow(_ context.Context, position int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if position < 1 || position > len(s.rows) {
		return fmt.Errorf("%w: position=%d, rows=%d", sheet.ErrRowOutOfRange, position, len(s.rows))
	}

	idx := position - 1
	s.rows = append(s.rows[:idx], s.rows[idx+1:]...)
	return nil
}

// Len возвращает количество строк, включая заголовок
func (s *Sheet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

func copyRow(row []string) []string {
	out := make([]string, len(row))
	copy(out, row)
	return out
}
