package registration

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-TennisBooking/internal/domain"
	"github.com/m04kA/SMC-TennisBooking/pkg/types"
)

// Формат str(datetime.now()), которым заполнены старые строки таблицы
const legacyTimestampFormat = "2006-01-02 15:04:05.999999"

// selectStrategy выбирает способ разбора один раз на чтение
func selectStrategy(rows [][]string) domain.ParseStrategy {
	if len(rows) > 0 && isHeader(rows[0]) {
		return domain.ParseByHeader
	}
	return domain.ParsePositional
}

// isHeader сравнивает строку с ожидаемым заголовком (лишние пустые ячейки справа допускаются)
func isHeader(row []string) bool {
	cells := trimTrailingEmpty(row)
	if len(cells) != len(domain.SheetHeader) {
		return false
	}
	for i, name := range domain.SheetHeader {
		if strings.TrimSpace(cells[i]) != name {
			return false
		}
	}
	return true
}

// parseTable разбирает строки хранилища в снимок
// Пустые строки пропускаются, но позиции остальных строк сохраняются
func parseTable(rows [][]string) domain.Table {
	strategy := selectStrategy(rows)

	start := 0
	if strategy == domain.ParseByHeader {
		start = 1
	}

	registrations := make([]domain.Registration, 0, len(rows))
	for i := start; i < len(rows); i++ {
		if isBlank(rows[i]) {
			continue
		}
		registrations = append(registrations, parseRow(rows[i], i+1))
	}

	return domain.Table{Registrations: registrations, Strategy: strategy}
}

// parseRow разбирает строку по позициям колонок; не падает на коротких строках
// Текстовые ячейки возвращаются как записаны, пробелы обрезаются только у времени
func parseRow(row []string, position int) domain.Registration {
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}

	return domain.Registration{
		Position:  position,
		FirstName: cell(0),
		LastName:  cell(1),
		Level:     domain.Level(cell(2)),
		Day:       cell(3),
		TimeSlot:  parseTimeSlot(cell(4)),
		CreatedAt: parseTimestamp(cell(5)),
	}
}

// toRow сериализует запись в фиксированном порядке колонок
func toRow(reg *domain.Registration) []string {
	return []string{
		reg.FirstName,
		reg.LastName,
		string(reg.Level),
		reg.Day,
		reg.TimeSlot.String(),
		reg.CreatedAt.Format(domain.TimestampFormat),
	}
}

// parseTimeSlot нормализует "7:00" в "07:00"; нераспознанное значение сохраняется как есть
func parseTimeSlot(raw string) types.TimeString {
	ts, err := types.NewTimeStringFromString(strings.TrimSpace(raw))
	if err != nil {
		return types.TimeString(raw)
	}
	return ts
}

func parseTimestamp(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse(domain.TimestampFormat, raw); err == nil {
		return t
	}
	if t, err := time.ParseInLocation(legacyTimestampFormat, raw, time.Local); err == nil {
		return t
	}
	return time.Time{}
}

func isBlank(row []string) bool {
	return len(trimTrailingEmpty(row)) == 0
}

func trimTrailingEmpty(row []string) []string {
	end := len(row)
	for end > 0 && strings.TrimSpace(row[end-1]) == "" {
		end--
	}
	return row[:end]
}
