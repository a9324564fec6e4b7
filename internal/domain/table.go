package domain

// ParseStrategy способ разбора строк таблицы
type ParseStrategy string

const (
	// ParseByHeader первая строка совпала с SheetHeader и пропускается
	ParseByHeader ParseStrategy = "by-header"
	// ParsePositional заголовка нет, все строки - данные, колонки по позиции
	ParsePositional ParseStrategy = "positional"
)

// Table снимок всех записей в порядке хранения
type Table struct {
	Registrations []Registration
	Strategy      ParseStrategy
}

// EmptyTable пустой снимок (используется при недоступности хранилища)
func EmptyTable() Table {
	return Table{Registrations: []Registration{}, Strategy: ParsePositional}
}

// Len returns the number of registrations
func (t Table) Len() int {
	return len(t.Registrations)
}

// HeaderRows returns the number of header rows preceding data in storage
func (t Table) HeaderRows() int {
	if t.Strategy == ParseByHeader {
		return 1
	}
	return 0
}

// PositionOf переводит индекс в снимке (с 0) в номер строки хранилища (с 1)
// Если запись прочитана из хранилища, используется её сохранённая позиция
func (t Table) PositionOf(index int) int {
	if index >= 0 && index < len(t.Registrations) && t.Registrations[index].Position > 0 {
		return t.Registrations[index].Position
	}
	return index + 1 + t.HeaderRows()
}
