package domain

import "time"

// Значения конфигурации по умолчанию
const (
	DefaultMaxCapacity     = 6
	DefaultCacheTTLSeconds = 300
	DefaultSlotStart       = "07:00"
	DefaultSlotEnd         = "22:00"
	DefaultSlotStepMinutes = 60
	MinSlotStepMinutes     = 5
	MaxNameLength          = 100
)

// Форматы времени
const (
	TimeFormat      = "15:04"          // HH:MM
	TimestampFormat = time.RFC3339Nano // колонка Timestamp
)

// DaysPerWeek количество дней в сетке расписания
const DaysPerWeek = 7

// DefaultDays дни недели в порядке отображения
var DefaultDays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// Колонки таблицы-хранилища в фиксированном порядке
const (
	ColumnFirstName = "FirstName"
	ColumnLastName  = "LastName"
	ColumnLevel     = "Level"
	ColumnDay       = "Day"
	ColumnTimeSlot  = "TimeSlot"
	ColumnTimestamp = "Timestamp"
)

// SheetHeader ожидаемая строка заголовка
var SheetHeader = []string{
	ColumnFirstName,
	ColumnLastName,
	ColumnLevel,
	ColumnDay,
	ColumnTimeSlot,
	ColumnTimestamp,
}
