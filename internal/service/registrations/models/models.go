package models

import (
	"time"

	"github.com/m04kA/SMC-TennisBooking/internal/domain"
	"github.com/m04kA/SMC-TennisBooking/pkg/types"
)

// Request модели

// ListRequest запрос списка записей
type ListRequest struct {
	Day      *string           `json:"day,omitempty"`      // Фильтр по дню (опционально)
	TimeSlot *types.TimeString `json:"timeSlot,omitempty"` // Фильтр по времени (опционально)
}

// Matches returns true if the registration passes the filter
func (r *ListRequest) Matches(reg *domain.Registration) bool {
	if r == nil {
		return true
	}
	if r.Day != nil && reg.Day != *r.Day {
		return false
	}
	if r.TimeSlot != nil && reg.TimeSlot != *r.TimeSlot {
		return false
	}
	return true
}

// Response модели

// RegistrationResponse запись с позицией строки в таблице
type RegistrationResponse struct {
	Position  int        `json:"position"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Level     string     `json:"level"`
	Day       string     `json:"day"`
	TimeSlot  string     `json:"timeSlot"`
	CreatedAt *time.Time `json:"createdAt,omitempty"` // Пусто, если ячейка не разобрана
}

// RegistrationListResponse ответ со списком записей
type RegistrationListResponse struct {
	Registrations []RegistrationResponse `json:"registrations"`
	Strategy      string                 `json:"strategy"` // Способ разбора таблицы
}

// Методы конвертации

// FromDomainRegistration конвертирует domain модель в DTO
func FromDomainRegistration(r *domain.Registration, position int) RegistrationResponse {
	resp := RegistrationResponse{
		Position:  position,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Level:     string(r.Level),
		Day:       r.Day,
		TimeSlot:  r.TimeSlot.String(),
	}
	if !r.CreatedAt.IsZero() {
		createdAt := r.CreatedAt
		resp.CreatedAt = &createdAt
	}
	return resp
}
