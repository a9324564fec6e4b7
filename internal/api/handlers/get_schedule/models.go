package get_schedule

import (
	"github.com/m04kA/SMC-TennisBooking/internal/domain"
	getSchedule "github.com/m04kA/SMC-TennisBooking/internal/usecase/get_schedule"
)

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	Days      []string            `json:"days"`
	TimeSlots []string            `json:"timeSlots"`
	Sessions  [][]SessionResponse `json:"sessions"` // [день][слот]
	Total     int                 `json:"total"`
}

// SessionResponse состояние одного сеанса
type SessionResponse struct {
	Day       string  `json:"day"`
	TimeSlot  string  `json:"timeSlot"`
	Count     int     `json:"count"`
	Capacity  int     `json:"capacity"`
	Remaining int     `json:"remaining"`
	Level     *string `json:"level,omitempty"` // Нет для пустого сеанса
	IsEmpty   bool    `json:"isEmpty"`
	IsFull    bool    `json:"isFull"`
}

// FromDomainSession конвертирует состояние сеанса в HTTP модель
func FromDomainSession(s *domain.SessionStats) SessionResponse {
	resp := SessionResponse{
		Day:       s.Day,
		TimeSlot:  s.TimeSlot.String(),
		Count:     s.Count,
		Capacity:  s.Capacity,
		Remaining: s.Remaining(),
		IsEmpty:   s.IsEmpty(),
		IsFull:    s.IsFull(),
	}
	if s.HasLevel() {
		level := string(s.Level)
		resp.Level = &level
	}
	return resp
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSchedule.Response) *ScheduleResponse {
	out := &ScheduleResponse{
		Days:      resp.Days,
		TimeSlots: make([]string, len(resp.TimeSlots)),
		Sessions:  make([][]SessionResponse, len(resp.Sessions)),
		Total:     resp.Total,
	}

	for i, slot := range resp.TimeSlots {
		out.TimeSlots[i] = slot.String()
	}

	for d, row := range resp.Sessions {
		out.Sessions[d] = make([]SessionResponse, len(row))
		for s := range row {
			out.Sessions[d][s] = FromDomainSession(&row[s])
		}
	}

	return out
}
