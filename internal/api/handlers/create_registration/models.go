package create_registration

import (
	"time"

	getScheduleHandler "github.com/m04kA/SMC-TennisBooking/internal/api/handlers/get_schedule"
	"github.com/m04kA/SMC-TennisBooking/internal/domain"
	createRegistration "github.com/m04kA/SMC-TennisBooking/internal/usecase/create_registration"
	"github.com/m04kA/SMC-TennisBooking/pkg/types"
)

// CreateRegistrationRequest HTTP request model
type CreateRegistrationRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Level     string  `json:"level"`             // Beginner | Intermediate | Advanced
	Day       string  `json:"day"`               // "Monday"
	TimeSlot  string  `json:"timeSlot"`          // "10:00"
	EndTime   *string `json:"endTime,omitempty"` // "11:00", опционально
}

// RegistrationResponse HTTP response model
type RegistrationResponse struct {
	FirstName string                             `json:"firstName"`
	LastName  string                             `json:"lastName"`
	Level     string                             `json:"level"`
	Day       string                             `json:"day"`
	TimeSlot  string                             `json:"timeSlot"`
	CreatedAt string                             `json:"createdAt"`
	Session   getScheduleHandler.SessionResponse `json:"session"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Время проверяется в use case, здесь только перенос значений
func (r *CreateRegistrationRequest) ToUseCaseRequest() *createRegistration.Request {
	req := &createRegistration.Request{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Level:     domain.Level(r.Level),
		Day:       r.Day,
		TimeSlot:  types.TimeString(r.TimeSlot),
	}
	if r.EndTime != nil {
		endTime := types.TimeString(*r.EndTime)
		req.EndTime = &endTime
	}
	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createRegistration.Response) *RegistrationResponse {
	return &RegistrationResponse{
		FirstName: resp.FirstName,
		LastName:  resp.LastName,
		Level:     string(resp.Level),
		Day:       resp.Day,
		TimeSlot:  resp.TimeSlot.String(),
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		Session:   getScheduleHandler.FromDomainSession(&resp.Session),
	}
}
