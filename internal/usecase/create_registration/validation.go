package create_registration

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-TennisBooking/internal/domain"
	"github.com/m04kA/SMC-TennisBooking/pkg/types"
)

var validate = validator.New()

// normalizeRequest убирает пробелы вокруг имени и фамилии
func normalizeRequest(req *Request) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Day = strings.TrimSpace(req.Day)
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, schedule domain.Schedule) error {
	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("%w: field %s failed on '%s'", ErrValidationFailed, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	// Валидируем формат времени и приводим к HH:MM
	slot, err := types.NewTimeStringFromString(req.TimeSlot.String())
	if err != nil {
		return fmt.Errorf("%w: invalid timeSlot format: %v", ErrValidationFailed, err)
	}
	req.TimeSlot = slot

	if !schedule.HasDay(req.Day) {
		return fmt.Errorf("%w: unknown day %q", ErrValidationFailed, req.Day)
	}

	if !schedule.HasTimeSlot(req.TimeSlot) {
		return fmt.Errorf("%w: time slot %s is not offered", ErrValidationFailed, req.TimeSlot)
	}

	if req.EndTime != nil {
		if err := validateEndTime(req); err != nil {
			return err
		}
	}

	return nil
}

// validateEndTime проверяет, что конец занятия позже начала
func validateEndTime(req *Request) error {
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrValidationFailed, err)
	}
	if !req.EndTime.IsAfter(req.TimeSlot) {
		return fmt.Errorf("%w: endTime %s must be after timeSlot %s", ErrValidationFailed, *req.EndTime, req.TimeSlot)
	}
	return nil
}
