package availability

import (
	"fmt"

	"github.com/m04kA/SMC-TennisBooking/pkg/types"
)

// GenerateTimeSlots генерирует слоты от start (включительно) до end (не включительно) с шагом step минут
// Слот, который начинается в end или позже, не создаётся
func GenerateTimeSlots(start, end types.TimeString, stepMinutes int) ([]types.TimeString, error) {
	if stepMinutes <= 0 {
		return nil, fmt.Errorf("slot step must be positive, got %d", stepMinutes)
	}
	if err := start.Validate(); err != nil {
		return nil, err
	}
	if err := end.Validate(); err != nil {
		return nil, err
	}
	if !start.IsBefore(end) {
		return nil, fmt.Errorf("slot start %s must be before end %s", start, end)
	}

	slots := make([]types.TimeString, 0)
	current := start
	for current.IsBefore(end) {
		slots = append(slots, current)

		next, err := current.AddMinutes(stepMinutes)
		if err != nil {
			// Следующий слот вышел за пределы суток
			break
		}
		current = next
	}

	return slots, nil
}
