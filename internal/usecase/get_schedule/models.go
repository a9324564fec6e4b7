package get_schedule

import (
	"github.com/m04kA/SMC-TennisBooking/internal/domain"
	"github.com/m04kA/SMC-TennisBooking/pkg/types"
)

// Response модель недельной сетки
type Response struct {
	Days      []string                // Дни в порядке отображения
	TimeSlots []types.TimeString      // Слоты в порядке отображения
	Sessions  [][]domain.SessionStats // Sessions[день][слот]
	Total     int                     // Всего записей в таблице
}
