package registrations

import (
	"context"
	"errors"
	"fmt"

	registrationStore "github.com/m04kA/SMC-TennisBooking/internal/infra/storage/registration"
	"github.com/m04kA/SMC-TennisBooking/internal/service/registrations/models"
)

// Service сервис администрирования записей
type Service struct {
	store  RegistrationStore
	logger Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(store RegistrationStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// List возвращает записи в порядке хранения вместе с позициями строк
// Читает через кэш; при недоступности хранилища список пуст
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.RegistrationListResponse, error) {
	table := s.store.ReadAll(ctx)

	resp := &models.RegistrationListResponse{
		Registrations: make([]models.RegistrationResponse, 0, table.Len()),
		Strategy:      string(table.Strategy),
	}

	for i := range table.Registrations {
		reg := &table.Registrations[i]
		if !req.Matches(reg) {
			continue
		}
		resp.Registrations = append(resp.Registrations, models.FromDomainRegistration(reg, table.PositionOf(i)))
	}

	s.logger.Info("List: returned %d of %d registrations", len(resp.Registrations), table.Len())
	return resp, nil
}

// Delete удаляет строку таблицы по позиции (с 1, заголовок учитывается)
func (s *Service) Delete(ctx context.Context, position int) error {
	s.logger.Info("Delete: deleting registration at position=%d", position)

	if position <= 0 {
		s.logger.Warn("Delete: invalid position=%d", position)
		return fmt.Errorf("%w: position must be positive", ErrInvalidInput)
	}

	if err := s.store.DeleteAt(ctx, position); err != nil {
		if errors.Is(err, registrationStore.ErrPositionOutOfRange) {
			s.logger.Warn("Delete: position=%d out of range", position)
			return ErrNotFound
		}
		s.logger.Error("Delete: store error for position=%d: %v", position, err)
		return fmt.Errorf("%w: Delete - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted registration at position=%d", position)
	return nil
}
