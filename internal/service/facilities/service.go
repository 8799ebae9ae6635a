package facilities

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/UKC-FacilityService/internal/domain"
	facilityRepo "github.com/m04kA/UKC-FacilityService/internal/infra/storage/facility"
)

// Service сервис справочника объектов
type Service struct {
	facilityRepo FacilityRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса объектов
func NewService(facilityRepo FacilityRepository, logger Logger) *Service {
	return &Service{
		facilityRepo: facilityRepo,
		logger:       logger,
	}
}

// List возвращает все объекты, доступные для бронирования
func (s *Service) List(ctx context.Context) ([]*domain.Facility, error) {
	facilities, err := s.facilityRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d facilities", len(facilities))
	return facilities, nil
}

// GetByID возвращает объект по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Facility, error) {
	f, err := s.facilityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("GetByID: facility id=%d not found", id)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("GetByID: repository error for facility id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return f, nil
}
