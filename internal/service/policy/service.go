package policy

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/UKC-FacilityService/internal/domain"
	facilityRepo "github.com/m04kA/UKC-FacilityService/internal/infra/storage/facility"
	policyRepo "github.com/m04kA/UKC-FacilityService/internal/infra/storage/policy"
	identityClient "github.com/m04kA/UKC-FacilityService/internal/integrations/identityservice"
	"github.com/m04kA/UKC-FacilityService/internal/service/policy/models"
)

// Service сервис политик бронирования объектов
type Service struct {
	policyRepo     PolicyRepository
	facilityRepo   FacilityRepository
	identityClient IdentityClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса политик
func NewService(
	policyRepo PolicyRepository,
	facilityRepo FacilityRepository,
	identityClient IdentityClient,
	logger Logger,
) *Service {
	return &Service{
		policyRepo:     policyRepo,
		facilityRepo:   facilityRepo,
		identityClient: identityClient,
		logger:         logger,
	}
}

// GetEffective возвращает действующую политику объекта:
// явно заданную либо политику по умолчанию
func (s *Service) GetEffective(ctx context.Context, facilityID int64) (*models.PolicyResponse, error) {
	if _, err := s.facilityRepo.GetByID(ctx, facilityID); err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("GetEffective: facility id=%d not found", facilityID)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("GetEffective: failed to get facility id=%d: %v", facilityID, err)
		return nil, fmt.Errorf("%w: GetEffective - failed to get facility: %v", ErrInternal, err)
	}

	p, err := s.policyRepo.GetByFacility(ctx, facilityID)
	if err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			s.logger.Info("GetEffective: using default policy for facility id=%d", facilityID)
			return models.FromDomainPolicy(domain.DefaultPolicy(facilityID), true), nil
		}
		s.logger.Error("GetEffective: repository error for facility id=%d: %v", facilityID, err)
		return nil, fmt.Errorf("%w: GetEffective - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPolicy(p, false), nil
}

// Update обновляет политику объекта. Доступно только администраторам.
func (s *Service) Update(ctx context.Context, facilityID int64, req *models.UpdatePolicyRequest) (*models.PolicyResponse, error) {
	s.logger.Info("Update: updating policy for facility id=%d by user=%d", facilityID, req.UserID)

	if err := s.checkAdmin(ctx, req.UserID); err != nil {
		s.logger.Warn("Update: access denied for user=%d", req.UserID)
		return nil, err
	}

	if _, err := s.facilityRepo.GetByID(ctx, facilityID); err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("Update: facility id=%d not found", facilityID)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("Update: failed to get facility id=%d: %v", facilityID, err)
		return nil, fmt.Errorf("%w: Update - failed to get facility: %v", ErrInternal, err)
	}

	p := &domain.FacilityPolicy{
		FacilityID:       facilityID,
		OpenHour:         req.OpenHour,
		CloseHour:        req.CloseHour,
		AdvanceDays:      req.AdvanceDays,
		MinNoticeMinutes: req.MinNoticeMinutes,
	}

	if err := p.Validate(); err != nil {
		s.logger.Warn("Update: invalid policy for facility id=%d: %v", facilityID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
	}

	updated, err := s.policyRepo.Upsert(ctx, p)
	if err != nil {
		s.logger.Error("Update: repository error for facility id=%d: %v", facilityID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated policy for facility id=%d", facilityID)
	return models.FromDomainPolicy(updated, false), nil
}

// checkAdmin проверяет, что пользователь - администратор
func (s *Service) checkAdmin(ctx context.Context, userID int64) error {
	profile, err := s.identityClient.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, identityClient.ErrProfileNotFound) {
			return ErrAccessDenied
		}
		s.logger.Error("checkAdmin: failed to get profile for user=%d: %v", userID, err)
		return fmt.Errorf("%w: checkAdmin - failed to get profile: %v", ErrInternal, err)
	}

	if !profile.IsAdmin() {
		return ErrAccessDenied
	}

	return nil
}
