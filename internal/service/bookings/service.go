package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/UKC-FacilityService/internal/infra/storage/booking"
	"github.com/m04kA/UKC-FacilityService/internal/infra/notify"
	identityClient "github.com/m04kA/UKC-FacilityService/internal/integrations/identityservice"
	"github.com/m04kA/UKC-FacilityService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями: чтение и отмена.
// Создание вынесено в отдельный usecase из-за транзакционной предпроверки слота.
type Service struct {
	bookingRepo    BookingRepository
	identityClient IdentityClient
	publisher      EventPublisher
	logger         Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	identityClient IdentityClient,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:    bookingRepo,
		identityClient: identityClient,
		publisher:      publisher,
		logger:         logger,
	}
}

// GetByID получает бронирование по ID.
// Доступно владельцу бронирования и администратору.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkOwnerOrAdmin(ctx, booking.UserID, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает список бронирований пользователя с названиями
// объектов, отсортированный по дате и времени начала
func (s *Service) GetUserBookings(ctx context.Context, userID int64) (*models.UserBookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d", userID)

	items, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(items), userID)
	return models.FromDomainUserBookings(items), nil
}

// Cancel отменяет бронирование: физическое удаление строки.
// Пользователь может отменить только своё бронирование;
// администратор - любое (модерация).
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if err := s.checkOwnerOrAdmin(ctx, booking.UserID, req.UserID); err != nil {
		s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
		return err
	}

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during deletion", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Уведомляем подписчиков; ошибка публикации не отменяет удаление,
	// клиенты увидят изменение при следующей перезагрузке
	event := notify.Event{
		Op:         notify.OpCancelled,
		FacilityID: booking.FacilityID,
		BookingID:  booking.ID,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Cancel: failed to publish event for booking id=%d: %v", bookingID, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// checkOwnerOrAdmin проверяет, что действующий пользователь - владелец
// бронирования или администратор
func (s *Service) checkOwnerOrAdmin(ctx context.Context, ownerID, userID int64) error {
	if ownerID == userID {
		return nil
	}

	profile, err := s.identityClient.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, identityClient.ErrProfileNotFound) {
			return ErrAccessDenied
		}
		s.logger.Error("checkOwnerOrAdmin: failed to get profile for user=%d: %v", userID, err)
		return fmt.Errorf("%w: checkOwnerOrAdmin - failed to get profile: %v", ErrInternal, err)
	}

	if !profile.IsAdmin() {
		return ErrAccessDenied
	}

	s.logger.Info("checkOwnerOrAdmin: user=%d acts as admin", userID)
	return nil
}
