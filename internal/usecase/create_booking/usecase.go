package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/UKC-FacilityService/internal/domain"
	"github.com/m04kA/UKC-FacilityService/internal/infra/notify"
	bookingRepo "github.com/m04kA/UKC-FacilityService/internal/infra/storage/booking"
	facilityRepo "github.com/m04kA/UKC-FacilityService/internal/infra/storage/facility"
	policyRepo "github.com/m04kA/UKC-FacilityService/internal/infra/storage/policy"
	"github.com/m04kA/UKC-FacilityService/pkg/ptr"
)

// Usecase создание бронирования слота.
//
// Последовательность:
//  1. Локальная валидация запроса и даты, без обращений к хранилищу.
//  2. Проверка объекта и его политики (часы работы, глубина, notice).
//  3. Serializable-транзакция: снимок занятости дня с блокировкой строк,
//     предпроверка слота по индексу, вставка.
//  4. Публикация события об изменении (после коммита, best-effort).
//
// Предпроверка внутри транзакции - оптимизация UX, а не гарантия:
// авторитетен UNIQUE-констрейнт, проигрыш гонки на нём тоже даёт ErrSlotTaken.
type Usecase struct {
	bookings     BookingRepository
	facilities   FacilityRepository
	policies     PolicyRepository
	publisher    EventPublisher
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUsecase создает новый экземпляр usecase создания бронирования
func NewUsecase(
	bookings BookingRepository,
	facilities FacilityRepository,
	policies PolicyRepository,
	publisher EventPublisher,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *Usecase {
	return &Usecase{
		bookings:     bookings,
		facilities:   facilities,
		policies:     policies,
		publisher:    publisher,
		txManager:    txManager,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute создает бронирование слота
func (u *Usecase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	now := u.timeProvider.Now()
	if err := validateDateNotPast(req.Date, now); err != nil {
		return nil, err
	}

	if _, err := u.facilities.GetByID(ctx, req.FacilityID); err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			u.logger.Warn("Execute: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		u.logger.Error("Execute: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	policy, err := u.effectivePolicy(ctx, req.FacilityID)
	if err != nil {
		return nil, err
	}

	if !policy.AllowsStart(req.StartTime) {
		return nil, ErrInvalidTimeSlot
	}
	if err := validateAdvance(req.Date, now, policy); err != nil {
		return nil, err
	}
	if err := validateNotice(req, now, policy); err != nil {
		return nil, err
	}

	var created *domain.Booking
	err = u.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		day := u.bookingDay(req)
		existing, err := u.bookings.GetByFacilityBetween(ctx, domain.FacilityBookingsFilter{
			FacilityID: req.FacilityID,
			StartDate:  ptr.Ptr(day),
			EndDate:    ptr.Ptr(day),
		})
		if err != nil {
			return fmt.Errorf("failed to load day snapshot: %w", err)
		}

		index := domain.BuildSlotIndex(req.FacilityID, existing)
		key := domain.NewSlotKey(req.FacilityID, req.Date, req.StartTime)
		if _, taken := index.Lookup(key); taken {
			return ErrSlotTaken
		}

		created, err = u.bookings.Create(ctx, &domain.Booking{
			FacilityID:  req.FacilityID,
			UserID:      req.UserID,
			BookingDate: day,
			StartTime:   req.StartTime,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return ErrSlotTaken
			}
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotTaken) {
			u.logger.Info("Execute: slot taken facility=%d date=%s time=%s",
				req.FacilityID, req.Date.Format(domain.DateFormat), req.StartTime)
			return nil, ErrSlotTaken
		}
		u.logger.Error("Execute: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	u.publishCreated(ctx, created)

	u.logger.Info("Execute: created booking id=%d facility=%d user=%d date=%s time=%s",
		created.ID, created.FacilityID, created.UserID,
		created.BookingDate.Format(domain.DateFormat), created.StartTime)

	return &Response{
		ID:          created.ID,
		FacilityID:  created.FacilityID,
		UserID:      created.UserID,
		BookingDate: created.BookingDate,
		StartTime:   created.StartTime,
		CreatedAt:   created.CreatedAt,
	}, nil
}

// effectivePolicy возвращает политику объекта или политику по умолчанию
func (u *Usecase) effectivePolicy(ctx context.Context, facilityID int64) (*domain.FacilityPolicy, error) {
	policy, err := u.policies.GetByFacility(ctx, facilityID)
	if err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			return domain.DefaultPolicy(facilityID), nil
		}
		u.logger.Error("effectivePolicy: failed to get policy for facility=%d: %v", facilityID, err)
		return nil, fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
	}
	return policy, nil
}

// bookingDay нормализует дату бронирования до календарного дня
func (u *Usecase) bookingDay(req *Request) time.Time {
	return time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, time.UTC)
}

// publishCreated публикует событие о новом бронировании.
// Ошибка публикации не откатывает бронирование, подписчики
// переживут пропуск события очередным полным обновлением сетки.
func (u *Usecase) publishCreated(ctx context.Context, b *domain.Booking) {
	event := notify.Event{
		Op:         notify.OpCreated,
		FacilityID: b.FacilityID,
		BookingID:  b.ID,
	}
	if err := u.publisher.Publish(ctx, event); err != nil {
		u.logger.Warn("publishCreated: failed to publish event for booking=%d: %v", b.ID, err)
	}
}
