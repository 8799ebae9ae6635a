package get_week_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/UKC-FacilityService/internal/domain"
	facilityRepo "github.com/m04kA/UKC-FacilityService/internal/infra/storage/facility"
	policyRepo "github.com/m04kA/UKC-FacilityService/internal/infra/storage/policy"
	"github.com/m04kA/UKC-FacilityService/pkg/ptr"
)

// Usecase построение недельной сетки доступности объекта.
//
// Сетка - производная модель: одна выборка бронирований окна, индекс
// занятости поверх неё и детерминированная раскладка DaysPerWeek x SlotsPerDay.
// Повторный вызов с теми же данными даёт идентичную сетку.
type Usecase struct {
	bookings       BookingRepository
	facilities     FacilityRepository
	policies       PolicyRepository
	identityClient IdentityClient
	timeProvider   TimeProvider
	logger         Logger
}

// NewUsecase создает новый экземпляр usecase недельной сетки
func NewUsecase(
	bookings BookingRepository,
	facilities FacilityRepository,
	policies PolicyRepository,
	identityClient IdentityClient,
	timeProvider TimeProvider,
	logger Logger,
) *Usecase {
	return &Usecase{
		bookings:       bookings,
		facilities:     facilities,
		policies:       policies,
		identityClient: identityClient,
		timeProvider:   timeProvider,
		logger:         logger,
	}
}

// Execute возвращает сетку доступности на неделю от якорной даты
func (u *Usecase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	anchor := u.timeProvider.Now()
	if req.WeekStart != nil {
		anchor = *req.WeekStart
	}
	window := domain.NewWeekWindow(anchor)

	facility, err := u.facilities.GetByID(ctx, req.FacilityID)
	if err != nil {
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

	bookings, err := u.bookings.GetByFacilityBetween(ctx, domain.FacilityBookingsFilter{
		FacilityID: req.FacilityID,
		StartDate:  ptr.Ptr(window.Anchor()),
		EndDate:    ptr.Ptr(window.End()),
	})
	if err != nil {
		u.logger.Error("Execute: failed to get bookings for facility=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	index := domain.BuildSlotIndex(req.FacilityID, bookings)
	starts := policy.SlotStartTimes()
	names := make(map[int64]string)

	days := make([]DaySchedule, 0, domain.DaysPerWeek)
	for _, date := range window.Dates() {
		slots := make([]Slot, 0, len(starts))
		for _, start := range starts {
			key := domain.NewSlotKey(req.FacilityID, date, start)
			slot := Slot{
				StartTime: start,
				State:     index.StateFor(key, req.UserID),
			}
			if booking, ok := index.Lookup(key); ok {
				slot.BookingID = booking.ID
				slot.HolderName = u.holderName(ctx, names, booking.UserID)
			}
			slots = append(slots, slot)
		}
		days = append(days, DaySchedule{Date: date, Slots: slots})
	}

	return &Response{
		FacilityID:   facility.ID,
		FacilityName: facility.Name,
		WeekStart:    window.Anchor(),
		WeekEnd:      window.End(),
		Days:         days,
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

// holderName возвращает имя жильца, занявшего слот. Профили кешируются
// в рамках одного построения сетки; при недоступности identity-сервиса
// имя остаётся пустым, сетка отдается без подписей.
func (u *Usecase) holderName(ctx context.Context, cache map[int64]string, userID int64) string {
	if name, ok := cache[userID]; ok {
		return name
	}

	name := ""
	profile, err := u.identityClient.GetProfileWithGracefulDegradation(ctx, userID)
	if err == nil {
		name = profile.FullName
	}
	cache[userID] = name
	return name
}
