package verify_invite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	inviteRepo "github.com/m04kA/UKC-FacilityService/internal/infra/storage/invite"
)

// Usecase проверка гостевого пропуска на проходной.
// Код пропуска - UUID из QR; сам код является правом доступа,
// дополнительной аутентификации проверка не требует.
type Usecase struct {
	invites      InviteRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUsecase создает новый экземпляр usecase проверки пропусков
func NewUsecase(invites InviteRepository, timeProvider TimeProvider, logger Logger) *Usecase {
	return &Usecase{
		invites:      invites,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute проверяет код пропуска и возвращает данные приглашения
func (u *Usecase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.PassCode == "" {
		return nil, fmt.Errorf("%w: pass code is required", ErrInvalidInput)
	}
	if _, err := uuid.Parse(req.PassCode); err != nil {
		// Не-UUID отсекаем без похода в БД
		return nil, fmt.Errorf("%w: malformed pass code", ErrInvalidInput)
	}

	inv, err := u.invites.GetByPassCode(ctx, req.PassCode)
	if err != nil {
		if errors.Is(err, inviteRepo.ErrInviteNotFound) {
			u.logger.Warn("Execute: unknown pass code presented")
			return nil, ErrInviteNotFound
		}
		u.logger.Error("Execute: failed to get invite by pass code: %v", err)
		return nil, fmt.Errorf("%w: failed to get invite: %v", ErrInternal, err)
	}

	now := u.timeProvider.Now()
	validToday := sameCalendarDay(inv.VisitDate, now)

	u.logger.Info("Execute: verified invite id=%d host=%d valid_today=%t", inv.ID, inv.HostUserID, validToday)

	return &Response{
		ID:          inv.ID,
		HostUserID:  inv.HostUserID,
		VisitorName: inv.VisitorName,
		VisitDate:   inv.VisitDate,
		ValidToday:  validToday,
	}, nil
}

// sameCalendarDay сравнивает календарные дни в локации текущего времени.
// Дата визита хранится как DATE и сканируется как полночь UTC,
// поэтому обе стороны приводятся к одной локации.
func sameCalendarDay(visitDate, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	d := time.Date(visitDate.Year(), visitDate.Month(), visitDate.Day(), 0, 0, 0, 0, now.Location())
	return d.Equal(today)
}
