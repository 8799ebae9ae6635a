package create_invite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/UKC-FacilityService/internal/domain"
)

// qrPayloadPrefix схема payload для QR-кода пропуска
const qrPayloadPrefix = "ukc-pass:"

// Usecase создание гостевого приглашения с кодом пропуска
type Usecase struct {
	invites      InviteRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUsecase создает новый экземпляр usecase приглашений
func NewUsecase(invites InviteRepository, timeProvider TimeProvider, logger Logger) *Usecase {
	return &Usecase{
		invites:      invites,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute создает приглашение и возвращает код пропуска
func (u *Usecase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req, u.timeProvider.Now()); err != nil {
		return nil, err
	}

	inv := &domain.Invite{
		HostUserID:  req.HostUserID,
		VisitorName: strings.TrimSpace(req.VisitorName),
		VisitDate:   truncateToDay(req.VisitDate),
		PassCode:    uuid.NewString(),
	}

	created, err := u.invites.Create(ctx, inv)
	if err != nil {
		u.logger.Error("Execute: failed to create invite for host=%d: %v", req.HostUserID, err)
		return nil, fmt.Errorf("%w: failed to create invite: %v", ErrInternal, err)
	}

	u.logger.Info("Execute: created invite id=%d host=%d date=%s",
		created.ID, created.HostUserID, created.VisitDate.Format(domain.DateFormat))

	return &Response{
		ID:          created.ID,
		HostUserID:  created.HostUserID,
		VisitorName: created.VisitorName,
		VisitDate:   created.VisitDate,
		PassCode:    created.PassCode,
		QRPayload:   qrPayloadPrefix + created.PassCode,
		CreatedAt:   created.CreatedAt,
	}, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
