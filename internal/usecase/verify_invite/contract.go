package verify_invite

import (
	"context"
	"time"

	"github.com/m04kA/UKC-FacilityService/internal/domain"
)

// InviteRepository интерфейс репозитория приглашений
type InviteRepository interface {
	GetByPassCode(ctx context.Context, passCode string) (*domain.Invite, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
