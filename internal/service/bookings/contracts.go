package bookings

import (
	"context"

	"github.com/m04kA/UKC-FacilityService/internal/domain"
	"github.com/m04kA/UKC-FacilityService/internal/infra/notify"
	"github.com/m04kA/UKC-FacilityService/internal/integrations/identityservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64) ([]*domain.BookingWithFacility, error)
	Delete(ctx context.Context, id int64) error
}

// IdentityClient интерфейс клиента identity-сервиса
type IdentityClient interface {
	GetProfile(ctx context.Context, userID int64) (*identityservice.Profile, error)
}

// EventPublisher интерфейс публикации событий об изменении бронирований
type EventPublisher interface {
	Publish(ctx context.Context, event notify.Event) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
