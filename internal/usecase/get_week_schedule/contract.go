package get_week_schedule

import (
	"context"
	"time"

	"github.com/m04kA/UKC-FacilityService/internal/domain"
	"github.com/m04kA/UKC-FacilityService/internal/integrations/identityservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByFacilityBetween(ctx context.Context, filter domain.FacilityBookingsFilter) ([]*domain.Booking, error)
}

// FacilityRepository интерфейс репозитория объектов
type FacilityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
}

// PolicyRepository интерфейс репозитория политик
type PolicyRepository interface {
	GetByFacility(ctx context.Context, facilityID int64) (*domain.FacilityPolicy, error)
}

// IdentityClient интерфейс клиента identity-сервиса
type IdentityClient interface {
	GetProfileWithGracefulDegradation(ctx context.Context, userID int64) (*identityservice.Profile, error)
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
