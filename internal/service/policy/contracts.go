package policy

import (
	"context"

	"github.com/m04kA/UKC-FacilityService/internal/domain"
	"github.com/m04kA/UKC-FacilityService/internal/integrations/identityservice"
)

// PolicyRepository интерфейс репозитория политик
type PolicyRepository interface {
	GetByFacility(ctx context.Context, facilityID int64) (*domain.FacilityPolicy, error)
	Upsert(ctx context.Context, p *domain.FacilityPolicy) (*domain.FacilityPolicy, error)
}

// FacilityRepository интерфейс репозитория объектов
type FacilityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
}

// IdentityClient интерфейс клиента identity-сервиса
type IdentityClient interface {
	GetProfile(ctx context.Context, userID int64) (*identityservice.Profile, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
