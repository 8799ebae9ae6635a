package list_facilities

import (
	"context"

	"github.com/m04kA/UKC-FacilityService/internal/domain"
)

type FacilityService interface {
	List(ctx context.Context) ([]*domain.Facility, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
