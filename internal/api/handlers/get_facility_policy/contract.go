package get_facility_policy

import (
	"context"

	"github.com/m04kA/UKC-FacilityService/internal/service/policy/models"
)

type PolicyService interface {
	GetEffective(ctx context.Context, facilityID int64) (*models.PolicyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
