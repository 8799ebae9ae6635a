package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/UKC-FacilityService/internal/domain"
	facilityRepo "github.com/m04kA/UKC-FacilityService/internal/infra/storage/facility"
	policyRepo "github.com/m04kA/UKC-FacilityService/internal/infra/storage/policy"
	"github.com/m04kA/UKC-FacilityService/internal/integrations/identityservice"
	"github.com/m04kA/UKC-FacilityService/internal/service/policy/models"
)

// Mock структуры

type MockPolicyRepository struct {
	mock.Mock
}

func (m *MockPolicyRepository) GetByFacility(ctx context.Context, facilityID int64) (*domain.FacilityPolicy, error) {
	args := m.Called(ctx, facilityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FacilityPolicy), args.Error(1)
}

func (m *MockPolicyRepository) Upsert(ctx context.Context, p *domain.FacilityPolicy) (*domain.FacilityPolicy, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FacilityPolicy), args.Error(1)
}

type MockFacilityRepository struct {
	mock.Mock
}

func (m *MockFacilityRepository) GetByID(ctx context.Context, id int64) (*domain.Facility, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Facility), args.Error(1)
}

type MockIdentityClient struct {
	mock.Mock
}

func (m *MockIdentityClient) GetProfile(ctx context.Context, userID int64) (*identityservice.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identityservice.Profile), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// Хелперы

type testEnv struct {
	policies   *MockPolicyRepository
	facilities *MockFacilityRepository
	identity   *MockIdentityClient
	service    *Service
}

func newTestEnv() *testEnv {
	env := &testEnv{
		policies:   new(MockPolicyRepository),
		facilities: new(MockFacilityRepository),
		identity:   new(MockIdentityClient),
	}
	env.service = NewService(env.policies, env.facilities, env.identity, nopLogger{})
	return env
}

// Тесты

func TestService_GetEffective(t *testing.T) {
	t.Run("явно заданная политика", func(t *testing.T) {
		env := newTestEnv()
		env.facilities.On("GetByID", mock.Anything, int64(10)).
			Return(&domain.Facility{ID: 10}, nil)
		env.policies.On("GetByFacility", mock.Anything, int64(10)).
			Return(&domain.FacilityPolicy{FacilityID: 10, OpenHour: 9, CloseHour: 21}, nil)

		resp, err := env.service.GetEffective(context.Background(), 10)

		assert.NoError(t, err)
		assert.False(t, resp.IsDefault)
		assert.Equal(t, 9, resp.OpenHour)
	})

	t.Run("политика по умолчанию при отсутствии явной", func(t *testing.T) {
		env := newTestEnv()
		env.facilities.On("GetByID", mock.Anything, int64(10)).
			Return(&domain.Facility{ID: 10}, nil)
		env.policies.On("GetByFacility", mock.Anything, int64(10)).
			Return(nil, policyRepo.ErrPolicyNotFound)

		resp, err := env.service.GetEffective(context.Background(), 10)

		assert.NoError(t, err)
		assert.True(t, resp.IsDefault)
		assert.Equal(t, domain.DefaultOpenHour, resp.OpenHour)
		assert.Equal(t, domain.DefaultCloseHour, resp.CloseHour)
	})

	t.Run("объект не найден", func(t *testing.T) {
		env := newTestEnv()
		env.facilities.On("GetByID", mock.Anything, int64(99)).
			Return(nil, facilityRepo.ErrFacilityNotFound)

		_, err := env.service.GetEffective(context.Background(), 99)

		assert.ErrorIs(t, err, ErrFacilityNotFound)
	})
}

func TestService_Update(t *testing.T) {
	validReq := func() *models.UpdatePolicyRequest {
		return &models.UpdatePolicyRequest{
			UserID:           500,
			OpenHour:         8,
			CloseHour:        22,
			AdvanceDays:      14,
			MinNoticeMinutes: 60,
		}
	}

	t.Run("администратор обновляет политику", func(t *testing.T) {
		env := newTestEnv()
		env.identity.On("GetProfile", mock.Anything, int64(500)).
			Return(&identityservice.Profile{ID: 500, Role: identityservice.RoleAdmin}, nil)
		env.facilities.On("GetByID", mock.Anything, int64(10)).
			Return(&domain.Facility{ID: 10}, nil)
		env.policies.On("Upsert", mock.Anything, mock.MatchedBy(func(p *domain.FacilityPolicy) bool {
			return p.FacilityID == 10 && p.OpenHour == 8 && p.CloseHour == 22
		})).Return(&domain.FacilityPolicy{FacilityID: 10, OpenHour: 8, CloseHour: 22}, nil)

		resp, err := env.service.Update(context.Background(), 10, validReq())

		assert.NoError(t, err)
		assert.Equal(t, 8, resp.OpenHour)
	})

	t.Run("жильцу запрещено", func(t *testing.T) {
		env := newTestEnv()
		env.identity.On("GetProfile", mock.Anything, int64(500)).
			Return(&identityservice.Profile{ID: 500, Role: identityservice.RoleResident}, nil)

		_, err := env.service.Update(context.Background(), 10, validReq())

		assert.ErrorIs(t, err, ErrAccessDenied)
		env.policies.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("несогласованная политика отклоняется", func(t *testing.T) {
		env := newTestEnv()
		env.identity.On("GetProfile", mock.Anything, int64(500)).
			Return(&identityservice.Profile{ID: 500, Role: identityservice.RoleAdmin}, nil)
		env.facilities.On("GetByID", mock.Anything, int64(10)).
			Return(&domain.Facility{ID: 10}, nil)

		req := validReq()
		req.OpenHour = 22
		req.CloseHour = 8

		_, err := env.service.Update(context.Background(), 10, req)

		assert.ErrorIs(t, err, ErrInvalidPolicy)
		env.policies.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}
