package get_week_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/UKC-FacilityService/internal/domain"
	policyRepo "github.com/m04kA/UKC-FacilityService/internal/infra/storage/policy"
	"github.com/m04kA/UKC-FacilityService/internal/integrations/identityservice"
)

// Mock структуры

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByFacilityBetween(ctx context.Context, filter domain.FacilityBookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
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

type MockIdentityClient struct {
	mock.Mock
}

func (m *MockIdentityClient) GetProfileWithGracefulDegradation(ctx context.Context, userID int64) (*identityservice.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identityservice.Profile), args.Error(1)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// Хелперы

type testEnv struct {
	bookings   *MockBookingRepository
	facilities *MockFacilityRepository
	policies   *MockPolicyRepository
	identity   *MockIdentityClient
	usecase    *Usecase
}

var testNow = time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

func newTestEnv() *testEnv {
	env := &testEnv{
		bookings:   new(MockBookingRepository),
		facilities: new(MockFacilityRepository),
		policies:   new(MockPolicyRepository),
		identity:   new(MockIdentityClient),
	}
	env.usecase = NewUsecase(
		env.bookings,
		env.facilities,
		env.policies,
		env.identity,
		&fixedTimeProvider{now: testNow},
		nopLogger{},
	)
	return env
}

// Тесты

func TestUsecase_Execute_FullGrid(t *testing.T) {
	env := newTestEnv()
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	env.facilities.On("GetByID", mock.Anything, int64(10)).
		Return(&domain.Facility{ID: 10, Name: "Спортзал"}, nil)
	env.policies.On("GetByFacility", mock.Anything, int64(10)).
		Return(nil, policyRepo.ErrPolicyNotFound)
	env.bookings.On("GetByFacilityBetween", mock.Anything, mock.MatchedBy(func(f domain.FacilityBookingsFilter) bool {
		return f.FacilityID == 10 && f.StartDate.Equal(day) && f.EndDate.Equal(day.AddDate(0, 0, 6))
	})).Return([]*domain.Booking{
		{ID: 1, FacilityID: 10, UserID: 100, BookingDate: day, StartTime: "10:00"},
		{ID: 2, FacilityID: 10, UserID: 200, BookingDate: day, StartTime: "11:00"},
	}, nil)
	env.identity.On("GetProfileWithGracefulDegradation", mock.Anything, int64(100)).
		Return(&identityservice.Profile{ID: 100, FullName: "Анна Смирнова"}, nil)
	env.identity.On("GetProfileWithGracefulDegradation", mock.Anything, int64(200)).
		Return(&identityservice.Profile{ID: 200, FullName: "Иван Петров"}, nil)

	resp, err := env.usecase.Execute(context.Background(), &Request{UserID: 100, FacilityID: 10})

	assert.NoError(t, err)
	assert.Equal(t, "Спортзал", resp.FacilityName)
	assert.Equal(t, day, resp.WeekStart)
	assert.Len(t, resp.Days, domain.DaysPerWeek)

	// Политика по умолчанию: 18 часовых слотов с 06:00
	for _, d := range resp.Days {
		assert.Len(t, d.Slots, 18)
	}

	first := resp.Days[0]
	assert.Equal(t, day, first.Date)

	// 06:00 свободен, 10:00 мой, 11:00 занят другим жильцом
	assert.Equal(t, domain.SlotFree, first.Slots[0].State)
	assert.Equal(t, domain.SlotMine, first.Slots[4].State)
	assert.Equal(t, int64(1), first.Slots[4].BookingID)
	assert.Equal(t, domain.SlotTaken, first.Slots[5].State)
	assert.Equal(t, "Иван Петров", first.Slots[5].HolderName)

	// Имя запрашивается один раз на пользователя за построение
	env.identity.AssertNumberOfCalls(t, "GetProfileWithGracefulDegradation", 2)
}

func TestUsecase_Execute_ExplicitWeekStart(t *testing.T) {
	env := newTestEnv()
	anchor := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	env.facilities.On("GetByID", mock.Anything, int64(10)).
		Return(&domain.Facility{ID: 10, Name: "Корт"}, nil)
	env.policies.On("GetByFacility", mock.Anything, int64(10)).
		Return(nil, policyRepo.ErrPolicyNotFound)
	env.bookings.On("GetByFacilityBetween", mock.Anything, mock.Anything).
		Return([]*domain.Booking{}, nil)

	resp, err := env.usecase.Execute(context.Background(), &Request{
		UserID:     100,
		FacilityID: 10,
		WeekStart:  &anchor,
	})

	assert.NoError(t, err)
	assert.Equal(t, anchor, resp.WeekStart)
	assert.Equal(t, anchor.AddDate(0, 0, 6), resp.WeekEnd)
}

func TestUsecase_Execute_CustomPolicyShrinksGrid(t *testing.T) {
	env := newTestEnv()

	env.facilities.On("GetByID", mock.Anything, int64(10)).
		Return(&domain.Facility{ID: 10}, nil)
	env.policies.On("GetByFacility", mock.Anything, int64(10)).
		Return(&domain.FacilityPolicy{FacilityID: 10, OpenHour: 9, CloseHour: 12}, nil)
	env.bookings.On("GetByFacilityBetween", mock.Anything, mock.Anything).
		Return([]*domain.Booking{}, nil)

	resp, err := env.usecase.Execute(context.Background(), &Request{UserID: 100, FacilityID: 10})

	assert.NoError(t, err)
	for _, d := range resp.Days {
		assert.Len(t, d.Slots, 3)
		assert.Equal(t, "09:00", d.Slots[0].StartTime.String())
	}
}

func TestUsecase_Execute_DegradedIdentityLeavesNamesEmpty(t *testing.T) {
	env := newTestEnv()
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	env.facilities.On("GetByID", mock.Anything, int64(10)).
		Return(&domain.Facility{ID: 10}, nil)
	env.policies.On("GetByFacility", mock.Anything, int64(10)).
		Return(nil, policyRepo.ErrPolicyNotFound)
	env.bookings.On("GetByFacilityBetween", mock.Anything, mock.Anything).
		Return([]*domain.Booking{
			{ID: 1, FacilityID: 10, UserID: 200, BookingDate: day, StartTime: "10:00"},
		}, nil)
	env.identity.On("GetProfileWithGracefulDegradation", mock.Anything, int64(200)).
		Return(nil, identityservice.ErrServiceDegraded)

	resp, err := env.usecase.Execute(context.Background(), &Request{UserID: 100, FacilityID: 10})

	// Сетка строится, имена остаются пустыми
	assert.NoError(t, err)
	assert.Equal(t, domain.SlotTaken, resp.Days[0].Slots[4].State)
	assert.Empty(t, resp.Days[0].Slots[4].HolderName)
}

func TestUsecase_Execute_Idempotent(t *testing.T) {
	env := newTestEnv()
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	env.facilities.On("GetByID", mock.Anything, int64(10)).
		Return(&domain.Facility{ID: 10}, nil)
	env.policies.On("GetByFacility", mock.Anything, int64(10)).
		Return(nil, policyRepo.ErrPolicyNotFound)
	env.bookings.On("GetByFacilityBetween", mock.Anything, mock.Anything).
		Return([]*domain.Booking{
			{ID: 1, FacilityID: 10, UserID: 100, BookingDate: day, StartTime: "10:00"},
		}, nil)
	env.identity.On("GetProfileWithGracefulDegradation", mock.Anything, int64(100)).
		Return(&identityservice.Profile{ID: 100, FullName: "Анна Смирнова"}, nil)

	req := &Request{UserID: 100, FacilityID: 10}
	first, err := env.usecase.Execute(context.Background(), req)
	assert.NoError(t, err)
	second, err := env.usecase.Execute(context.Background(), req)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}
