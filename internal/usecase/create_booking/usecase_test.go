package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/UKC-FacilityService/internal/domain"
	"github.com/m04kA/UKC-FacilityService/internal/infra/notify"
	bookingRepo "github.com/m04kA/UKC-FacilityService/internal/infra/storage/booking"
	facilityRepo "github.com/m04kA/UKC-FacilityService/internal/infra/storage/facility"
	policyRepo "github.com/m04kA/UKC-FacilityService/internal/infra/storage/policy"
)

// Mock структуры

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
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

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event notify.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fixedTimeProvider возвращает заранее заданный момент времени
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
	publisher  *MockEventPublisher
	usecase    *Usecase
}

func newTestEnv(now time.Time) *testEnv {
	env := &testEnv{
		bookings:   new(MockBookingRepository),
		facilities: new(MockFacilityRepository),
		policies:   new(MockPolicyRepository),
		publisher:  new(MockEventPublisher),
	}
	env.usecase = NewUsecase(
		env.bookings,
		env.facilities,
		env.policies,
		env.publisher,
		&fakeTxManager{},
		&fixedTimeProvider{now: now},
		nopLogger{},
	)
	return env
}

var testNow = time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		UserID:     100,
		FacilityID: 10,
		Date:       time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		StartTime:  "10:00",
	}
}

// Тесты

func TestUsecase_Execute_Success(t *testing.T) {
	env := newTestEnv(testNow)
	req := validRequest()

	env.facilities.On("GetByID", mock.Anything, int64(10)).
		Return(&domain.Facility{ID: 10, Name: "Спортзал"}, nil)
	env.policies.On("GetByFacility", mock.Anything, int64(10)).
		Return(nil, policyRepo.ErrPolicyNotFound)
	env.bookings.On("GetByFacilityBetween", mock.Anything, mock.Anything).
		Return([]*domain.Booking{}, nil)
	env.bookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.FacilityID == 10 && b.UserID == 100 && b.StartTime == "10:00"
	})).Return(&domain.Booking{
		ID:          1,
		FacilityID:  10,
		UserID:      100,
		BookingDate: req.Date,
		StartTime:   "10:00",
		CreatedAt:   testNow,
	}, nil)
	env.publisher.On("Publish", mock.Anything, notify.Event{
		Op:         notify.OpCreated,
		FacilityID: 10,
		BookingID:  1,
	}).Return(nil)

	resp, err := env.usecase.Execute(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(100), resp.UserID)
	env.bookings.AssertExpectations(t)
	env.publisher.AssertExpectations(t)
}

func TestUsecase_Execute_PastDateRejectedLocally(t *testing.T) {
	env := newTestEnv(testNow)
	req := validRequest()
	req.Date = testNow.AddDate(0, 0, -1)

	_, err := env.usecase.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrDateInPast)
	// Никаких обращений к хранилищу для прошедшей даты
	env.facilities.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	env.bookings.AssertNotCalled(t, "GetByFacilityBetween", mock.Anything, mock.Anything)
	env.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUsecase_Execute_SlotTakenByPrecheck(t *testing.T) {
	env := newTestEnv(testNow)
	req := validRequest()

	env.facilities.On("GetByID", mock.Anything, int64(10)).
		Return(&domain.Facility{ID: 10}, nil)
	env.policies.On("GetByFacility", mock.Anything, int64(10)).
		Return(nil, policyRepo.ErrPolicyNotFound)
	env.bookings.On("GetByFacilityBetween", mock.Anything, mock.Anything).
		Return([]*domain.Booking{
			{ID: 7, FacilityID: 10, UserID: 200, BookingDate: req.Date, StartTime: "10:00"},
		}, nil)

	_, err := env.usecase.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotTaken)
	// Предпроверка отсекла вставку
	env.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	env.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestUsecase_Execute_SlotTakenByUniqueConstraint(t *testing.T) {
	env := newTestEnv(testNow)
	req := validRequest()

	env.facilities.On("GetByID", mock.Anything, int64(10)).
		Return(&domain.Facility{ID: 10}, nil)
	env.policies.On("GetByFacility", mock.Anything, int64(10)).
		Return(nil, policyRepo.ErrPolicyNotFound)
	env.bookings.On("GetByFacilityBetween", mock.Anything, mock.Anything).
		Return([]*domain.Booking{}, nil)
	// Слот заняли между снимком и вставкой, БД вернула нарушение констрейнта
	env.bookings.On("Create", mock.Anything, mock.Anything).
		Return(nil, bookingRepo.ErrSlotTaken)

	_, err := env.usecase.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotTaken)
	env.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestUsecase_Execute_FacilityNotFound(t *testing.T) {
	env := newTestEnv(testNow)

	env.facilities.On("GetByID", mock.Anything, int64(10)).
		Return(nil, facilityRepo.ErrFacilityNotFound)

	_, err := env.usecase.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestUsecase_Execute_PolicyChecks(t *testing.T) {
	policy := &domain.FacilityPolicy{
		FacilityID:       10,
		OpenHour:         9,
		CloseHour:        21,
		AdvanceDays:      7,
		MinNoticeMinutes: 120,
	}

	setup := func(env *testEnv) {
		env.facilities.On("GetByID", mock.Anything, int64(10)).
			Return(&domain.Facility{ID: 10}, nil)
		env.policies.On("GetByFacility", mock.Anything, int64(10)).
			Return(policy, nil)
	}

	t.Run("время вне рабочих часов", func(t *testing.T) {
		env := newTestEnv(testNow)
		setup(env)

		req := validRequest()
		req.StartTime = "08:00"

		_, err := env.usecase.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidTimeSlot)
	})

	t.Run("не ровный час", func(t *testing.T) {
		env := newTestEnv(testNow)
		setup(env)

		req := validRequest()
		req.StartTime = "10:30"

		_, err := env.usecase.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidTimeSlot)
	})

	t.Run("дата глубже ограничения advance_days", func(t *testing.T) {
		env := newTestEnv(testNow)
		setup(env)

		req := validRequest()
		req.Date = testNow.AddDate(0, 0, 8)

		_, err := env.usecase.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrDateTooFarInFuture)
	})

	t.Run("нарушение min_notice_minutes на сегодня", func(t *testing.T) {
		env := newTestEnv(testNow)
		setup(env)

		// Сейчас 12:00, notice 120 минут: слот 13:00 уже недоступен
		req := validRequest()
		req.Date = testNow
		req.StartTime = "13:00"

		_, err := env.usecase.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrTooLateToBook)
	})

	t.Run("слот на сегодня с достаточным notice", func(t *testing.T) {
		env := newTestEnv(testNow)
		setup(env)

		env.bookings.On("GetByFacilityBetween", mock.Anything, mock.Anything).
			Return([]*domain.Booking{}, nil)
		env.bookings.On("Create", mock.Anything, mock.Anything).
			Return(&domain.Booking{ID: 2, FacilityID: 10, UserID: 100}, nil)
		env.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

		req := validRequest()
		req.Date = testNow
		req.StartTime = "15:00"

		_, err := env.usecase.Execute(context.Background(), req)
		assert.NoError(t, err)
	})
}

func TestUsecase_Execute_PublishFailureDoesNotFailBooking(t *testing.T) {
	env := newTestEnv(testNow)
	req := validRequest()

	env.facilities.On("GetByID", mock.Anything, int64(10)).
		Return(&domain.Facility{ID: 10}, nil)
	env.policies.On("GetByFacility", mock.Anything, int64(10)).
		Return(nil, policyRepo.ErrPolicyNotFound)
	env.bookings.On("GetByFacilityBetween", mock.Anything, mock.Anything).
		Return([]*domain.Booking{}, nil)
	env.bookings.On("Create", mock.Anything, mock.Anything).
		Return(&domain.Booking{ID: 3, FacilityID: 10, UserID: 100}, nil)
	env.publisher.On("Publish", mock.Anything, mock.Anything).
		Return(errors.New("redis down"))

	resp, err := env.usecase.Execute(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), resp.ID)
}

func TestUsecase_Execute_InvalidInput(t *testing.T) {
	env := newTestEnv(testNow)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"нулевой user id", func(r *Request) { r.UserID = 0 }},
		{"нулевой facility id", func(r *Request) { r.FacilityID = 0 }},
		{"пустая дата", func(r *Request) { r.Date = time.Time{} }},
		{"некорректное время", func(r *Request) { r.StartTime = "25:99" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := env.usecase.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
