package verify_invite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/UKC-FacilityService/internal/domain"
	inviteRepo "github.com/m04kA/UKC-FacilityService/internal/infra/storage/invite"
)

// Mock структуры

type MockInviteRepository struct {
	mock.Mock
}

func (m *MockInviteRepository) GetByPassCode(ctx context.Context, passCode string) (*domain.Invite, error) {
	args := m.Called(ctx, passCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invite), args.Error(1)
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

var testNow = time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

// Тесты

func TestUsecase_Execute_ValidToday(t *testing.T) {
	repo := new(MockInviteRepository)
	uc := NewUsecase(repo, &fixedTimeProvider{now: testNow}, nopLogger{})

	passCode := uuid.NewString()
	repo.On("GetByPassCode", mock.Anything, passCode).Return(&domain.Invite{
		ID:          1,
		HostUserID:  100,
		VisitorName: "Петр Гостев",
		VisitDate:   time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		PassCode:    passCode,
	}, nil)

	resp, err := uc.Execute(context.Background(), &Request{PassCode: passCode})

	assert.NoError(t, err)
	assert.True(t, resp.ValidToday)
	assert.Equal(t, "Петр Гостев", resp.VisitorName)
}

func TestUsecase_Execute_WrongDayNotValid(t *testing.T) {
	repo := new(MockInviteRepository)
	uc := NewUsecase(repo, &fixedTimeProvider{now: testNow}, nopLogger{})

	passCode := uuid.NewString()
	repo.On("GetByPassCode", mock.Anything, passCode).Return(&domain.Invite{
		ID:        1,
		VisitDate: time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
	}, nil)

	resp, err := uc.Execute(context.Background(), &Request{PassCode: passCode})

	assert.NoError(t, err)
	assert.False(t, resp.ValidToday)
}

func TestUsecase_Execute_NonUTCClockNearMidnight(t *testing.T) {
	msk := time.FixedZone("MSK", 3*60*60)

	tests := []struct {
		name      string
		now       time.Time
		visitDate time.Time
		want      bool
	}{
		{
			// 00:30 местного 2 июня, по UTC еще 1 июня
			name:      "valid from local midnight",
			now:       time.Date(2025, 6, 2, 0, 30, 0, 0, msk),
			visitDate: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			want:      true,
		},
		{
			// 23:30 местного 2 июня, по UTC уже далеко за вечер
			name:      "valid until local midnight",
			now:       time.Date(2025, 6, 2, 23, 30, 0, 0, msk),
			visitDate: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			want:      true,
		},
		{
			// 00:30 местного 3 июня, по UTC еще 2 июня, но местный день сменился
			name:      "invalid after local midnight",
			now:       time.Date(2025, 6, 3, 0, 30, 0, 0, msk),
			visitDate: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockInviteRepository)
			uc := NewUsecase(repo, &fixedTimeProvider{now: tt.now}, nopLogger{})

			passCode := uuid.NewString()
			repo.On("GetByPassCode", mock.Anything, passCode).Return(&domain.Invite{
				ID:        1,
				VisitDate: tt.visitDate,
			}, nil)

			resp, err := uc.Execute(context.Background(), &Request{PassCode: passCode})

			assert.NoError(t, err)
			assert.Equal(t, tt.want, resp.ValidToday)
		})
	}
}

func TestUsecase_Execute_UnknownPassCode(t *testing.T) {
	repo := new(MockInviteRepository)
	uc := NewUsecase(repo, &fixedTimeProvider{now: testNow}, nopLogger{})

	passCode := uuid.NewString()
	repo.On("GetByPassCode", mock.Anything, passCode).
		Return(nil, inviteRepo.ErrInviteNotFound)

	_, err := uc.Execute(context.Background(), &Request{PassCode: passCode})

	assert.ErrorIs(t, err, ErrInviteNotFound)
}

func TestUsecase_Execute_MalformedCodeRejectedLocally(t *testing.T) {
	repo := new(MockInviteRepository)
	uc := NewUsecase(repo, &fixedTimeProvider{now: testNow}, nopLogger{})

	for _, code := range []string{"", "not-a-uuid", "12345"} {
		_, err := uc.Execute(context.Background(), &Request{PassCode: code})
		assert.ErrorIs(t, err, ErrInvalidInput, "code %q", code)
	}

	// Некорректные коды не доходят до БД
	repo.AssertNotCalled(t, "GetByPassCode", mock.Anything, mock.Anything)
}
