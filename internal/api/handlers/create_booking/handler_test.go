package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/UKC-FacilityService/internal/api/middleware"
	createBooking "github.com/m04kA/UKC-FacilityService/internal/usecase/create_booking"
)

// Mock структуры

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createBooking.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// Хелперы

func doRequest(t *testing.T, useCase *MockUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(useCase, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(body))
	req.Header.Set(middleware.HeaderUserID, "100")

	rec := httptest.NewRecorder()
	// Auth middleware кладет ID пользователя в контекст, как в проде
	middleware.Auth(http.HandlerFunc(handler.Handle)).ServeHTTP(rec, req)
	return rec
}

const validBody = `{"facilityId":10,"bookingDate":"2025-06-03","startTime":"10:00"}`

// Тесты

func TestHandler_Handle_Created(t *testing.T) {
	useCase := new(MockUseCase)
	useCase.On("Execute", mock.Anything, mock.MatchedBy(func(r *createBooking.Request) bool {
		return r.UserID == 100 && r.FacilityID == 10 && r.StartTime == "10:00"
	})).Return(&createBooking.Response{ID: 1, FacilityID: 10, UserID: 100, StartTime: "10:00"}, nil)

	rec := doRequest(t, useCase, validBody)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	useCase.AssertExpectations(t)
}

func TestHandler_Handle_SlotTakenConflict(t *testing.T) {
	useCase := new(MockUseCase)
	useCase.On("Execute", mock.Anything, mock.Anything).
		Return(nil, createBooking.ErrSlotTaken)

	rec := doRequest(t, useCase, validBody)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_Handle_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"пустое тело", ``},
		{"битый JSON", `{`},
		{"неизвестное поле", `{"facilityId":10,"unknown":1}`},
		{"некорректная дата", `{"facilityId":10,"bookingDate":"03.06.2025","startTime":"10:00"}`},
		{"некорректное время", `{"facilityId":10,"bookingDate":"2025-06-03","startTime":"10"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := new(MockUseCase)

			rec := doRequest(t, useCase, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			useCase.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_Handle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"объект не найден", createBooking.ErrFacilityNotFound, http.StatusNotFound},
		{"прошедшая дата", createBooking.ErrDateInPast, http.StatusBadRequest},
		{"дата слишком далеко", createBooking.ErrDateTooFarInFuture, http.StatusBadRequest},
		{"время вне рабочих часов", createBooking.ErrInvalidTimeSlot, http.StatusBadRequest},
		{"поздно бронировать", createBooking.ErrTooLateToBook, http.StatusBadRequest},
		{"внутренняя ошибка", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := new(MockUseCase)
			useCase.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := doRequest(t, useCase, validBody)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_Handle_Unauthorized(t *testing.T) {
	useCase := new(MockUseCase)
	handler := NewHandler(useCase, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(validBody))
	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(handler.Handle)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	useCase.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
