package create_booking

import (
	"time"

	"github.com/m04kA/UKC-FacilityService/internal/domain"
	createBooking "github.com/m04kA/UKC-FacilityService/internal/usecase/create_booking"
	"github.com/m04kA/UKC-FacilityService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	FacilityID  int64  `json:"facilityId"`
	BookingDate string `json:"bookingDate"` // "2025-06-01"
	StartTime   string `json:"startTime"`   // "10:00"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64  `json:"id"`
	FacilityID  int64  `json:"facilityId"`
	UserID      int64  `json:"userId"`
	BookingDate string `json:"bookingDate"`
	StartTime   string `json:"startTime"`
	CreatedAt   string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:     userID,
		FacilityID: r.FacilityID,
		Date:       bookingDate,
		StartTime:  startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		FacilityID:  resp.FacilityID,
		UserID:      resp.UserID,
		BookingDate: resp.BookingDate.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
