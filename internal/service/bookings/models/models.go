package models

import (
	"time"

	"github.com/m04kA/UKC-FacilityService/internal/domain"
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID int64 `json:"userId"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64     `json:"id"`
	FacilityID  int64     `json:"facilityId"`
	UserID      int64     `json:"userId"`
	BookingDate string    `json:"bookingDate"` // "2025-06-01"
	StartTime   string    `json:"startTime"`   // "10:00"
	CreatedAt   time.Time `json:"createdAt"`
}

// UserBookingResponse бронирование пользователя с названием объекта
// (строка списка "мои бронирования")
type UserBookingResponse struct {
	BookingResponse
	FacilityName string `json:"facilityName"`
}

// UserBookingListResponse ответ со списком бронирований пользователя
type UserBookingListResponse struct {
	Bookings []UserBookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:          b.ID,
		FacilityID:  b.FacilityID,
		UserID:      b.UserID,
		BookingDate: b.BookingDate.Format(domain.DateFormat),
		StartTime:   b.StartTime.String(),
		CreatedAt:   b.CreatedAt,
	}
}

// FromDomainUserBookings конвертирует список бронирований с названиями объектов
func FromDomainUserBookings(items []*domain.BookingWithFacility) *UserBookingListResponse {
	resp := &UserBookingListResponse{
		Bookings: make([]UserBookingResponse, 0, len(items)),
	}

	for _, item := range items {
		if item == nil {
			continue
		}
		resp.Bookings = append(resp.Bookings, UserBookingResponse{
			BookingResponse: *FromDomainBooking(&item.Booking),
			FacilityName:    item.FacilityName,
		})
	}

	return resp
}
