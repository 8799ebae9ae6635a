package get_week_schedule

import (
	"github.com/m04kA/UKC-FacilityService/internal/domain"
	getWeekSchedule "github.com/m04kA/UKC-FacilityService/internal/usecase/get_week_schedule"
)

// SlotResponse HTTP модель слота сетки
type SlotResponse struct {
	StartTime  string `json:"startTime"`            // "10:00"
	State      string `json:"state"`                // free / mine / taken
	BookingID  int64  `json:"bookingId,omitempty"`  // Только для занятых слотов
	HolderName string `json:"holderName,omitempty"` // Имя занявшего жильца
}

// DayScheduleResponse слоты одного дня
type DayScheduleResponse struct {
	Date  string         `json:"date"` // "2025-06-01"
	Slots []SlotResponse `json:"slots"`
}

// WeekScheduleResponse недельная сетка доступности
type WeekScheduleResponse struct {
	FacilityID   int64                 `json:"facilityId"`
	FacilityName string                `json:"facilityName"`
	WeekStart    string                `json:"weekStart"`
	WeekEnd      string                `json:"weekEnd"`
	Days         []DayScheduleResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getWeekSchedule.Response) *WeekScheduleResponse {
	days := make([]DayScheduleResponse, 0, len(resp.Days))
	for _, day := range resp.Days {
		slots := make([]SlotResponse, 0, len(day.Slots))
		for _, slot := range day.Slots {
			slots = append(slots, SlotResponse{
				StartTime:  slot.StartTime.String(),
				State:      string(slot.State),
				BookingID:  slot.BookingID,
				HolderName: slot.HolderName,
			})
		}
		days = append(days, DayScheduleResponse{
			Date:  day.Date.Format(domain.DateFormat),
			Slots: slots,
		})
	}

	return &WeekScheduleResponse{
		FacilityID:   resp.FacilityID,
		FacilityName: resp.FacilityName,
		WeekStart:    resp.WeekStart.Format(domain.DateFormat),
		WeekEnd:      resp.WeekEnd.Format(domain.DateFormat),
		Days:         days,
	}
}
