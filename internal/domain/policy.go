package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/UKC-FacilityService/pkg/types"
)

// FacilityPolicy политика бронирования объекта: рабочие часы и ограничения.
// Если для объекта политика не задана, действует DefaultPolicy.
type FacilityPolicy struct {
	ID               int64
	FacilityID       int64
	OpenHour         int // Час начала первого слота (0-23)
	CloseHour        int // Час окончания последнего слота (1-24)
	AdvanceDays      int // На сколько дней вперёд можно бронировать, 0 = без ограничения
	MinNoticeMinutes int // Минимальное время до начала слота при бронировании "на сегодня"
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// DefaultPolicy возвращает политику по умолчанию для объекта
func DefaultPolicy(facilityID int64) *FacilityPolicy {
	return &FacilityPolicy{
		FacilityID:       facilityID,
		OpenHour:         DefaultOpenHour,
		CloseHour:        DefaultCloseHour,
		AdvanceDays:      DefaultAdvanceDays,
		MinNoticeMinutes: DefaultMinNoticeMinutes,
	}
}

// SlotsPerDay возвращает количество часовых слотов в рабочем дне
func (p *FacilityPolicy) SlotsPerDay() int {
	return p.CloseHour - p.OpenHour
}

// SlotStartTimes возвращает времена начала всех слотов рабочего дня по порядку
func (p *FacilityPolicy) SlotStartTimes() []types.TimeString {
	starts := make([]types.TimeString, 0, p.SlotsPerDay())
	for hour := p.OpenHour; hour < p.CloseHour; hour++ {
		starts = append(starts, types.TimeString(fmt.Sprintf("%02d:00", hour)))
	}
	return starts
}

// AllowsStart возвращает true, если слот с таким началом входит в рабочие часы.
// Начало должно быть ровным часом в диапазоне [OpenHour, CloseHour).
func (p *FacilityPolicy) AllowsStart(startTime types.TimeString) bool {
	minutes, err := startTime.Minutes()
	if err != nil {
		return false
	}
	if minutes%60 != 0 {
		return false
	}
	hour := minutes / 60
	return hour >= p.OpenHour && hour < p.CloseHour
}

// HasAdvanceLimit возвращает true, если задано ограничение глубины бронирования
func (p *FacilityPolicy) HasAdvanceLimit() bool {
	return p.AdvanceDays > 0
}

// Validate проверяет согласованность значений политики
func (p *FacilityPolicy) Validate() error {
	if p.OpenHour < MinOpenHour || p.OpenHour > MaxCloseHour-1 {
		return fmt.Errorf("open hour must be in [%d, %d]", MinOpenHour, MaxCloseHour-1)
	}
	if p.CloseHour <= p.OpenHour || p.CloseHour > MaxCloseHour {
		return fmt.Errorf("close hour must be in (%d, %d]", p.OpenHour, MaxCloseHour)
	}
	if p.AdvanceDays < MinAdvanceDays || p.AdvanceDays > MaxAdvanceDays {
		return fmt.Errorf("advance days must be in [%d, %d]", MinAdvanceDays, MaxAdvanceDays)
	}
	if p.MinNoticeMinutes < MinNoticeMinutes || p.MinNoticeMinutes > MaxNoticeMinutes {
		return fmt.Errorf("min notice minutes must be in [%d, %d]", MinNoticeMinutes, MaxNoticeMinutes)
	}
	return nil
}
