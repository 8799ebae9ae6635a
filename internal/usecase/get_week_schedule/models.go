package get_week_schedule

import (
	"time"

	"github.com/m04kA/UKC-FacilityService/internal/domain"
	"github.com/m04kA/UKC-FacilityService/pkg/types"
)

// Request модель запроса недельной сетки доступности
type Request struct {
	UserID     int64      // ID действующего пользователя (для состояний mine/taken)
	FacilityID int64      // ID объекта
	WeekStart  *time.Time // Якорная дата окна; nil = сегодня
}

// Slot один часовой слот сетки
type Slot struct {
	StartTime  types.TimeString // Начало слота
	State      domain.SlotState // free / mine / taken
	BookingID  int64            // ID бронирования, 0 для свободного слота
	HolderName string           // Имя занявшего жильца; пустое при degradation
}

// DaySchedule слоты одного календарного дня
type DaySchedule struct {
	Date  time.Time
	Slots []Slot
}

// Response недельная сетка доступности объекта
type Response struct {
	FacilityID   int64
	FacilityName string
	WeekStart    time.Time     // Первая дата окна
	WeekEnd      time.Time     // Последняя дата окна (включительно)
	Days         []DaySchedule // Ровно DaysPerWeek дней по порядку
}
