package domain

import (
	"time"

	"github.com/m04kA/UKC-FacilityService/pkg/types"
)

// Booking бронирование слота на объекте.
// Инвариант: на (facility_id, booking_date, start_time) существует не более
// одного бронирования. Авторитетно это гарантирует UNIQUE-констрейнт в БД;
// все проверки на уровне приложения - только для UX.
type Booking struct {
	ID          int64
	FacilityID  int64
	UserID      int64
	BookingDate time.Time        // Дата бронирования (без времени)
	StartTime   types.TimeString // Начало слота, всегда ровный час ("10:00")
	CreatedAt   time.Time
}

// IsOwnedBy возвращает true, если бронирование принадлежит пользователю
func (b *Booking) IsOwnedBy(userID int64) bool {
	return b.UserID == userID
}

// BookingWithFacility бронирование вместе с названием объекта.
// Отдельный тип для результата JOIN'а, чтобы не прятать опциональное
// поле в базовой модели.
type BookingWithFacility struct {
	Booking
	FacilityName string
}

// FacilityBookingsFilter фильтр выборки бронирований объекта
type FacilityBookingsFilter struct {
	FacilityID int64      // Обязательный параметр
	StartDate  *time.Time // Начало периода включительно (опционально)
	EndDate    *time.Time // Конец периода включительно (опционально)
}
