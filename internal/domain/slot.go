package domain

import (
	"time"

	"github.com/m04kA/UKC-FacilityService/pkg/types"
)

// SlotState состояние слота с точки зрения конкретного пользователя
type SlotState string

const (
	SlotFree  SlotState = "free"  // Слот свободен, можно бронировать
	SlotMine  SlotState = "mine"  // Слот занят текущим пользователем
	SlotTaken SlotState = "taken" // Слот занят другим жильцом
)

// SlotKey ключ слота: объект + дата + час начала.
// Не персистентный, пересчитывается при каждом обновлении списка бронирований.
type SlotKey struct {
	FacilityID int64
	Date       string // В формате DateFormat
	StartTime  types.TimeString
}

// NewSlotKey создает ключ слота
func NewSlotKey(facilityID int64, date time.Time, startTime types.TimeString) SlotKey {
	return SlotKey{
		FacilityID: facilityID,
		Date:       date.Format(DateFormat),
		StartTime:  startTime,
	}
}

// SlotIndex отображение занятых слотов объекта
type SlotIndex map[SlotKey]*Booking

// BuildSlotIndex строит индекс занятости по списку бронирований,
// отфильтрованному до одного объекта. O(n) по числу бронирований.
// Дубликаты по одному ключу схлопываются (побеждает последняя строка) -
// после перестроения в индексе не бывает больше одной записи на ключ.
func BuildSlotIndex(facilityID int64, bookings []*Booking) SlotIndex {
	index := make(SlotIndex, len(bookings))
	for _, b := range bookings {
		if b == nil || b.FacilityID != facilityID {
			continue
		}
		index[NewSlotKey(b.FacilityID, b.BookingDate, b.StartTime)] = b
	}
	return index
}

// Lookup возвращает бронирование по ключу слота, если слот занят
func (i SlotIndex) Lookup(key SlotKey) (*Booking, bool) {
	b, ok := i[key]
	return b, ok
}

// StateFor возвращает состояние слота для пользователя
func (i SlotIndex) StateFor(key SlotKey, userID int64) SlotState {
	b, ok := i[key]
	if !ok {
		return SlotFree
	}
	if b.IsOwnedBy(userID) {
		return SlotMine
	}
	return SlotTaken
}
