package domain

import "time"

// Facility объект инфраструктуры ЖК, доступный для бронирования
// (спортзал, зал для мероприятий, корт и т.д.).
// Справочные данные: движок бронирования их только читает.
type Facility struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
}
