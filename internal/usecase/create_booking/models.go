package create_booking

import (
	"time"

	"github.com/m04kA/UKC-FacilityService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID     int64            // ID действующего пользователя
	FacilityID int64            // ID объекта
	Date       time.Time        // Дата бронирования (без времени)
	StartTime  types.TimeString // Начало слота, ровный час (например, "10:00")
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64            // ID созданного бронирования
	FacilityID  int64            // ID объекта
	UserID      int64            // ID пользователя
	BookingDate time.Time        // Дата бронирования
	StartTime   types.TimeString // Начало слота
	CreatedAt   time.Time        // Время создания
}
