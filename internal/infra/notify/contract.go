package notify

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Операции, о которых рассылаются уведомления
const (
	OpCreated   = "created"
	OpCancelled = "cancelled"
)

// Event уведомление об изменении бронирований.
// Деталей ровно столько, сколько нужно подписчику, чтобы решить,
// перезагружать ли своё окно: полная перезагрузка, не инкрементальный патч.
type Event struct {
	Op         string `json:"op"`
	FacilityID int64  `json:"facilityId"`
	BookingID  int64  `json:"bookingId"`
}
