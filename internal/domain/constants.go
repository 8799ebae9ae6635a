package domain

// Значения политики бронирования по умолчанию.
// Рабочие часы по умолчанию: слоты с 06:00 по 23:00 включительно
// (последний слот 23:00-24:00), итого 18 слотов в день.
const (
	DefaultOpenHour         = 6
	DefaultCloseHour        = 24
	DefaultAdvanceDays      = 0 // 0 = без ограничения
	DefaultMinNoticeMinutes = 0
)

// Границы валидации политики
const (
	MinOpenHour         = 0
	MaxCloseHour        = 24
	MinAdvanceDays      = 0
	MaxAdvanceDays      = 365
	MinNoticeMinutes    = 0
	MaxNoticeMinutes    = 10080 // Неделя
	SlotDurationMinutes = 60    // Слоты всегда часовые
)

// DaysPerWeek размер окна недельной сетки
const DaysPerWeek = 7

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// MaxVisitorNameLength ограничение длины имени гостя в приглашении
const MaxVisitorNameLength = 120
