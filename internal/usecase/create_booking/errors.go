package create_booking

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда объект не найден
	ErrFacilityNotFound = errors.New("create_booking: facility not found")

	// ErrDateInPast возвращается при попытке забронировать прошедшую дату.
	// Проверяется локально, до каких-либо обращений к хранилищу.
	ErrDateInPast = errors.New("create_booking: booking date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceDays
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrInvalidTimeSlot возвращается, когда время начала не ровный час
	// или вне рабочих часов объекта
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrTooLateToBook возвращается при нарушении minNoticeMinutes
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrSlotTaken возвращается, когда слот занят: либо по локальной
	// предпроверке, либо проигрышем гонки на UNIQUE-констрейнте
	ErrSlotTaken = errors.New("create_booking: slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
