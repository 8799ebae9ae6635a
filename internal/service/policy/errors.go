package policy

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда объект не найден
	ErrFacilityNotFound = errors.New("facility not found")

	// ErrAccessDenied возвращается, когда пользователь не администратор
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidPolicy возвращается при некорректных значениях политики
	ErrInvalidPolicy = errors.New("invalid policy")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
