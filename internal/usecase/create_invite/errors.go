package create_invite

import "errors"

var (
	// ErrDateInPast возвращается при попытке создать приглашение на прошедшую дату
	ErrDateInPast = errors.New("create_invite: visit date is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_invite: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_invite: internal error")
)
