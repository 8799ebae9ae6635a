package verify_invite

import "errors"

var (
	// ErrInviteNotFound возвращается, когда код пропуска неизвестен
	ErrInviteNotFound = errors.New("verify_invite: invite not found")

	// ErrInvalidInput возвращается при некорректном коде пропуска
	ErrInvalidInput = errors.New("verify_invite: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("verify_invite: internal error")
)
