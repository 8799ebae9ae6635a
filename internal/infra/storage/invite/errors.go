package invite

import "errors"

var (
	// ErrInviteNotFound возвращается, когда приглашение не найдено
	ErrInviteNotFound = errors.New("invite.repository: invite not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("invite.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("invite.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("invite.repository: failed to scan row")
)
