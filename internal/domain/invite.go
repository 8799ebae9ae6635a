package domain

import "time"

// Invite гостевое приглашение с уникальным кодом пропуска.
// Код кодируется в QR на стороне клиента; сервис хранит только payload.
type Invite struct {
	ID          int64
	HostUserID  int64
	VisitorName string
	VisitDate   time.Time
	PassCode    string // UUID, генерируется при создании
	CreatedAt   time.Time
}
