package verify_invite

import "time"

// Request модель запроса на проверку пропуска
type Request struct {
	PassCode string // UUID-код из QR
}

// Response результат проверки пропуска
type Response struct {
	ID          int64
	HostUserID  int64
	VisitorName string
	VisitDate   time.Time
	ValidToday  bool // true, если дата визита совпадает с сегодняшним днем
}
