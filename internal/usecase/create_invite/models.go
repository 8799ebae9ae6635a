package create_invite

import "time"

// Request модель запроса на создание гостевого приглашения
type Request struct {
	HostUserID  int64     // ID жильца, приглашающего гостя
	VisitorName string    // Имя гостя
	VisitDate   time.Time // Дата визита
}

// Response модель ответа с созданным приглашением
type Response struct {
	ID          int64
	HostUserID  int64
	VisitorName string
	VisitDate   time.Time
	PassCode    string // UUID-код пропуска
	QRPayload   string // Строка для кодирования в QR на клиенте
	CreatedAt   time.Time
}
