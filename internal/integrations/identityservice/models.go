package identityservice

// Роли пользователей в identity-сервисе
const (
	RoleResident = "resident"
	RoleAdmin    = "admin"
)

// Profile профиль пользователя из identity-сервиса.
// Для движка бронирования это непрозрачные входные данные:
// id для владения бронированиями, имя для подписи занятых слотов,
// роль для операций модерации.
type Profile struct {
	ID         int64  `json:"id"`
	FullName   string `json:"fullName"`
	UnitNumber string `json:"unitNumber,omitempty"`
	Role       string `json:"role"`
}

// IsAdmin возвращает true, если пользователь - администратор ЖК
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}
