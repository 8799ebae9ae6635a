package models

import (
	"time"

	"github.com/m04kA/UKC-FacilityService/internal/domain"
)

// UpdatePolicyRequest запрос на обновление политики объекта
type UpdatePolicyRequest struct {
	UserID           int64 `json:"userId"`
	OpenHour         int   `json:"openHour"`
	CloseHour        int   `json:"closeHour"`
	AdvanceDays      int   `json:"advanceDays"`
	MinNoticeMinutes int   `json:"minNoticeMinutes"`
}

// PolicyResponse ответ с политикой объекта
type PolicyResponse struct {
	FacilityID       int64      `json:"facilityId"`
	OpenHour         int        `json:"openHour"`
	CloseHour        int        `json:"closeHour"`
	AdvanceDays      int        `json:"advanceDays"`
	MinNoticeMinutes int        `json:"minNoticeMinutes"`
	IsDefault        bool       `json:"isDefault"` // true, если политика не задана явно
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`
}

// FromDomainPolicy конвертирует domain модель в DTO
func FromDomainPolicy(p *domain.FacilityPolicy, isDefault bool) *PolicyResponse {
	resp := &PolicyResponse{
		FacilityID:       p.FacilityID,
		OpenHour:         p.OpenHour,
		CloseHour:        p.CloseHour,
		AdvanceDays:      p.AdvanceDays,
		MinNoticeMinutes: p.MinNoticeMinutes,
		IsDefault:        isDefault,
	}

	if !isDefault && !p.UpdatedAt.IsZero() {
		updatedAt := p.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}

	return resp
}
