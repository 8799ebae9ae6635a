package update_facility_policy

import "github.com/m04kA/UKC-FacilityService/internal/service/policy/models"

// UpdatePolicyRequest HTTP request model
type UpdatePolicyRequest struct {
	OpenHour         int `json:"openHour"`
	CloseHour        int `json:"closeHour"`
	AdvanceDays      int `json:"advanceDays"`
	MinNoticeMinutes int `json:"minNoticeMinutes"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdatePolicyRequest) ToServiceRequest(userID int64) *models.UpdatePolicyRequest {
	return &models.UpdatePolicyRequest{
		UserID:           userID,
		OpenHour:         r.OpenHour,
		CloseHour:        r.CloseHour,
		AdvanceDays:      r.AdvanceDays,
		MinNoticeMinutes: r.MinNoticeMinutes,
	}
}
