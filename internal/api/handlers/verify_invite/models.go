package verify_invite

import (
	"github.com/m04kA/UKC-FacilityService/internal/domain"
	verifyInvite "github.com/m04kA/UKC-FacilityService/internal/usecase/verify_invite"
)

// InviteVerificationResponse HTTP response model
type InviteVerificationResponse struct {
	VisitorName string `json:"visitorName"`
	VisitDate   string `json:"visitDate"`
	ValidToday  bool   `json:"validToday"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *verifyInvite.Response) *InviteVerificationResponse {
	return &InviteVerificationResponse{
		VisitorName: resp.VisitorName,
		VisitDate:   resp.VisitDate.Format(domain.DateFormat),
		ValidToday:  resp.ValidToday,
	}
}
