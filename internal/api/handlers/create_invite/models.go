package create_invite

import (
	"time"

	"github.com/m04kA/UKC-FacilityService/internal/domain"
	createInvite "github.com/m04kA/UKC-FacilityService/internal/usecase/create_invite"
)

// CreateInviteRequest HTTP request model
type CreateInviteRequest struct {
	VisitorName string `json:"visitorName"`
	VisitDate   string `json:"visitDate"` // "2025-06-01"
}

// InviteResponse HTTP response model
type InviteResponse struct {
	ID          int64  `json:"id"`
	HostUserID  int64  `json:"hostUserId"`
	VisitorName string `json:"visitorName"`
	VisitDate   string `json:"visitDate"`
	PassCode    string `json:"passCode"`
	QRPayload   string `json:"qrPayload"`
	CreatedAt   string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateInviteRequest) ToUseCaseRequest(hostUserID int64) (*createInvite.Request, error) {
	visitDate, err := time.Parse(domain.DateFormat, r.VisitDate)
	if err != nil {
		return nil, err
	}

	return &createInvite.Request{
		HostUserID:  hostUserID,
		VisitorName: r.VisitorName,
		VisitDate:   visitDate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createInvite.Response) *InviteResponse {
	return &InviteResponse{
		ID:          resp.ID,
		HostUserID:  resp.HostUserID,
		VisitorName: resp.VisitorName,
		VisitDate:   resp.VisitDate.Format(domain.DateFormat),
		PassCode:    resp.PassCode,
		QRPayload:   resp.QRPayload,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
