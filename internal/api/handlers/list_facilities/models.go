package list_facilities

import "github.com/m04kA/UKC-FacilityService/internal/domain"

// FacilityResponse HTTP модель объекта
type FacilityResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// FacilityListResponse ответ со списком объектов
type FacilityListResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
}

// FromDomainFacilities конвертирует domain модели в HTTP response
func FromDomainFacilities(items []*domain.Facility) *FacilityListResponse {
	resp := &FacilityListResponse{
		Facilities: make([]FacilityResponse, 0, len(items)),
	}
	for _, f := range items {
		if f == nil {
			continue
		}
		resp.Facilities = append(resp.Facilities, FacilityResponse{
			ID:          f.ID,
			Name:        f.Name,
			Description: f.Description,
		})
	}
	return resp
}
