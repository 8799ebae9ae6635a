package list_facilities

import (
	"net/http"

	"github.com/m04kA/UKC-FacilityService/internal/api/handlers"
)

type Handler struct {
	service FacilityService
	logger  Logger
}

func NewHandler(service FacilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /facilities - Failed to list facilities: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /facilities - Facilities listed successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, FromDomainFacilities(result))
}
