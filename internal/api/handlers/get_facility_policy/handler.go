package get_facility_policy

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/UKC-FacilityService/internal/api/handlers"
	"github.com/m04kA/UKC-FacilityService/internal/service/policy"
)

const (
	msgInvalidFacilityID = "некорректный ID объекта"
	msgFacilityNotFound  = "объект не найден"
)

type Handler struct {
	service PolicyService
	logger  Logger
}

func NewHandler(service PolicyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityId}/policy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	facilityID, err := strconv.ParseInt(vars["facilityId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/policy - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	result, err := h.service.GetEffective(r.Context(), facilityID)
	if err != nil {
		switch {
		case errors.Is(err, policy.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{id}/policy - Facility not found: facility_id=%d", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		default:
			h.logger.Error("GET /facilities/{id}/policy - Failed to get policy: facility_id=%d, error=%v",
				facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{id}/policy - Policy retrieved successfully: facility_id=%d, is_default=%t",
		facilityID, result.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, result)
}
