package get_week_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/UKC-FacilityService/internal/api/handlers"
	"github.com/m04kA/UKC-FacilityService/internal/api/middleware"
	"github.com/m04kA/UKC-FacilityService/internal/domain"
	getWeekSchedule "github.com/m04kA/UKC-FacilityService/internal/usecase/get_week_schedule"
)

const (
	msgInvalidFacilityID = "некорректный ID объекта"
	msgInvalidWeekStart  = "некорректный формат даты начала недели, ожидается YYYY-MM-DD"
	msgFacilityNotFound  = "объект не найден"
)

type Handler struct {
	useCase GetWeekScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetWeekScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityId}/schedule?weekStart=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	vars := mux.Vars(r)
	facilityID, err := strconv.ParseInt(vars["facilityId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/schedule - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	// Якорная дата окна (опционально, по умолчанию сегодня)
	var weekStart *time.Time
	if raw := r.URL.Query().Get("weekStart"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /facilities/{id}/schedule - Invalid weekStart: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWeekStart)
			return
		}
		weekStart = &parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getWeekSchedule.Request{
		UserID:     userID,
		FacilityID: facilityID,
		WeekStart:  weekStart,
	})
	if err != nil {
		switch {
		case errors.Is(err, getWeekSchedule.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{id}/schedule - Facility not found: facility_id=%d", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, getWeekSchedule.ErrInvalidInput):
			h.logger.Warn("GET /facilities/{id}/schedule - Invalid input: facility_id=%d, error=%v", facilityID, err)
			handlers.RespondBadRequest(w, msgInvalidFacilityID)

		default:
			h.logger.Error("GET /facilities/{id}/schedule - Failed to build schedule: facility_id=%d, error=%v",
				facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{id}/schedule - Schedule built successfully: facility_id=%d, user_id=%d, week_start=%s",
		facilityID, userID, result.WeekStart.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
