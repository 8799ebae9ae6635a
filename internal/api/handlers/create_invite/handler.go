package create_invite

import (
	"errors"
	"net/http"

	"github.com/m04kA/UKC-FacilityService/internal/api/handlers"
	"github.com/m04kA/UKC-FacilityService/internal/api/middleware"
	createInvite "github.com/m04kA/UKC-FacilityService/internal/usecase/create_invite"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidVisitDate   = "некорректный формат даты визита, ожидается YYYY-MM-DD"
	msgDateInPast         = "нельзя создать приглашение на прошедшую дату"
	msgInvalidInput       = "некорректные данные приглашения"
)

type Handler struct {
	useCase CreateInviteUseCase
	logger  Logger
}

func NewHandler(useCase CreateInviteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/invites
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var req CreateInviteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /invites - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /invites - Failed to parse visit date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVisitDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createInvite.ErrDateInPast):
			h.logger.Warn("POST /invites - Visit date in past: user_id=%d, date=%s", userID, req.VisitDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createInvite.ErrInvalidInput):
			h.logger.Warn("POST /invites - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /invites - Failed to create invite: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /invites - Invite created successfully: invite_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
