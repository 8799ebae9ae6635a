package verify_invite

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/UKC-FacilityService/internal/api/handlers"
	verifyInvite "github.com/m04kA/UKC-FacilityService/internal/usecase/verify_invite"
)

const (
	msgInvalidPassCode = "некорректный код пропуска"
	msgInviteNotFound  = "приглашение не найдено"
)

type Handler struct {
	useCase VerifyInviteUseCase
	logger  Logger
}

func NewHandler(useCase VerifyInviteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/invites/{passCode}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	passCode := vars["passCode"]

	result, err := h.useCase.Execute(r.Context(), &verifyInvite.Request{PassCode: passCode})
	if err != nil {
		switch {
		case errors.Is(err, verifyInvite.ErrInvalidInput):
			h.logger.Warn("GET /invites/{passCode} - Invalid pass code format")
			handlers.RespondBadRequest(w, msgInvalidPassCode)

		case errors.Is(err, verifyInvite.ErrInviteNotFound):
			h.logger.Warn("GET /invites/{passCode} - Invite not found")
			handlers.RespondNotFound(w, msgInviteNotFound)

		default:
			h.logger.Error("GET /invites/{passCode} - Failed to verify invite: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /invites/{passCode} - Invite verified: valid_today=%t", result.ValidToday)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
