package verify_invite

import (
	"context"

	verifyInvite "github.com/m04kA/UKC-FacilityService/internal/usecase/verify_invite"
)

type VerifyInviteUseCase interface {
	Execute(ctx context.Context, req *verifyInvite.Request) (*verifyInvite.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
