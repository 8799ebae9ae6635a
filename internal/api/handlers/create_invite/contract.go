package create_invite

import (
	"context"

	createInvite "github.com/m04kA/UKC-FacilityService/internal/usecase/create_invite"
)

type CreateInviteUseCase interface {
	Execute(ctx context.Context, req *createInvite.Request) (*createInvite.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
