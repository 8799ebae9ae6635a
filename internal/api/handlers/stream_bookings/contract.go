package stream_bookings

import (
	"context"

	"github.com/m04kA/UKC-FacilityService/internal/infra/notify"
)

type EventSource interface {
	Subscribe(ctx context.Context) (<-chan notify.Event, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
