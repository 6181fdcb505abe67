package update_consultation_status

import (
	"context"

	updateStatus "github.com/medbridge-ng/consultation-service/internal/usecase/update_consultation_status"
)

type UpdateStatusUseCase interface {
	Execute(ctx context.Context, req *updateStatus.Request) (*updateStatus.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
