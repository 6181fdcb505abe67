package book_consultation

import (
	"context"

	bookConsultation "github.com/medbridge-ng/consultation-service/internal/usecase/book_consultation"
)

type BookConsultationUseCase interface {
	Execute(ctx context.Context, req *bookConsultation.Request) (*bookConsultation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
