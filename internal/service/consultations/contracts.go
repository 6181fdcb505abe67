package consultations

import (
	"context"

	"github.com/medbridge-ng/consultation-service/internal/domain"
)

// ConsultationRepository интерфейс репозитория консультаций
type ConsultationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Consultation, error)
	List(ctx context.Context, filter domain.ConsultationsFilter) ([]*domain.Consultation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
