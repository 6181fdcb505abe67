package consultationtypes

import (
	"context"

	"github.com/medbridge-ng/consultation-service/internal/domain"
)

// ConsultationTypeRepository интерфейс репозитория типов консультаций
type ConsultationTypeRepository interface {
	Create(ctx context.Context, t *domain.ConsultationType) (*domain.ConsultationType, error)
	List(ctx context.Context) ([]*domain.ConsultationType, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
