package doctors

import (
	"context"

	"github.com/medbridge-ng/consultation-service/internal/domain"
)

// DoctorRepository интерфейс репозитория докторов
type DoctorRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Doctor, error)
	List(ctx context.Context, filter domain.DoctorsFilter) ([]*domain.Doctor, error)
	UpdateAvailability(ctx context.Context, doctorID string, template *domain.AvailabilityTemplate) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
