package get_available_slots

import (
	"context"
	"time"

	"github.com/medbridge-ng/consultation-service/internal/domain"
)

// DoctorRepository интерфейс репозитория докторов
type DoctorRepository interface {
	// GetAvailability возвращает шаблон доступности доктора
	// nil без ошибки - шаблон ещё не задан
	GetAvailability(ctx context.Context, doctorID string) (*domain.AvailabilityTemplate, error)
}

// ConsultationRepository интерфейс репозитория консультаций
type ConsultationRepository interface {
	// GetBookedForDay получает консультации доктора на дату со статусом, отличным от cancelled
	GetBookedForDay(ctx context.Context, doctorID string, date time.Time) ([]*domain.Consultation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
