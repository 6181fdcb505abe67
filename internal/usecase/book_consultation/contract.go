package book_consultation

import (
	"context"
	"time"

	"github.com/medbridge-ng/consultation-service/internal/domain"
)

// ConsultationRepository интерфейс репозитория консультаций
type ConsultationRepository interface {
	Create(ctx context.Context, c *domain.Consultation) (*domain.Consultation, error)
	GetBookedForDay(ctx context.Context, doctorID string, date time.Time) ([]*domain.Consultation, error)
}

// DoctorRepository интерфейс репозитория докторов
type DoctorRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Doctor, error)
}

// PatientRepository интерфейс репозитория пациентов
type PatientRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Patient, error)
}

// ConsultationTypeRepository интерфейс репозитория типов консультаций
type ConsultationTypeRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ConsultationType, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier отправляет уведомление о созданной консультации
// Вызывается после фиксации транзакции; сбои не влияют на результат
type Notifier interface {
	ConsultationBooked(ctx context.Context, c *domain.Consultation)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
