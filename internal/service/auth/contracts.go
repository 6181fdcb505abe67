package auth

import (
	"context"

	"github.com/medbridge-ng/consultation-service/internal/domain"
)

// PatientRepository интерфейс репозитория пациентов
type PatientRepository interface {
	Create(ctx context.Context, p *domain.Patient) (*domain.Patient, error)
	GetByPhone(ctx context.Context, phoneNumber string) (*domain.Patient, error)
}

// DoctorRepository интерфейс репозитория докторов
type DoctorRepository interface {
	Create(ctx context.Context, d *domain.Doctor) (*domain.Doctor, error)
	GetByPhone(ctx context.Context, phoneNumber string) (*domain.Doctor, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
