package register_patient

import (
	"context"

	"github.com/medbridge-ng/consultation-service/internal/service/auth/models"
)

type AuthService interface {
	RegisterPatient(ctx context.Context, req *models.RegisterPatientRequest) (*models.AuthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
