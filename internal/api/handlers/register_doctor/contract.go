package register_doctor

import (
	"context"

	"github.com/medbridge-ng/consultation-service/internal/service/auth/models"
)

type AuthService interface {
	RegisterDoctor(ctx context.Context, req *models.RegisterDoctorRequest) (*models.AuthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
