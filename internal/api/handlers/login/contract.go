package login

import (
	"context"

	"github.com/medbridge-ng/consultation-service/internal/service/auth/models"
)

type AuthService interface {
	Login(ctx context.Context, role string, req *models.LoginRequest) (*models.AuthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
