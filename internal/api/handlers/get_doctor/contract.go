package get_doctor

import (
	"context"

	"github.com/medbridge-ng/consultation-service/internal/service/doctors/models"
)

type DoctorsService interface {
	GetByID(ctx context.Context, id string) (*models.DoctorResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
