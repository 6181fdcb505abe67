package update_doctor_availability

import (
	"context"

	"github.com/medbridge-ng/consultation-service/internal/service/doctors/models"
)

type DoctorsService interface {
	UpdateAvailability(ctx context.Context, req *models.UpdateAvailabilityRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
