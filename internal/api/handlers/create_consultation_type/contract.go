package create_consultation_type

import (
	"context"

	"github.com/medbridge-ng/consultation-service/internal/service/consultationtypes/models"
)

type ConsultationTypesService interface {
	Create(ctx context.Context, req *models.CreateTypeRequest) (*models.TypeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
