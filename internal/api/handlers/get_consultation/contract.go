package get_consultation

import (
	"context"

	"github.com/medbridge-ng/consultation-service/internal/service/consultations/models"
)

type ConsultationsService interface {
	GetByID(ctx context.Context, id, requesterID string) (*models.ConsultationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
