package get_consultation_types

import (
	"context"

	"github.com/medbridge-ng/consultation-service/internal/service/consultationtypes/models"
)

type ConsultationTypesService interface {
	List(ctx context.Context) (*models.TypeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
