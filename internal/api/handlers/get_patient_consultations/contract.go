package get_patient_consultations

import (
	"context"

	"github.com/medbridge-ng/consultation-service/internal/service/consultations/models"
)

type ConsultationsService interface {
	GetPatientConsultations(ctx context.Context, req *models.GetPatientConsultationsRequest) (*models.ConsultationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
