package get_patient_consultations

import (
	"errors"
	"net/http"

	"github.com/medbridge-ng/consultation-service/internal/api/handlers"
	"github.com/medbridge-ng/consultation-service/internal/api/middleware"
	"github.com/medbridge-ng/consultation-service/internal/service/consultations"
	"github.com/medbridge-ng/consultation-service/internal/service/consultations/models"
)

const msgInvalidStatus = "Invalid consultation status filter"

type Handler struct {
	service ConsultationsService
	logger  Logger
}

func NewHandler(service ConsultationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/patients/me/consultations?status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	patientID := middleware.GetUserID(r.Context())

	req := &models.GetPatientConsultationsRequest{PatientID: patientID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetPatientConsultations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, consultations.ErrInvalidStatus):
			h.logger.Warn("GET /patients/me/consultations - invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /patients/me/consultations - patient_id=%s, error=%v", patientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
