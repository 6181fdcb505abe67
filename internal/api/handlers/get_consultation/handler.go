package get_consultation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/medbridge-ng/consultation-service/internal/api/handlers"
	"github.com/medbridge-ng/consultation-service/internal/api/middleware"
	"github.com/medbridge-ng/consultation-service/internal/service/consultations"
)

const (
	msgConsultationNotFound = "Consultation not found"
	msgAccessDenied         = "You do not have access to this consultation"
)

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

// Handle GET /api/v1/consultations/{consultationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	consultationID := mux.Vars(r)["consultationId"]
	requesterID := middleware.GetUserID(r.Context())

	result, err := h.service.GetByID(r.Context(), consultationID, requesterID)
	if err != nil {
		switch {
		case errors.Is(err, consultations.ErrConsultationNotFound):
			h.logger.Warn("GET /consultations/{id} - not found: consultation_id=%s", consultationID)
			handlers.RespondNotFound(w, msgConsultationNotFound)

		case errors.Is(err, consultations.ErrAccessDenied):
			h.logger.Warn("GET /consultations/{id} - access denied: consultation_id=%s, user_id=%s", consultationID, requesterID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /consultations/{id} - consultation_id=%s, error=%v", consultationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
