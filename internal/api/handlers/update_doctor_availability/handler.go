package update_doctor_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/medbridge-ng/consultation-service/internal/api/handlers"
	"github.com/medbridge-ng/consultation-service/internal/api/middleware"
	"github.com/medbridge-ng/consultation-service/internal/domain"
	"github.com/medbridge-ng/consultation-service/internal/service/doctors"
	"github.com/medbridge-ng/consultation-service/internal/service/doctors/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTemplate    = "invalid availability template"
	msgDoctorNotFound     = "Doctor not found"
	msgAccessDenied       = "You can only modify your own availability"
)

type Handler struct {
	service DoctorsService
	logger  Logger
}

func NewHandler(service DoctorsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/doctors/{doctorId}/availability
// Тело запроса - шаблон в формате хранения: имена дней недели как ключи
// верхнего уровня рядом с timezone и slotDurationMinutes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["doctorId"]
	requesterID := middleware.GetUserID(r.Context())

	var template domain.AvailabilityTemplate
	if err := handlers.DecodeJSON(r, &template); err != nil {
		h.logger.Warn("PUT /doctors/{id}/availability - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.UpdateAvailability(r.Context(), &models.UpdateAvailabilityRequest{
		DoctorID:     doctorID,
		RequesterID:  requesterID,
		Availability: template,
	})
	if err != nil {
		switch {
		case errors.Is(err, doctors.ErrAccessDenied):
			h.logger.Warn("PUT /doctors/{id}/availability - access denied: doctor_id=%s, requester=%s", doctorID, requesterID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, doctors.ErrInvalidTemplate):
			h.logger.Warn("PUT /doctors/{id}/availability - invalid template: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTemplate)

		case errors.Is(err, doctors.ErrDoctorNotFound):
			h.logger.Warn("PUT /doctors/{id}/availability - not found: doctor_id=%s", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		default:
			h.logger.Error("PUT /doctors/{id}/availability - doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /doctors/{id}/availability - availability replaced: doctor_id=%s", doctorID)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}
