package get_doctor_consultations

import (
	"errors"
	"net/http"
	"time"

	"github.com/medbridge-ng/consultation-service/internal/api/handlers"
	"github.com/medbridge-ng/consultation-service/internal/api/middleware"
	"github.com/medbridge-ng/consultation-service/internal/domain"
	"github.com/medbridge-ng/consultation-service/internal/service/consultations"
	"github.com/medbridge-ng/consultation-service/internal/service/consultations/models"
)

const (
	msgInvalidStatus = "Invalid consultation status filter"
	msgInvalidDate   = "invalid date format, expected YYYY-MM-DD"
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

// Handle GET /api/v1/doctors/me/consultations?status=&date=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctorID := middleware.GetUserID(r.Context())

	req := &models.GetDoctorConsultationsRequest{DoctorID: doctorID}

	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		date, err := time.Parse(domain.DateFormat, dateParam)
		if err != nil {
			h.logger.Warn("GET /doctors/me/consultations - invalid date %q: %v", dateParam, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	result, err := h.service.GetDoctorConsultations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, consultations.ErrInvalidStatus):
			h.logger.Warn("GET /doctors/me/consultations - invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /doctors/me/consultations - doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
