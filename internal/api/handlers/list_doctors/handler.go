package list_doctors

import (
	"net/http"
	"strconv"

	"github.com/medbridge-ng/consultation-service/internal/api/handlers"
	"github.com/medbridge-ng/consultation-service/internal/service/doctors/models"
)

const msgInvalidMinExperience = "invalid minExperience, expected a non-negative integer"

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

// Handle GET /api/v1/doctors?specialty=&language=&mode=&gender=&minExperience=&location=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListDoctorsRequest{}

	if v := query.Get("specialty"); v != "" {
		req.Specialty = &v
	}
	if v := query.Get("language"); v != "" {
		req.Language = &v
	}
	if v := query.Get("mode"); v != "" {
		req.Mode = &v
	}
	if v := query.Get("gender"); v != "" {
		req.Gender = &v
	}
	if v := query.Get("location"); v != "" {
		req.Location = &v
	}
	if v := query.Get("minExperience"); v != "" {
		minExperience, err := strconv.Atoi(v)
		if err != nil || minExperience < 0 {
			h.logger.Warn("GET /doctors - invalid minExperience %q", v)
			handlers.RespondBadRequest(w, msgInvalidMinExperience)
			return
		}
		req.MinExperience = &minExperience
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /doctors - error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
