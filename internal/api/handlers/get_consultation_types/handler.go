package get_consultation_types

import (
	"net/http"

	"github.com/medbridge-ng/consultation-service/internal/api/handlers"
)

type Handler struct {
	service ConsultationTypesService
	logger  Logger
}

func NewHandler(service ConsultationTypesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/consultation-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /consultation-types - error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
