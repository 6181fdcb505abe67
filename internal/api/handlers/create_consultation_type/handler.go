package create_consultation_type

import (
	"errors"
	"net/http"

	"github.com/medbridge-ng/consultation-service/internal/api/handlers"
	"github.com/medbridge-ng/consultation-service/internal/service/consultationtypes"
	"github.com/medbridge-ng/consultation-service/internal/service/consultationtypes/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgAlreadyExists      = "Consultation type already exists"
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

// Handle POST /api/v1/consultation-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /consultation-types - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, consultationtypes.ErrTypeAlreadyExists):
			h.logger.Warn("POST /consultation-types - already exists: name=%s", req.Name)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyExists)

		case errors.Is(err, consultationtypes.ErrInvalidInput):
			h.logger.Warn("POST /consultation-types - invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /consultation-types - error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /consultation-types - created: type_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
