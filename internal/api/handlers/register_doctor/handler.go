package register_doctor

import (
	"errors"
	"net/http"

	"github.com/medbridge-ng/consultation-service/internal/api/handlers"
	"github.com/medbridge-ng/consultation-service/internal/service/auth"
	"github.com/medbridge-ng/consultation-service/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgAlreadyRegistered  = "Phone number already registered"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/doctor/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterDoctorRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/doctor/register - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.RegisterDoctor(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrAlreadyRegistered):
			h.logger.Warn("POST /auth/doctor/register - already registered: phone=%s", req.PhoneNumber)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyRegistered)

		case errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("POST /auth/doctor/register - invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /auth/doctor/register - error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/doctor/register - doctor registered: user_id=%s", result.UserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
