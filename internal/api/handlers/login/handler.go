package login

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/medbridge-ng/consultation-service/internal/api/handlers"
	"github.com/medbridge-ng/consultation-service/internal/service/auth"
	"github.com/medbridge-ng/consultation-service/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUserNotFound       = "No account found for this phone number"
	msgInvalidRole        = "unknown role"
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

// Handle POST /api/v1/auth/{role}/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	role := mux.Vars(r)["role"]

	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/{role}/login - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), role, &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			h.logger.Warn("POST /auth/%s/login - user not found: phone=%s", role, req.PhoneNumber)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, auth.ErrInvalidRole):
			h.logger.Warn("POST /auth/%s/login - invalid role", role)
			handlers.RespondBadRequest(w, msgInvalidRole)

		case errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("POST /auth/%s/login - invalid input: %v", role, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /auth/%s/login - error=%v", role, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/%s/login - logged in: user_id=%s", role, result.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
