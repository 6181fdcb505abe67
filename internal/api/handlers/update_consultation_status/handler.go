package update_consultation_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/medbridge-ng/consultation-service/internal/api/handlers"
	updateStatus "github.com/medbridge-ng/consultation-service/internal/usecase/update_consultation_status"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgConsultationNotFound = "Consultation not found"
	msgInvalidStatus        = "Invalid consultation status"
	msgTerminalStatus       = "Consultation is already in a final status"
)

type Handler struct {
	useCase UpdateStatusUseCase
	logger  Logger
}

func NewHandler(useCase UpdateStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/consultations/{consultationId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	consultationID := mux.Vars(r)["consultationId"]

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /consultations/{id}/status - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &updateStatus.Request{
		ConsultationID: consultationID,
		Status:         req.Status,
		MedicalInfo:    req.MedicalInfo,
	})
	if err != nil {
		switch {
		case errors.Is(err, updateStatus.ErrConsultationNotFound):
			h.logger.Warn("PATCH /consultations/{id}/status - not found: consultation_id=%s", consultationID)
			handlers.RespondNotFound(w, msgConsultationNotFound)

		case errors.Is(err, updateStatus.ErrInvalidStatus):
			h.logger.Warn("PATCH /consultations/{id}/status - invalid status %q: consultation_id=%s", req.Status, consultationID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, updateStatus.ErrTerminalStatus):
			h.logger.Warn("PATCH /consultations/{id}/status - terminal status: consultation_id=%s", consultationID)
			handlers.RespondError(w, http.StatusConflict, msgTerminalStatus)

		case errors.Is(err, updateStatus.ErrInvalidInput):
			h.logger.Warn("PATCH /consultations/{id}/status - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /consultations/{id}/status - consultation_id=%s, error=%v", consultationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /consultations/{id}/status - consultation_id=%s moved to %s", consultationID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
