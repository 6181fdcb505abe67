package book_consultation

import (
	"errors"
	"net/http"

	"github.com/medbridge-ng/consultation-service/internal/api/handlers"
	"github.com/medbridge-ng/consultation-service/internal/api/middleware"
	bookConsultation "github.com/medbridge-ng/consultation-service/internal/usecase/book_consultation"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid appointment date or slot format"
	msgSlotNotAvailable   = "This time slot is no longer available"
	msgPatientNotFound    = "Patient not found"
	msgDoctorNotFound     = "Doctor not found"
	msgTypeNotFound       = "Consultation type not found"
	msgNoAvailability     = "Doctor has no availability set"
	msgDoctorNotAvailable = "Doctor is not available on this day"
	msgSlotNotInSchedule  = "Requested slot is not in the doctor's schedule"
)

type Handler struct {
	useCase BookConsultationUseCase
	logger  Logger
}

func NewHandler(useCase BookConsultationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/consultations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	patientID := middleware.GetUserID(r.Context())

	var req BookConsultationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /consultations - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(patientID)
	if err != nil {
		h.logger.Warn("POST /consultations - failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookConsultation.ErrSlotNotAvailable):
			h.logger.Warn("POST /consultations - slot not available: patient_id=%s, doctor_id=%s", patientID, req.DoctorID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, bookConsultation.ErrPatientNotFound):
			h.logger.Warn("POST /consultations - patient not found: patient_id=%s", patientID)
			handlers.RespondNotFound(w, msgPatientNotFound)

		case errors.Is(err, bookConsultation.ErrDoctorNotFound):
			h.logger.Warn("POST /consultations - doctor not found: doctor_id=%s", req.DoctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, bookConsultation.ErrTypeNotFound):
			h.logger.Warn("POST /consultations - consultation type not found: type_id=%s", req.ConsultationTypeID)
			handlers.RespondNotFound(w, msgTypeNotFound)

		// День без приёма и занятый слот различаются текстом: по нему клиент
		// решает, стоит ли перезапрашивать свободные слоты
		case errors.Is(err, bookConsultation.ErrNoAvailability):
			h.logger.Warn("POST /consultations - doctor has no availability: doctor_id=%s", req.DoctorID)
			handlers.RespondError(w, http.StatusConflict, msgNoAvailability)

		case errors.Is(err, bookConsultation.ErrDoctorNotAvailable):
			h.logger.Warn("POST /consultations - doctor not available: doctor_id=%s, date=%s", req.DoctorID, req.AppointmentDate)
			handlers.RespondError(w, http.StatusConflict, msgDoctorNotAvailable)

		case errors.Is(err, bookConsultation.ErrSlotNotInTemplate):
			h.logger.Warn("POST /consultations - slot not in schedule: doctor_id=%s, slot=%s-%s",
				req.DoctorID, req.SlotStart, req.SlotEnd)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotInSchedule)

		case errors.Is(err, bookConsultation.ErrInvalidInput):
			h.logger.Warn("POST /consultations - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /consultations - patient_id=%s, doctor_id=%s, error=%v",
				patientID, req.DoctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /consultations - consultation created: consultation_id=%s, patient_id=%s, doctor_id=%s",
		result.ID, patientID, req.DoctorID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
