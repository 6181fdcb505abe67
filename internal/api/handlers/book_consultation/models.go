package book_consultation

import (
	"time"

	"github.com/medbridge-ng/consultation-service/internal/domain"
	bookConsultation "github.com/medbridge-ng/consultation-service/internal/usecase/book_consultation"
	"github.com/medbridge-ng/consultation-service/pkg/types"
)

// BookConsultationRequest HTTP request model
// PatientID приходит из токена, а не из тела
type BookConsultationRequest struct {
	DoctorID           string              `json:"doctorId"`
	ConsultationTypeID string              `json:"consultationTypeId"`
	AppointmentDate    string              `json:"appointmentDate"` // "2026-09-03"
	SlotStart          string              `json:"slotStart"`       // "09:00"
	SlotEnd            string              `json:"slotEnd"`         // "09:30"
	PaymentMethod      *string             `json:"paymentMethod,omitempty"`
	Language           *string             `json:"language,omitempty"`
	Symptoms           *string             `json:"symptoms,omitempty"`
	MedicalInfo        *domain.MedicalInfo `json:"medicalInfo,omitempty"`
}

// ConsultationResponse HTTP response model
type ConsultationResponse struct {
	ID                 string    `json:"id"`
	PatientID          string    `json:"patientId"`
	DoctorID           string    `json:"doctorId"`
	ConsultationTypeID string    `json:"consultationTypeId"`
	AppointmentDate    string    `json:"appointmentDate"`
	SlotStart          string    `json:"slotStart"`
	SlotEnd            string    `json:"slotEnd"`
	AppointmentTime    time.Time `json:"appointmentTime"`
	AppointmentEndTime time.Time `json:"appointmentEndTime"`
	Status             string    `json:"status"`
	PaymentStatus      string    `json:"paymentStatus"`
	CreatedAt          time.Time `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookConsultationRequest) ToUseCaseRequest(patientID string) (*bookConsultation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, err
	}

	slotStart, err := types.NewTimeStringFromString(r.SlotStart)
	if err != nil {
		return nil, err
	}

	slotEnd, err := types.NewTimeStringFromString(r.SlotEnd)
	if err != nil {
		return nil, err
	}

	req := &bookConsultation.Request{
		PatientID:          patientID,
		DoctorID:           r.DoctorID,
		ConsultationTypeID: r.ConsultationTypeID,
		Date:               date,
		Slot:               domain.TimeRange{Start: slotStart, End: slotEnd},
		PaymentMethod:      r.PaymentMethod,
		Language:           r.Language,
		Symptoms:           r.Symptoms,
	}
	if r.MedicalInfo != nil {
		req.MedicalInfo = *r.MedicalInfo
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *bookConsultation.Response) *ConsultationResponse {
	return &ConsultationResponse{
		ID:                 resp.ID,
		PatientID:          resp.PatientID,
		DoctorID:           resp.DoctorID,
		ConsultationTypeID: resp.ConsultationTypeID,
		AppointmentDate:    resp.AppointmentDate.Format(domain.DateFormat),
		SlotStart:          resp.SlotStart.String(),
		SlotEnd:            resp.SlotEnd.String(),
		AppointmentTime:    resp.AppointmentTime,
		AppointmentEndTime: resp.AppointmentEndTime,
		Status:             resp.Status,
		PaymentStatus:      resp.PaymentStatus,
		CreatedAt:          resp.CreatedAt,
	}
}
