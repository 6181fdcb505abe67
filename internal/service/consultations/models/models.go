package models

import (
	"time"

	"github.com/medbridge-ng/consultation-service/internal/domain"
)

// Request модели

// GetPatientConsultationsRequest запрос на историю консультаций пациента
type GetPatientConsultationsRequest struct {
	PatientID string  `json:"patientId"`
	Status    *string `json:"status,omitempty"`
}

// GetDoctorConsultationsRequest запрос на приёмы доктора
type GetDoctorConsultationsRequest struct {
	DoctorID string     `json:"doctorId"`
	Status   *string    `json:"status,omitempty"`
	Date     *time.Time `json:"date,omitempty"`
}

// Response модели

// ConsultationResponse ответ с данными консультации
type ConsultationResponse struct {
	ID                 string `json:"id"`
	PatientID          string `json:"patientId"`
	DoctorID           string `json:"doctorId"`
	ConsultationTypeID string `json:"consultationTypeId"`

	AppointmentDate    string    `json:"appointmentDate"` // "2026-09-03"
	SlotStart          string    `json:"slotStart"`       // "09:00"
	SlotEnd            string    `json:"slotEnd"`         // "09:30"
	AppointmentTime    time.Time `json:"appointmentTime"`
	AppointmentEndTime time.Time `json:"appointmentEndTime"`

	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	PaymentMethod *string `json:"paymentMethod,omitempty"`

	Language *string `json:"language,omitempty"`
	Symptoms *string `json:"symptoms,omitempty"`

	MedicalInfo domain.MedicalInfo `json:"medicalInfo"`

	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ConsultationListResponse ответ со списком консультаций
type ConsultationListResponse struct {
	Consultations []ConsultationResponse `json:"consultations"`
}

// Методы конвертации

// FromDomainConsultation конвертирует domain модель в DTO
func FromDomainConsultation(c *domain.Consultation) *ConsultationResponse {
	if c == nil {
		return nil
	}

	return &ConsultationResponse{
		ID:                 c.ID,
		PatientID:          c.PatientID,
		DoctorID:           c.DoctorID,
		ConsultationTypeID: c.ConsultationTypeID,
		AppointmentDate:    c.AppointmentDate.Format(domain.DateFormat),
		SlotStart:          c.SlotStart.String(),
		SlotEnd:            c.SlotEnd.String(),
		AppointmentTime:    c.AppointmentTime,
		AppointmentEndTime: c.AppointmentEndTime,
		Status:             string(c.Status),
		PaymentStatus:      c.PaymentStatus,
		PaymentMethod:      c.PaymentMethod,
		Language:           c.Language,
		Symptoms:           c.Symptoms,
		MedicalInfo:        c.MedicalInfo,
		CompletedAt:        c.CompletedAt,
		CancelledAt:        c.CancelledAt,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

// FromDomainConsultationList конвертирует список domain моделей в DTO
func FromDomainConsultationList(consultations []*domain.Consultation) *ConsultationListResponse {
	result := make([]ConsultationResponse, 0, len(consultations))
	for _, c := range consultations {
		result = append(result, *FromDomainConsultation(c))
	}
	return &ConsultationListResponse{Consultations: result}
}

// ToDomainStatus конвертирует строку в domain.ConsultationStatus
func ToDomainStatus(s string) (domain.ConsultationStatus, bool) {
	status := domain.ConsultationStatus(s)
	return status, status.IsValid()
}
