package domain

import (
	"time"

	"github.com/medbridge-ng/consultation-service/pkg/types"
)

// ConsultationStatus represents the lifecycle status of a consultation
type ConsultationStatus string

const (
	StatusPending    ConsultationStatus = "pending"
	StatusConfirmed  ConsultationStatus = "confirmed"
	StatusInProgress ConsultationStatus = "in-progress"
	StatusCompleted  ConsultationStatus = "completed"
	StatusCancelled  ConsultationStatus = "cancelled"
	StatusNoShow     ConsultationStatus = "no-show"
)

// IsValid returns true if the status is one of the six known values
func (s ConsultationStatus) IsValid() bool {
	for _, known := range ValidStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transition is permitted from the status
func (s ConsultationStatus) IsTerminal() bool {
	for _, terminal := range TerminalStatuses {
		if s == terminal {
			return true
		}
	}
	return false
}

// MedicalInfo free-text medical details attached to a consultation
type MedicalInfo struct {
	ReasonForVisit string `json:"reason_for_visit,omitempty"`
	MedicalHistory string `json:"medical_history,omitempty"`
	Medications    string `json:"medications,omitempty"`
	Allergies      string `json:"allergies,omitempty"`
	Diagnosis      string `json:"diagnosis,omitempty"`
	Prescription   string `json:"prescription,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// Consultation represents one patient-doctor appointment
// Consultations are never deleted; cancellation is a status, not a removal
type Consultation struct {
	ID                 string
	PatientID          string
	DoctorID           string
	ConsultationTypeID string

	AppointmentDate    time.Time
	SlotStart          types.TimeString
	SlotEnd            types.TimeString
	AppointmentTime    time.Time
	AppointmentEndTime time.Time

	Status        ConsultationStatus
	PaymentStatus string

	PaymentMethod    *string
	PaymentReference *string

	Language    *string
	Symptoms    *string
	MedicalInfo MedicalInfo

	CompletedAt *time.Time
	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the consultation still occupies its slot
func (c *Consultation) IsActive() bool {
	return c.Status != StatusCancelled
}

// CanBeCancelled returns true if the consultation may still be cancelled
func (c *Consultation) CanBeCancelled() bool {
	return c.Status == StatusPending || c.Status == StatusConfirmed
}

// BookedInterval reduces the consultation to its {start, end} slot pair
func (c *Consultation) BookedInterval() TimeRange {
	return TimeRange{Start: c.SlotStart, End: c.SlotEnd}
}

// ConsultationsFilter filter for consultation listings
type ConsultationsFilter struct {
	PatientID *string
	DoctorID  *string
	Status    *ConsultationStatus
	Date      *time.Time // single calendar day, nil = no date constraint
}
