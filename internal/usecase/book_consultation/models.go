package book_consultation

import (
	"time"

	"github.com/medbridge-ng/consultation-service/internal/domain"
	"github.com/medbridge-ng/consultation-service/pkg/types"
)

// Request модель запроса на бронирование консультации
type Request struct {
	PatientID          string             // ID пациента (из токена)
	DoctorID           string             // ID доктора
	ConsultationTypeID string             // ID типа консультации
	Date               time.Time          // Календарная дата приёма (без времени)
	Slot               domain.TimeRange   // Запрошенный слот {start, end}
	PaymentMethod      *string            // Способ оплаты
	Language           *string            // Язык консультации
	Symptoms           *string            // Жалобы пациента
	MedicalInfo        domain.MedicalInfo // Причина визита, анамнез и т.п.
}

// Response модель ответа с созданной консультацией
type Response struct {
	ID                 string
	PatientID          string
	DoctorID           string
	ConsultationTypeID string
	AppointmentDate    time.Time
	SlotStart          types.TimeString
	SlotEnd            types.TimeString
	AppointmentTime    time.Time
	AppointmentEndTime time.Time
	Status             string
	PaymentStatus      string
	CreatedAt          time.Time
}
