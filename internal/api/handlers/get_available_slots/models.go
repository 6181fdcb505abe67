package get_available_slots

import (
	"github.com/medbridge-ng/consultation-service/internal/domain"
	getAvailableSlots "github.com/medbridge-ng/consultation-service/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель одного слота
type SlotResponse struct {
	Start string `json:"start"` // "09:00"
	End   string `json:"end"`   // "09:30"
}

// AvailableSlotsResponse HTTP модель ответа
type AvailableSlotsResponse struct {
	DoctorID       string         `json:"doctorId"`
	Date           string         `json:"date"` // "2026-09-03"
	Weekday        string         `json:"weekday"`
	Timezone       string         `json:"timezone"`
	Available      bool           `json:"available"`
	AvailableSlots []SlotResponse `json:"availableSlots"`
	Message        string         `json:"message,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Start: s.Start.String(),
			End:   s.End.String(),
		})
	}

	return &AvailableSlotsResponse{
		DoctorID:       resp.DoctorID,
		Date:           resp.Date.Format(domain.DateFormat),
		Weekday:        resp.Weekday,
		Timezone:       resp.Timezone,
		Available:      resp.Available,
		AvailableSlots: slots,
		Message:        resp.Message,
	}
}
