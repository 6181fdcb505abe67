package book_consultation

import (
	"fmt"

	"github.com/medbridge-ng/consultation-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PatientID == "" {
		return fmt.Errorf("%w: patientID is required", ErrInvalidInput)
	}

	if req.DoctorID == "" {
		return fmt.Errorf("%w: doctorID is required", ErrInvalidInput)
	}

	if req.ConsultationTypeID == "" {
		return fmt.Errorf("%w: consultationTypeID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.Slot.Start.Validate(); err != nil {
		return fmt.Errorf("%w: slot start: %v", ErrInvalidInput, err)
	}

	if err := req.Slot.End.Validate(); err != nil {
		return fmt.Errorf("%w: slot end: %v", ErrInvalidInput, err)
	}

	if !req.Slot.Start.IsBefore(req.Slot.End) {
		return fmt.Errorf("%w: slot start must be before slot end", ErrInvalidInput)
	}

	if req.Symptoms != nil && len(*req.Symptoms) > domain.MaxSymptomsLength {
		return fmt.Errorf("%w: symptoms exceed %d characters", ErrInvalidInput, domain.MaxSymptomsLength)
	}

	return nil
}

// validateSlotInTemplate проверяет точное вхождение слота в расписание дня
// Сравнение только по полному совпадению пары {start, end}
func validateSlotInTemplate(slot domain.TimeRange, day domain.DayTemplate) error {
	for _, templateSlot := range day.Slots {
		if slot.Equal(templateSlot) {
			return nil
		}
	}
	return ErrSlotNotInTemplate
}
