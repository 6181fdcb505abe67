package get_available_slots

import (
	"github.com/medbridge-ng/consultation-service/internal/domain"
)

// subtractBookedSlots вычитает занятые слоты из слотов шаблона
// Слот шаблона считается занятым, только если среди консультаций есть
// интервал с ТОЧНО такими же start и end. Частичные наложения занятыми
// не считаются: слоты расписания бронируются целиком, как записаны в
// шаблоне, и других интервалов в хранилище не бывает
//
// Примеры:
// - Шаблон 09:00-09:30, бронь 09:00-09:30 → слот занят
// - Шаблон 09:00-09:30, бронь 09:00-10:00 → слот свободен (пары не равны)
func subtractBookedSlots(templateSlots []domain.TimeRange, booked []*domain.Consultation) []domain.TimeRange {
	available := make([]domain.TimeRange, 0, len(templateSlots))

	for _, slot := range templateSlots {
		if !isSlotBooked(slot, booked) {
			available = append(available, slot)
		}
	}

	return available
}

// isSlotBooked проверяет, что слот занят одной из консультаций
func isSlotBooked(slot domain.TimeRange, booked []*domain.Consultation) bool {
	for _, c := range booked {
		if slot.Equal(c.BookedInterval()) {
			return true
		}
	}
	return false
}
