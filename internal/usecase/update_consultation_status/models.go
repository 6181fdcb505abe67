package update_consultation_status

import (
	"time"

	"github.com/medbridge-ng/consultation-service/internal/domain"
)

// Request модель запроса на изменение статуса консультации
type Request struct {
	ConsultationID string              // ID консультации
	Status         string              // Запрошенный статус (как пришёл с клиента)
	MedicalInfo    *domain.MedicalInfo // Дополнения к медкарте (диагноз, назначения), опционально
}

// Response модель ответа с обновлённой консультацией
type Response struct {
	ID          string
	Status      string
	CompletedAt *time.Time
	CancelledAt *time.Time
	UpdatedAt   time.Time
}
