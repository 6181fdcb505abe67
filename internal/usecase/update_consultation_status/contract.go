package update_consultation_status

import (
	"context"
	"time"

	"github.com/medbridge-ng/consultation-service/internal/domain"
	consultationRepo "github.com/medbridge-ng/consultation-service/internal/infra/storage/consultation"
)

// ConsultationRepository интерфейс репозитория консультаций
type ConsultationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Consultation, error)
	UpdateStatus(ctx context.Context, id string, update consultationRepo.StatusUpdate) error
}

// Notifier отправляет уведомление об изменении статуса
// Вызывается после записи; сбои не влияют на результат
type Notifier interface {
	ConsultationStatusChanged(ctx context.Context, c *domain.Consultation)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
