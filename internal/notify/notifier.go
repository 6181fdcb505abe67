// Package notify рассылка уведомлений о событиях консультаций.
// Отправка выполняется после фиксации транзакции и никогда не влияет
// на результат операции: сбой уведомления логируется и теряется.
package notify

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/medbridge-ng/consultation-service/internal/domain"
	"github.com/medbridge-ng/consultation-service/pkg/psqlbuilder"
)

// Событийные типы уведомлений
const (
	EventBooked        = "consultation_booked"
	EventStatusChanged = "consultation_status_changed"
)

// Notifier пишет событие в журнал уведомлений для последующей доставки
// внешним каналом (WhatsApp, SMS)
type Notifier struct {
	db  DBExecutor
	log Logger
}

// New создает новый Notifier
func New(db DBExecutor, log Logger) *Notifier {
	return &Notifier{db: db, log: log}
}

// ConsultationBooked уведомляет пациента и доктора о новом бронировании
func (n *Notifier) ConsultationBooked(ctx context.Context, c *domain.Consultation) {
	message := fmt.Sprintf(
		"Consultation booked for %s at %s",
		c.AppointmentDate.Format(domain.DateFormat),
		c.SlotStart,
	)
	n.record(ctx, EventBooked, c, message)
}

// ConsultationStatusChanged уведомляет об изменении статуса консультации
func (n *Notifier) ConsultationStatusChanged(ctx context.Context, c *domain.Consultation) {
	message := fmt.Sprintf("Consultation status changed to %s", c.Status)
	n.record(ctx, EventStatusChanged, c, message)
}

func (n *Notifier) record(ctx context.Context, event string, c *domain.Consultation, message string) {
	query, args, err := psqlbuilder.Insert("notification_logs").
		Columns("id", "event", "consultation_id", "patient_id", "doctor_id", "message").
		Values(uuid.NewString(), event, c.ID, c.PatientID, c.DoctorID, message).
		ToSql()

	if err != nil {
		n.log.Warn("notify: build %s query failed: %v", event, err)
		return
	}

	if _, err := n.db.ExecContext(ctx, query, args...); err != nil {
		n.log.Warn("notify: record %s for consultation %s failed: %v", event, c.ID, err)
		return
	}

	n.log.Info("notify: recorded %s for consultation %s", event, c.ID)
}
