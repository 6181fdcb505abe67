package update_consultation_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/medbridge-ng/consultation-service/internal/domain"
	consultationRepo "github.com/medbridge-ng/consultation-service/internal/infra/storage/consultation"
)

// UseCase use case для перевода консультации в новый статус
type UseCase struct {
	consultationRepo ConsultationRepository
	notifier         Notifier
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	consultationRepo ConsultationRepository,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		consultationRepo: consultationRepo,
		notifier:         notifier,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case изменения статуса консультации
// Статус проверяется на членство в перечислении ДО любого чтения или
// записи; завершённые состояния (completed, cancelled, no-show)
// переходов не допускают
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateConsultationStatus: consultation=%s, status=%s", req.ConsultationID, req.Status)

	// 1. Валидация входных данных
	if req.ConsultationID == "" {
		return nil, fmt.Errorf("%w: consultationID is required", ErrInvalidInput)
	}
	if req.Status == "" {
		return nil, fmt.Errorf("%w: status is required", ErrInvalidInput)
	}

	// 2. Статус вне перечисления отклоняется без обращения к хранилищу
	newStatus := domain.ConsultationStatus(req.Status)
	if !newStatus.IsValid() {
		uc.logger.Warn("UpdateConsultationStatus: invalid status %q", req.Status)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	// 3. Получаем текущее состояние консультации
	consultation, err := uc.consultationRepo.GetByID(ctx, req.ConsultationID)
	if err != nil {
		if errors.Is(err, consultationRepo.ErrConsultationNotFound) {
			uc.logger.Warn("UpdateConsultationStatus: consultation id=%s not found", req.ConsultationID)
			return nil, ErrConsultationNotFound
		}
		uc.logger.Error("UpdateConsultationStatus: failed to get consultation id=%s: %v", req.ConsultationID, err)
		return nil, fmt.Errorf("%w: failed to get consultation: %v", ErrInternal, err)
	}

	// 4. Из завершённого состояния переходов нет
	if consultation.Status.IsTerminal() {
		uc.logger.Warn("UpdateConsultationStatus: consultation id=%s is already %s",
			req.ConsultationID, consultation.Status)
		return nil, fmt.Errorf("%w: %s", ErrTerminalStatus, consultation.Status)
	}

	// 5. Собираем обновление со штампами времени перехода
	now := uc.timeProvider.Now()
	update := consultationRepo.StatusUpdate{Status: newStatus}

	switch newStatus {
	case domain.StatusCompleted:
		update.CompletedAt = &now
	case domain.StatusCancelled, domain.StatusNoShow:
		update.CancelledAt = &now
	}

	if req.MedicalInfo != nil {
		merged := mergeMedicalInfo(consultation.MedicalInfo, *req.MedicalInfo)
		update.MedicalInfo = &merged
	}

	// 6. Применяем переход
	if err := uc.consultationRepo.UpdateStatus(ctx, req.ConsultationID, update); err != nil {
		if errors.Is(err, consultationRepo.ErrConsultationNotFound) {
			return nil, ErrConsultationNotFound
		}
		uc.logger.Error("UpdateConsultationStatus: failed to update consultation id=%s: %v", req.ConsultationID, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	uc.logger.Info("UpdateConsultationStatus: consultation id=%s moved %s -> %s",
		req.ConsultationID, consultation.Status, newStatus)

	// 7. Уведомляем после записи
	consultation.Status = newStatus
	if update.CompletedAt != nil {
		consultation.CompletedAt = update.CompletedAt
	}
	if update.CancelledAt != nil {
		consultation.CancelledAt = update.CancelledAt
	}
	uc.notifier.ConsultationStatusChanged(ctx, consultation)

	return &Response{
		ID:          consultation.ID,
		Status:      string(newStatus),
		CompletedAt: update.CompletedAt,
		CancelledAt: update.CancelledAt,
		UpdatedAt:   now,
	}, nil
}

// mergeMedicalInfo накладывает непустые поля дополнения на существующую
// медкарту; пустые поля дополнения существующие значения не затирают
func mergeMedicalInfo(existing, incoming domain.MedicalInfo) domain.MedicalInfo {
	merged := existing

	if incoming.ReasonForVisit != "" {
		merged.ReasonForVisit = incoming.ReasonForVisit
	}
	if incoming.MedicalHistory != "" {
		merged.MedicalHistory = incoming.MedicalHistory
	}
	if incoming.Medications != "" {
		merged.Medications = incoming.Medications
	}
	if incoming.Allergies != "" {
		merged.Allergies = incoming.Allergies
	}
	if incoming.Diagnosis != "" {
		merged.Diagnosis = incoming.Diagnosis
	}
	if incoming.Prescription != "" {
		merged.Prescription = incoming.Prescription
	}
	if incoming.Notes != "" {
		merged.Notes = incoming.Notes
	}

	return merged
}
