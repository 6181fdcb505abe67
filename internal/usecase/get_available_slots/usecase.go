package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/medbridge-ng/consultation-service/internal/domain"
	doctorRepo "github.com/medbridge-ng/consultation-service/internal/infra/storage/doctor"
)

// UseCase use case для получения доступных слотов доктора
type UseCase struct {
	doctorRepo       DoctorRepository
	consultationRepo ConsultationRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	doctorRepo DoctorRepository,
	consultationRepo ConsultationRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		doctorRepo:       doctorRepo,
		consultationRepo: consultationRepo,
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: doctor=%s, date=%s",
		req.DoctorID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем шаблон доступности доктора
	template, err := uc.doctorRepo.GetAvailability(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			uc.logger.Warn("GetAvailableSlots: doctor id=%s not found", req.DoctorID)
			return nil, ErrDoctorNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get availability for doctor=%s: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	// 3. Определяем день недели по дате
	weekday := domain.WeekdayName(req.Date)

	// 4. Шаблон не задан вовсе - пустой список с пояснением, без ошибки.
	// От случая недоступного дня отличается только текстом сообщения
	if template == nil || template.IsEmpty() {
		uc.logger.Info("GetAvailableSlots: doctor id=%s has no availability set", req.DoctorID)
		return &Response{
			DoctorID: req.DoctorID,
			Date:     req.Date,
			Weekday:  weekday,
			Timezone: domain.DefaultTimezone,
			Slots:    []domain.TimeRange{},
			Message:  "Doctor has no availability set",
		}, nil
	}

	timezone := template.Timezone
	if timezone == "" {
		timezone = domain.DefaultTimezone
	}

	// 5. День отсутствует в шаблоне или помечен недоступным - пустой список
	// с пояснением, без ошибки
	day, ok := template.Day(weekday)
	if !ok || !day.Available {
		uc.logger.Info("GetAvailableSlots: doctor=%s is not available on %s", req.DoctorID, weekday)
		return &Response{
			DoctorID: req.DoctorID,
			Date:     req.Date,
			Weekday:  weekday,
			Timezone: timezone,
			Slots:    []domain.TimeRange{},
			Message:  fmt.Sprintf("Doctor is not available on %s", weekday),
		}, nil
	}

	// 6. Получаем занятые консультации на эту дату (всё, кроме cancelled)
	booked, err := uc.consultationRepo.GetBookedForDay(ctx, req.DoctorID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked consultations for doctor=%s: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get booked consultations: %v", ErrInternal, err)
	}

	// 7. Вычитаем занятые слоты из слотов шаблона
	slots := subtractBookedSlots(day.Slots, booked)

	uc.logger.Info("GetAvailableSlots: doctor=%s, date=%s: %d of %d slots available",
		req.DoctorID, req.Date.Format(domain.DateFormat), len(slots), len(day.Slots))

	return &Response{
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Weekday:   weekday,
		Timezone:  timezone,
		Available: true,
		Slots:     slots,
	}, nil
}
