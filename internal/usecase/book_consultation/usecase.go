package book_consultation

import (
	"context"
	"errors"
	"fmt"

	"github.com/medbridge-ng/consultation-service/internal/domain"
	consultationRepo "github.com/medbridge-ng/consultation-service/internal/infra/storage/consultation"
	ctypeRepo "github.com/medbridge-ng/consultation-service/internal/infra/storage/consultationtype"
	doctorRepo "github.com/medbridge-ng/consultation-service/internal/infra/storage/doctor"
	patientRepo "github.com/medbridge-ng/consultation-service/internal/infra/storage/patient"
)

// UseCase use case для бронирования консультации
type UseCase struct {
	consultationRepo ConsultationRepository
	doctorRepo       DoctorRepository
	patientRepo      PatientRepository
	typeRepo         ConsultationTypeRepository
	txManager        TransactionManager
	notifier         Notifier
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	consultationRepo ConsultationRepository,
	doctorRepo DoctorRepository,
	patientRepo PatientRepository,
	typeRepo ConsultationTypeRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		consultationRepo: consultationRepo,
		doctorRepo:       doctorRepo,
		patientRepo:      patientRepo,
		typeRepo:         typeRepo,
		txManager:        txManager,
		notifier:         notifier,
		logger:           logger,
	}
}

// Execute выполняет use case бронирования консультации
// Проверка и вставка выполняются в одной сериализуемой транзакции с
// блокировкой занятых слотов дня (FOR UPDATE); уникальный индекс хранилища
// страхует от гонки на случай конкурентной фиксации
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookConsultation: patient=%s, doctor=%s, date=%s, slot=%s-%s",
		req.PatientID, req.DoctorID, req.Date.Format(domain.DateFormat), req.Slot.Start, req.Slot.End)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookConsultation: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование пациента
	if _, err := uc.patientRepo.GetByID(ctx, req.PatientID); err != nil {
		if errors.Is(err, patientRepo.ErrPatientNotFound) {
			uc.logger.Warn("BookConsultation: patient id=%s not found", req.PatientID)
			return nil, ErrPatientNotFound
		}
		uc.logger.Error("BookConsultation: failed to get patient id=%s: %v", req.PatientID, err)
		return nil, fmt.Errorf("%w: failed to get patient: %v", ErrInternal, err)
	}

	// 3. Получаем доктора вместе с шаблоном доступности
	doctor, err := uc.doctorRepo.GetByID(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			uc.logger.Warn("BookConsultation: doctor id=%s not found", req.DoctorID)
			return nil, ErrDoctorNotFound
		}
		uc.logger.Error("BookConsultation: failed to get doctor id=%s: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get doctor: %v", ErrInternal, err)
	}

	// 4. Проверяем существование типа консультации
	if _, err := uc.typeRepo.GetByID(ctx, req.ConsultationTypeID); err != nil {
		if errors.Is(err, ctypeRepo.ErrTypeNotFound) {
			uc.logger.Warn("BookConsultation: consultation type id=%s not found", req.ConsultationTypeID)
			return nil, ErrTypeNotFound
		}
		uc.logger.Error("BookConsultation: failed to get consultation type id=%s: %v", req.ConsultationTypeID, err)
		return nil, fmt.Errorf("%w: failed to get consultation type: %v", ErrInternal, err)
	}

	// 5. Проверяем расписание доктора
	template := doctor.Availability
	if template == nil || template.IsEmpty() {
		uc.logger.Warn("BookConsultation: doctor id=%s has no availability set", req.DoctorID)
		return nil, ErrNoAvailability
	}

	weekday := domain.WeekdayName(req.Date)
	day, ok := template.Day(weekday)
	if !ok || !day.Available {
		uc.logger.Warn("BookConsultation: doctor=%s is not available on %s", req.DoctorID, weekday)
		return nil, ErrDoctorNotAvailable
	}

	// 6. Проверяем, что запрошенный слот входит в расписание дня
	if err := validateSlotInTemplate(req.Slot, day); err != nil {
		uc.logger.Warn("BookConsultation: slot %s-%s not in schedule of doctor=%s on %s",
			req.Slot.Start, req.Slot.End, req.DoctorID, weekday)
		return nil, err
	}

	// 7. Вычисляем абсолютные метки времени приёма в таймзоне доктора
	loc := template.Location()
	appointmentTime, err := req.Slot.Start.OnDate(req.Date, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve appointment time: %v", ErrInternal, err)
	}
	appointmentEndTime, err := req.Slot.End.OnDate(req.Date, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve appointment end time: %v", ErrInternal, err)
	}

	language := req.Language
	if language == nil {
		defaultLang := domain.DefaultLanguage
		language = &defaultLang
	}

	var result *domain.Consultation

	// 8. Проверка занятости и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Берём занятые слоты дня с блокировкой (FOR UPDATE)
		bookedConsultations, err := uc.consultationRepo.GetBookedForDay(txCtx, req.DoctorID, req.Date)
		if err != nil {
			uc.logger.Error("BookConsultation: failed to get booked consultations: %v", err)
			return fmt.Errorf("%w: failed to get booked consultations: %v", ErrInternal, err)
		}

		// 8.2. Слот занят, если существует консультация с точно такой же парой {start, end}
		for _, c := range bookedConsultations {
			if req.Slot.Equal(c.BookedInterval()) {
				uc.logger.Warn("BookConsultation: slot %s-%s already taken for doctor=%s on %s",
					req.Slot.Start, req.Slot.End, req.DoctorID, req.Date.Format(domain.DateFormat))
				return ErrSlotNotAvailable
			}
		}

		// 8.3. Создаем консультацию в статусе pending
		consultation := &domain.Consultation{
			PatientID:          req.PatientID,
			DoctorID:           req.DoctorID,
			ConsultationTypeID: req.ConsultationTypeID,
			AppointmentDate:    req.Date,
			SlotStart:          req.Slot.Start,
			SlotEnd:            req.Slot.End,
			AppointmentTime:    appointmentTime,
			AppointmentEndTime: appointmentEndTime,
			Status:             domain.StatusPending,
			PaymentStatus:      domain.PaymentPending,
			PaymentMethod:      req.PaymentMethod,
			Language:           language,
			Symptoms:           req.Symptoms,
			MedicalInfo:        req.MedicalInfo,
		}

		created, err := uc.consultationRepo.Create(txCtx, consultation)
		if err != nil {
			// Конкурентная вставка того же слота упирается в уникальный индекс
			if errors.Is(err, consultationRepo.ErrSlotTaken) {
				uc.logger.Warn("BookConsultation: slot %s-%s taken by concurrent booking", req.Slot.Start, req.Slot.End)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("BookConsultation: failed to create consultation: %v", err)
			return fmt.Errorf("%w: failed to create consultation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookConsultation: successfully created consultation id=%s", result.ID)

	// 9. Уведомляем после фиксации транзакции
	uc.notifier.ConsultationBooked(ctx, result)

	return &Response{
		ID:                 result.ID,
		PatientID:          result.PatientID,
		DoctorID:           result.DoctorID,
		ConsultationTypeID: result.ConsultationTypeID,
		AppointmentDate:    result.AppointmentDate,
		SlotStart:          result.SlotStart,
		SlotEnd:            result.SlotEnd,
		AppointmentTime:    result.AppointmentTime,
		AppointmentEndTime: result.AppointmentEndTime,
		Status:             string(result.Status),
		PaymentStatus:      result.PaymentStatus,
		CreatedAt:          result.CreatedAt,
	}, nil
}
