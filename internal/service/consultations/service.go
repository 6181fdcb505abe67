package consultations

import (
	"context"
	"errors"
	"fmt"

	"github.com/medbridge-ng/consultation-service/internal/domain"
	consultationRepo "github.com/medbridge-ng/consultation-service/internal/infra/storage/consultation"
	"github.com/medbridge-ng/consultation-service/internal/service/consultations/models"
)

// Service сервис для чтения консультаций
type Service struct {
	consultationRepo ConsultationRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса консультаций
func NewService(consultationRepo ConsultationRepository, logger Logger) *Service {
	return &Service{
		consultationRepo: consultationRepo,
		logger:           logger,
	}
}

// GetByID получает консультацию по ID
// Консультацию видят только её пациент и её доктор
func (s *Service) GetByID(ctx context.Context, id, requesterID string) (*models.ConsultationResponse, error) {
	s.logger.Info("GetByID: fetching consultation id=%s for user=%s", id, requesterID)

	consultation, err := s.consultationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, consultationRepo.ErrConsultationNotFound) {
			s.logger.Warn("GetByID: consultation id=%s not found", id)
			return nil, ErrConsultationNotFound
		}
		s.logger.Error("GetByID: repository error for consultation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if consultation.PatientID != requesterID && consultation.DoctorID != requesterID {
		s.logger.Warn("GetByID: access denied for user=%s to consultation id=%s", requesterID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainConsultation(consultation), nil
}

// GetPatientConsultations получает историю консультаций пациента
// Сортировка по времени приёма по убыванию (сначала свежие)
func (s *Service) GetPatientConsultations(ctx context.Context, req *models.GetPatientConsultationsRequest) (*models.ConsultationListResponse, error) {
	s.logger.Info("GetPatientConsultations: patient=%s, status=%v", req.PatientID, req.Status)

	filter := domain.ConsultationsFilter{PatientID: &req.PatientID}

	if req.Status != nil {
		status, ok := models.ToDomainStatus(*req.Status)
		if !ok {
			s.logger.Warn("GetPatientConsultations: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *req.Status)
		}
		filter.Status = &status
	}

	consultations, err := s.consultationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("GetPatientConsultations: repository error for patient=%s: %v", req.PatientID, err)
		return nil, fmt.Errorf("%w: GetPatientConsultations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetPatientConsultations: fetched %d consultations for patient=%s", len(consultations), req.PatientID)
	return models.FromDomainConsultationList(consultations), nil
}

// GetDoctorConsultations получает приёмы доктора
// Опционально фильтрует по дате и статусу; сортировка по времени приёма
// по возрастанию (порядок приёма в течение дня)
func (s *Service) GetDoctorConsultations(ctx context.Context, req *models.GetDoctorConsultationsRequest) (*models.ConsultationListResponse, error) {
	s.logger.Info("GetDoctorConsultations: doctor=%s, status=%v, date=%v", req.DoctorID, req.Status, req.Date)

	filter := domain.ConsultationsFilter{
		DoctorID: &req.DoctorID,
		Date:     req.Date,
	}

	if req.Status != nil {
		status, ok := models.ToDomainStatus(*req.Status)
		if !ok {
			s.logger.Warn("GetDoctorConsultations: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *req.Status)
		}
		filter.Status = &status
	}

	consultations, err := s.consultationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("GetDoctorConsultations: repository error for doctor=%s: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: GetDoctorConsultations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetDoctorConsultations: fetched %d consultations for doctor=%s", len(consultations), req.DoctorID)
	return models.FromDomainConsultationList(consultations), nil
}
