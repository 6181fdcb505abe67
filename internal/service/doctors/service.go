package doctors

import (
	"context"
	"errors"
	"fmt"

	doctorRepo "github.com/medbridge-ng/consultation-service/internal/infra/storage/doctor"
	"github.com/medbridge-ng/consultation-service/internal/service/doctors/models"
)

// Service сервис каталога докторов
type Service struct {
	doctorRepo DoctorRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса докторов
func NewService(doctorRepo DoctorRepository, logger Logger) *Service {
	return &Service{
		doctorRepo: doctorRepo,
		logger:     logger,
	}
}

// List получает активных докторов по фильтрам каталога
func (s *Service) List(ctx context.Context, req *models.ListDoctorsRequest) (*models.DoctorListResponse, error) {
	s.logger.Info("List: fetching doctors")

	doctors, err := s.doctorRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d doctors", len(doctors))
	return models.FromDomainDoctorList(doctors), nil
}

// GetByID получает публичный профиль доктора
func (s *Service) GetByID(ctx context.Context, id string) (*models.DoctorResponse, error) {
	s.logger.Info("GetByID: fetching doctor id=%s", id)

	doctor, err := s.doctorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			s.logger.Warn("GetByID: doctor id=%s not found", id)
			return nil, ErrDoctorNotFound
		}
		s.logger.Error("GetByID: repository error for doctor id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDoctor(doctor), nil
}

// UpdateAvailability заменяет шаблон доступности доктора целиком
// Доктор может менять только собственное расписание
func (s *Service) UpdateAvailability(ctx context.Context, req *models.UpdateAvailabilityRequest) error {
	s.logger.Info("UpdateAvailability: doctor=%s, requester=%s", req.DoctorID, req.RequesterID)

	if req.DoctorID != req.RequesterID {
		s.logger.Warn("UpdateAvailability: requester=%s cannot modify doctor=%s", req.RequesterID, req.DoctorID)
		return ErrAccessDenied
	}

	if err := req.Availability.Validate(); err != nil {
		s.logger.Warn("UpdateAvailability: invalid template for doctor=%s: %v", req.DoctorID, err)
		return fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}

	if err := s.doctorRepo.UpdateAvailability(ctx, req.DoctorID, &req.Availability); err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			s.logger.Warn("UpdateAvailability: doctor id=%s not found", req.DoctorID)
			return ErrDoctorNotFound
		}
		s.logger.Error("UpdateAvailability: repository error for doctor=%s: %v", req.DoctorID, err)
		return fmt.Errorf("%w: UpdateAvailability - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateAvailability: doctor=%s availability replaced", req.DoctorID)
	return nil
}
