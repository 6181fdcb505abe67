package consultationtypes

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/medbridge-ng/consultation-service/internal/domain"
	ctypeRepo "github.com/medbridge-ng/consultation-service/internal/infra/storage/consultationtype"
	"github.com/medbridge-ng/consultation-service/internal/service/consultationtypes/models"
)

// Service сервис справочника типов консультаций
type Service struct {
	typeRepo ConsultationTypeRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса типов консультаций
func NewService(typeRepo ConsultationTypeRepository, logger Logger) *Service {
	return &Service{
		typeRepo: typeRepo,
		logger:   logger,
	}
}

// Create создает новый тип консультации
// Разбиение гонорара должно сходиться: fee = doctorEarning + platformFee
func (s *Service) Create(ctx context.Context, req *models.CreateTypeRequest) (*models.TypeResponse, error) {
	s.logger.Info("Create: name=%s, fee=%.2f", req.Name, req.Fee)

	if err := validateCreateType(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.typeRepo.Create(ctx, &domain.ConsultationType{
		Name:          req.Name,
		Fee:           req.Fee,
		DoctorEarning: req.DoctorEarning,
		PlatformFee:   req.PlatformFee,
		IsSpecialist:  req.IsSpecialist,
		IsFollowUp:    req.IsFollowUp,
		Description:   req.Description,
	})
	if err != nil {
		if errors.Is(err, ctypeRepo.ErrTypeAlreadyExists) {
			s.logger.Warn("Create: type name=%s already exists", req.Name)
			return nil, ErrTypeAlreadyExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created consultation type id=%s", created.ID)
	return models.FromDomainType(created), nil
}

// List получает все типы консультаций
func (s *Service) List(ctx context.Context) (*models.TypeListResponse, error) {
	types, err := s.typeRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d consultation types", len(types))
	return models.FromDomainTypeList(types), nil
}

func validateCreateType(req *models.CreateTypeRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Fee < 0 || req.DoctorEarning < 0 || req.PlatformFee < 0 {
		return fmt.Errorf("%w: fees must not be negative", ErrInvalidInput)
	}
	// Сходимость разбиения проверяем в кобо: суммы вида 0.10 + 0.20
	// неточны в float64
	if toKobo(req.DoctorEarning)+toKobo(req.PlatformFee) != toKobo(req.Fee) {
		return fmt.Errorf("%w: fee must equal doctorEarning plus platformFee", ErrInvalidInput)
	}
	return nil
}

// toKobo переводит сумму в найре в целые кобо
func toKobo(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
