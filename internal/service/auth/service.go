package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/medbridge-ng/consultation-service/internal/domain"
	doctorRepo "github.com/medbridge-ng/consultation-service/internal/infra/storage/doctor"
	patientRepo "github.com/medbridge-ng/consultation-service/internal/infra/storage/patient"
	"github.com/medbridge-ng/consultation-service/internal/service/auth/models"
)

// Service сервис регистрации и входа по номеру телефона
// Личность подтверждается внешним каналом (OTP по WhatsApp/SMS) до вызова
// этих операций; паролей сервис не хранит
type Service struct {
	patientRepo PatientRepository
	doctorRepo  DoctorRepository
	secret      []byte
	accessTTL   time.Duration
	refreshTTL  time.Duration
	logger      Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(
	patientRepo PatientRepository,
	doctorRepo DoctorRepository,
	secret string,
	accessTTL, refreshTTL time.Duration,
	logger Logger,
) *Service {
	return &Service{
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
		secret:      []byte(secret),
		accessTTL:   accessTTL,
		refreshTTL:  refreshTTL,
		logger:      logger,
	}
}

// Secret возвращает ключ подписи для проверки токенов в middleware
func (s *Service) Secret() []byte {
	return s.secret
}

// RegisterPatient регистрирует пациента и выдаёт пару токенов
func (s *Service) RegisterPatient(ctx context.Context, req *models.RegisterPatientRequest) (*models.AuthResponse, error) {
	s.logger.Info("RegisterPatient: phone=%s", req.PhoneNumber)

	if req.PhoneNumber == "" {
		return nil, fmt.Errorf("%w: phoneNumber is required", ErrInvalidInput)
	}

	language := ""
	if req.Language != nil {
		language = *req.Language
	}

	patient := &domain.Patient{
		PhoneNumber:    req.PhoneNumber,
		Name:           req.Name,
		Language:       language,
		ReferralSource: req.ReferralSource,
		WhatsappOptIn:  req.WhatsappOptIn,
	}

	created, err := s.patientRepo.Create(ctx, patient)
	if err != nil {
		if errors.Is(err, patientRepo.ErrPatientAlreadyExists) {
			s.logger.Warn("RegisterPatient: phone=%s already registered", req.PhoneNumber)
			return nil, ErrAlreadyRegistered
		}
		s.logger.Error("RegisterPatient: repository error: %v", err)
		return nil, fmt.Errorf("%w: RegisterPatient - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RegisterPatient: created patient id=%s", created.ID)
	return s.authResponse(created.ID, domain.RolePatient)
}

// RegisterDoctor регистрирует доктора и выдаёт пару токенов
// Доктор создаётся активным, без шаблона доступности
func (s *Service) RegisterDoctor(ctx context.Context, req *models.RegisterDoctorRequest) (*models.AuthResponse, error) {
	s.logger.Info("RegisterDoctor: phone=%s", req.PhoneNumber)

	if err := validateRegisterDoctor(req); err != nil {
		s.logger.Warn("RegisterDoctor: validation failed: %v", err)
		return nil, err
	}

	mode := req.ConsultationMode
	if mode == "" {
		mode = domain.ModeBoth
	}

	doctor := &domain.Doctor{
		PhoneNumber:        req.PhoneNumber,
		FullName:           req.FullName,
		Email:              req.Email,
		Location:           req.Location,
		Specialty:          req.Specialty,
		ExperienceYears:    req.ExperienceYears,
		LanguagesSpoken:    req.LanguagesSpoken,
		Gender:             req.Gender,
		Bio:                req.Bio,
		Focus:              req.Focus,
		ConsultationMode:   mode,
		IsActive:           true,
		MDCNLicenseNumber:  req.MDCNLicenseNumber,
		MDCNCertificateURL: req.MDCNCertificateURL,
	}

	created, err := s.doctorRepo.Create(ctx, doctor)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorAlreadyExists) {
			s.logger.Warn("RegisterDoctor: phone=%s already registered", req.PhoneNumber)
			return nil, ErrAlreadyRegistered
		}
		s.logger.Error("RegisterDoctor: repository error: %v", err)
		return nil, fmt.Errorf("%w: RegisterDoctor - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RegisterDoctor: created doctor id=%s", created.ID)
	return s.authResponse(created.ID, domain.RoleDoctor)
}

// Login выполняет вход по номеру телефона в рамках роли
func (s *Service) Login(ctx context.Context, role string, req *models.LoginRequest) (*models.AuthResponse, error) {
	s.logger.Info("Login: role=%s, phone=%s", role, req.PhoneNumber)

	if req.PhoneNumber == "" {
		return nil, fmt.Errorf("%w: phoneNumber is required", ErrInvalidInput)
	}

	var userID string

	switch role {
	case domain.RolePatient:
		patient, err := s.patientRepo.GetByPhone(ctx, req.PhoneNumber)
		if err != nil {
			if errors.Is(err, patientRepo.ErrPatientNotFound) {
				s.logger.Warn("Login: patient phone=%s not found", req.PhoneNumber)
				return nil, ErrUserNotFound
			}
			s.logger.Error("Login: repository error: %v", err)
			return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
		}
		userID = patient.ID

	case domain.RoleDoctor:
		doctor, err := s.doctorRepo.GetByPhone(ctx, req.PhoneNumber)
		if err != nil {
			if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
				s.logger.Warn("Login: doctor phone=%s not found", req.PhoneNumber)
				return nil, ErrUserNotFound
			}
			s.logger.Error("Login: repository error: %v", err)
			return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
		}
		userID = doctor.ID

	default:
		s.logger.Warn("Login: unknown role %q", role)
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	s.logger.Info("Login: issued tokens for %s id=%s", role, userID)
	return s.authResponse(userID, role)
}

func (s *Service) authResponse(userID, role string) (*models.AuthResponse, error) {
	access, refresh, err := s.issueTokens(userID, role, time.Now())
	if err != nil {
		s.logger.Error("authResponse: failed to issue tokens for %s: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to issue tokens: %v", ErrInternal, err)
	}

	return &models.AuthResponse{
		UserID:       userID,
		Role:         role,
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

func validateRegisterDoctor(req *models.RegisterDoctorRequest) error {
	if req.PhoneNumber == "" {
		return fmt.Errorf("%w: phoneNumber is required", ErrInvalidInput)
	}
	if req.FullName == "" {
		return fmt.Errorf("%w: fullName is required", ErrInvalidInput)
	}
	if req.Specialty == "" {
		return fmt.Errorf("%w: specialty is required", ErrInvalidInput)
	}
	if req.ExperienceYears < 0 {
		return fmt.Errorf("%w: experienceYears must not be negative", ErrInvalidInput)
	}
	if req.Bio != nil && len(*req.Bio) > domain.MaxBioLength {
		return fmt.Errorf("%w: bio exceeds %d characters", ErrInvalidInput, domain.MaxBioLength)
	}
	if req.ConsultationMode != "" &&
		req.ConsultationMode != domain.ModeChat &&
		req.ConsultationMode != domain.ModeVoice &&
		req.ConsultationMode != domain.ModeBoth {
		return fmt.Errorf("%w: unknown consultation mode %q", ErrInvalidInput, req.ConsultationMode)
	}
	return nil
}
