package models

import (
	"time"

	"github.com/medbridge-ng/consultation-service/internal/domain"
)

// Request модели

// ListDoctorsRequest фильтры каталога докторов
type ListDoctorsRequest struct {
	Specialty     *string `json:"specialty,omitempty"`
	Language      *string `json:"language,omitempty"`
	Mode          *string `json:"mode,omitempty"`
	Gender        *string `json:"gender,omitempty"`
	MinExperience *int    `json:"minExperience,omitempty"`
	Location      *string `json:"location,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListDoctorsRequest) ToDomainFilter() domain.DoctorsFilter {
	return domain.DoctorsFilter{
		Specialty:     r.Specialty,
		Language:      r.Language,
		Mode:          r.Mode,
		Gender:        r.Gender,
		MinExperience: r.MinExperience,
		Location:      r.Location,
	}
}

// UpdateAvailabilityRequest запрос на замену шаблона доступности
type UpdateAvailabilityRequest struct {
	DoctorID     string                      // ID доктора из пути
	RequesterID  string                      // ID доктора из токена
	Availability domain.AvailabilityTemplate // Новый шаблон целиком
}

// Response модели

// DoctorResponse публичный профиль доктора
// Телефон и данные лицензии наружу не отдаются
type DoctorResponse struct {
	ID               string   `json:"id"`
	FullName         string   `json:"fullName"`
	Email            *string  `json:"email,omitempty"`
	Location         string   `json:"location"`
	Specialty        string   `json:"specialty"`
	ExperienceYears  int      `json:"experienceYears"`
	LanguagesSpoken  []string `json:"languagesSpoken"`
	Gender           *string  `json:"gender,omitempty"`
	Bio              *string  `json:"bio,omitempty"`
	Focus            *string  `json:"focus,omitempty"`
	ConsultationMode string   `json:"consultationMode"`

	Availability *domain.AvailabilityTemplate `json:"availability,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// DoctorListResponse ответ со списком докторов
type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
}

// Методы конвертации

// FromDomainDoctor конвертирует domain модель в DTO
func FromDomainDoctor(d *domain.Doctor) *DoctorResponse {
	if d == nil {
		return nil
	}

	languages := d.LanguagesSpoken
	if languages == nil {
		languages = []string{}
	}

	return &DoctorResponse{
		ID:               d.ID,
		FullName:         d.FullName,
		Email:            d.Email,
		Location:         d.Location,
		Specialty:        d.Specialty,
		ExperienceYears:  d.ExperienceYears,
		LanguagesSpoken:  languages,
		Gender:           d.Gender,
		Bio:              d.Bio,
		Focus:            d.Focus,
		ConsultationMode: d.ConsultationMode,
		Availability:     d.Availability,
		CreatedAt:        d.CreatedAt,
	}
}

// FromDomainDoctorList конвертирует список domain моделей в DTO
func FromDomainDoctorList(doctors []*domain.Doctor) *DoctorListResponse {
	result := make([]DoctorResponse, 0, len(doctors))
	for _, d := range doctors {
		result = append(result, *FromDomainDoctor(d))
	}
	return &DoctorListResponse{Doctors: result}
}
