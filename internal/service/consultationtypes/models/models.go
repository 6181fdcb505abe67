package models

import (
	"time"

	"github.com/medbridge-ng/consultation-service/internal/domain"
)

// CreateTypeRequest запрос на создание типа консультации
type CreateTypeRequest struct {
	Name          string  `json:"name"`
	Fee           float64 `json:"fee"`
	DoctorEarning float64 `json:"doctorEarning"`
	PlatformFee   float64 `json:"platformFee"`
	IsSpecialist  bool    `json:"isSpecialist,omitempty"`
	IsFollowUp    bool    `json:"isFollowUp,omitempty"`
	Description   string  `json:"description,omitempty"`
}

// TypeResponse ответ с данными типа консультации
type TypeResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Fee           float64   `json:"fee"`
	DoctorEarning float64   `json:"doctorEarning"`
	PlatformFee   float64   `json:"platformFee"`
	IsSpecialist  bool      `json:"isSpecialist"`
	IsFollowUp    bool      `json:"isFollowUp"`
	Description   string    `json:"description,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// TypeListResponse ответ со списком типов консультаций
type TypeListResponse struct {
	ConsultationTypes []TypeResponse `json:"consultationTypes"`
}

// FromDomainType конвертирует domain модель в DTO
func FromDomainType(t *domain.ConsultationType) *TypeResponse {
	if t == nil {
		return nil
	}
	return &TypeResponse{
		ID:            t.ID,
		Name:          t.Name,
		Fee:           t.Fee,
		DoctorEarning: t.DoctorEarning,
		PlatformFee:   t.PlatformFee,
		IsSpecialist:  t.IsSpecialist,
		IsFollowUp:    t.IsFollowUp,
		Description:   t.Description,
		CreatedAt:     t.CreatedAt,
	}
}

// FromDomainTypeList конвертирует список domain моделей в DTO
func FromDomainTypeList(types []*domain.ConsultationType) *TypeListResponse {
	result := make([]TypeResponse, 0, len(types))
	for _, t := range types {
		result = append(result, *FromDomainType(t))
	}
	return &TypeListResponse{ConsultationTypes: result}
}
