package update_consultation_status

import (
	"time"

	"github.com/medbridge-ng/consultation-service/internal/domain"
	updateStatus "github.com/medbridge-ng/consultation-service/internal/usecase/update_consultation_status"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status      string              `json:"status"`
	MedicalInfo *domain.MedicalInfo `json:"medicalInfo,omitempty"`
}

// UpdateStatusResponse HTTP response model
type UpdateStatusResponse struct {
	ID          string     `json:"id"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *updateStatus.Response) *UpdateStatusResponse {
	return &UpdateStatusResponse{
		ID:          resp.ID,
		Status:      resp.Status,
		CompletedAt: resp.CompletedAt,
		CancelledAt: resp.CancelledAt,
		UpdatedAt:   resp.UpdatedAt,
	}
}
