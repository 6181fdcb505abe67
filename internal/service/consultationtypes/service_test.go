package consultationtypes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medbridge-ng/consultation-service/internal/domain"
	"github.com/medbridge-ng/consultation-service/internal/service/consultationtypes/models"
)

type fakeTypeRepo struct {
	created *domain.ConsultationType
	err     error
}

func (f *fakeTypeRepo) Create(_ context.Context, t *domain.ConsultationType) (*domain.ConsultationType, error) {
	if f.err != nil {
		return nil, f.err
	}
	created := *t
	created.ID = "type-1"
	f.created = &created
	return &created, nil
}

func (f *fakeTypeRepo) List(_ context.Context) ([]*domain.ConsultationType, error) {
	return nil, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreate_Success(t *testing.T) {
	repo := &fakeTypeRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateTypeRequest{
		Name:          "General Consultation",
		Fee:           5000,
		DoctorEarning: 4000,
		PlatformFee:   1000,
	})
	require.NoError(t, err)
	assert.Equal(t, "type-1", resp.ID)
	assert.Equal(t, float64(5000), resp.Fee)
}

func TestValidateCreateType_FractionalSplit(t *testing.T) {
	// 0.10 + 0.20 не равно 0.30 в float64; разбиение всё равно корректно
	err := validateCreateType(&models.CreateTypeRequest{
		Name:          "Follow-up",
		Fee:           0.30,
		DoctorEarning: 0.10,
		PlatformFee:   0.20,
	})
	assert.NoError(t, err)
}

func TestValidateCreateType_Errors(t *testing.T) {
	tests := []struct {
		name string
		req  *models.CreateTypeRequest
	}{
		{
			name: "missing name",
			req:  &models.CreateTypeRequest{Fee: 5000, DoctorEarning: 4000, PlatformFee: 1000},
		},
		{
			name: "negative fee",
			req:  &models.CreateTypeRequest{Name: "X", Fee: -1, DoctorEarning: 0, PlatformFee: 0},
		},
		{
			name: "split does not add up",
			req:  &models.CreateTypeRequest{Name: "X", Fee: 5000, DoctorEarning: 4000, PlatformFee: 500},
		},
		{
			name: "split off by one kobo",
			req:  &models.CreateTypeRequest{Name: "X", Fee: 5000, DoctorEarning: 4000.01, PlatformFee: 1000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, validateCreateType(tt.req), ErrInvalidInput)
		})
	}
}
