package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medbridge-ng/consultation-service/internal/domain"
	doctorRepo "github.com/medbridge-ng/consultation-service/internal/infra/storage/doctor"
	"github.com/medbridge-ng/consultation-service/pkg/types"
)

type fakeDoctorRepo struct {
	template *domain.AvailabilityTemplate
	err      error
}

func (f *fakeDoctorRepo) GetAvailability(_ context.Context, _ string) (*domain.AvailabilityTemplate, error) {
	return f.template, f.err
}

type fakeConsultationRepo struct {
	booked []*domain.Consultation
	err    error
}

func (f *fakeConsultationRepo) GetBookedForDay(_ context.Context, _ string, _ time.Time) ([]*domain.Consultation, error) {
	return f.booked, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func slot(start, end string) domain.TimeRange {
	return domain.TimeRange{
		Start: types.TimeString(start),
		End:   types.TimeString(end),
	}
}

func booked(start, end string, status domain.ConsultationStatus) *domain.Consultation {
	return &domain.Consultation{
		SlotStart: types.TimeString(start),
		SlotEnd:   types.TimeString(end),
		Status:    status,
	}
}

// thursday is a fixed calendar Thursday used across tests
var thursday = time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)

func thursdayTemplate(slots ...domain.TimeRange) *domain.AvailabilityTemplate {
	return &domain.AvailabilityTemplate{
		Days: map[string]domain.DayTemplate{
			"thursday": {Available: true, Slots: slots},
		},
	}
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := NewUseCase(&fakeDoctorRepo{}, &fakeConsultationRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{DoctorID: "", Date: thursday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{DoctorID: "doc-1"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_DoctorNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeDoctorRepo{err: doctorRepo.ErrDoctorNotFound},
		&fakeConsultationRepo{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{DoctorID: "missing", Date: thursday})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestExecute_NoAvailabilitySet(t *testing.T) {
	tests := []struct {
		name     string
		template *domain.AvailabilityTemplate
	}{
		{name: "nil template", template: nil},
		{name: "empty template", template: &domain.AvailabilityTemplate{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(
				&fakeDoctorRepo{template: tt.template},
				&fakeConsultationRepo{},
				nopLogger{},
			)

			resp, err := uc.Execute(context.Background(), &Request{DoctorID: "doc-1", Date: thursday})
			require.NoError(t, err)
			assert.False(t, resp.Available)
			assert.Empty(t, resp.Slots)
			assert.Equal(t, "Doctor has no availability set", resp.Message)
		})
	}
}

func TestExecute_DayNotAvailable(t *testing.T) {
	tests := []struct {
		name     string
		template *domain.AvailabilityTemplate
	}{
		{
			name: "weekday absent from template",
			template: &domain.AvailabilityTemplate{
				Days: map[string]domain.DayTemplate{
					"monday": {Available: true, Slots: []domain.TimeRange{slot("09:00", "09:30")}},
				},
			},
		},
		{
			name: "weekday marked unavailable",
			template: &domain.AvailabilityTemplate{
				Days: map[string]domain.DayTemplate{
					"thursday": {Available: false, Slots: []domain.TimeRange{slot("09:00", "09:30")}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(
				&fakeDoctorRepo{template: tt.template},
				&fakeConsultationRepo{},
				nopLogger{},
			)

			resp, err := uc.Execute(context.Background(), &Request{DoctorID: "doc-1", Date: thursday})
			require.NoError(t, err)
			assert.False(t, resp.Available)
			assert.Empty(t, resp.Slots)
			assert.Equal(t, "thursday", resp.Weekday)
			assert.Equal(t, "Doctor is not available on thursday", resp.Message)
		})
	}
}

func TestExecute_AllSlotsFreeWhenNothingBooked(t *testing.T) {
	template := thursdayTemplate(
		slot("09:00", "09:30"),
		slot("09:30", "10:00"),
		slot("14:00", "14:30"),
	)

	uc := NewUseCase(
		&fakeDoctorRepo{template: template},
		&fakeConsultationRepo{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{DoctorID: "doc-1", Date: thursday})
	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Len(t, resp.Slots, 3)
	assert.Empty(t, resp.Message)
}

func TestExecute_ExactMatchSubtraction(t *testing.T) {
	template := thursdayTemplate(
		slot("09:00", "09:30"),
		slot("09:30", "10:00"),
		slot("10:00", "10:30"),
	)

	uc := NewUseCase(
		&fakeDoctorRepo{template: template},
		&fakeConsultationRepo{booked: []*domain.Consultation{
			booked("09:30", "10:00", domain.StatusPending),
		}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{DoctorID: "doc-1", Date: thursday})
	require.NoError(t, err)
	assert.Equal(t, []domain.TimeRange{
		slot("09:00", "09:30"),
		slot("10:00", "10:30"),
	}, resp.Slots)
}

func TestExecute_PartialOverlapDoesNotRemoveSlot(t *testing.T) {
	// A booked interval that covers a template slot without matching its
	// exact {start, end} pair leaves the slot in the available list
	template := thursdayTemplate(
		slot("09:00", "09:30"),
		slot("09:30", "10:00"),
	)

	uc := NewUseCase(
		&fakeDoctorRepo{template: template},
		&fakeConsultationRepo{booked: []*domain.Consultation{
			booked("09:00", "10:00", domain.StatusConfirmed),
		}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{DoctorID: "doc-1", Date: thursday})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 2)
}

func TestExecute_Idempotent(t *testing.T) {
	template := thursdayTemplate(
		slot("09:00", "09:30"),
		slot("09:30", "10:00"),
	)
	consultations := &fakeConsultationRepo{booked: []*domain.Consultation{
		booked("09:00", "09:30", domain.StatusConfirmed),
	}}

	uc := NewUseCase(&fakeDoctorRepo{template: template}, consultations, nopLogger{})

	first, err := uc.Execute(context.Background(), &Request{DoctorID: "doc-1", Date: thursday})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), &Request{DoctorID: "doc-1", Date: thursday})
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}

func TestExecute_StoreFailurePropagates(t *testing.T) {
	uc := NewUseCase(
		&fakeDoctorRepo{template: thursdayTemplate(slot("09:00", "09:30"))},
		&fakeConsultationRepo{err: assert.AnError},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{DoctorID: "doc-1", Date: thursday})
	assert.ErrorIs(t, err, ErrInternal)
}
