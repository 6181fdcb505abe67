package update_consultation_status

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medbridge-ng/consultation-service/internal/domain"
	consultationRepo "github.com/medbridge-ng/consultation-service/internal/infra/storage/consultation"
)

type fakeConsultationRepo struct {
	consultation *domain.Consultation
	getErr       error
	updateErr    error
	updates      []consultationRepo.StatusUpdate
}

func (f *fakeConsultationRepo) GetByID(_ context.Context, _ string) (*domain.Consultation, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	c := *f.consultation
	return &c, nil
}

func (f *fakeConsultationRepo) UpdateStatus(_ context.Context, _ string, update consultationRepo.StatusUpdate) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = append(f.updates, update)
	return nil
}

type fakeNotifier struct {
	changed int
	last    *domain.Consultation
}

func (f *fakeNotifier) ConsultationStatusChanged(_ context.Context, c *domain.Consultation) {
	f.changed++
	f.last = c
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var fixedNow = time.Date(2026, 9, 3, 10, 30, 0, 0, time.UTC)

func pendingConsultation() *domain.Consultation {
	return &domain.Consultation{
		ID:        "consultation-1",
		Status:    domain.StatusPending,
		CreatedAt: fixedNow.Add(-time.Hour),
	}
}

func newTestUseCase(repo *fakeConsultationRepo) (*UseCase, *fakeNotifier) {
	notifier := &fakeNotifier{}
	uc := NewUseCase(repo, notifier, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: fixedNow}
	return uc, notifier
}

func TestExecute_ConfirmPending(t *testing.T) {
	repo := &fakeConsultationRepo{consultation: pendingConsultation()}
	uc, notifier := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		ConsultationID: "consultation-1",
		Status:         "confirmed",
	})
	require.NoError(t, err)

	assert.Equal(t, "confirmed", resp.Status)
	assert.Nil(t, resp.CompletedAt)
	assert.Nil(t, resp.CancelledAt)
	assert.Equal(t, 1, notifier.changed)
	assert.Equal(t, domain.StatusConfirmed, notifier.last.Status)
}

func TestExecute_CompleteStampsCompletedAt(t *testing.T) {
	repo := &fakeConsultationRepo{consultation: pendingConsultation()}
	uc, _ := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		ConsultationID: "consultation-1",
		Status:         "completed",
	})
	require.NoError(t, err)

	require.NotNil(t, resp.CompletedAt)
	assert.Equal(t, fixedNow, *resp.CompletedAt)
	assert.Nil(t, resp.CancelledAt)

	// Штамп завершения не раньше создания
	assert.False(t, resp.CompletedAt.Before(repo.consultation.CreatedAt))
}

func TestExecute_CancelAndNoShowStampCancelledAt(t *testing.T) {
	for _, status := range []string{"cancelled", "no-show"} {
		t.Run(status, func(t *testing.T) {
			repo := &fakeConsultationRepo{consultation: pendingConsultation()}
			uc, _ := newTestUseCase(repo)

			resp, err := uc.Execute(context.Background(), &Request{
				ConsultationID: "consultation-1",
				Status:         status,
			})
			require.NoError(t, err)

			require.NotNil(t, resp.CancelledAt)
			assert.Equal(t, fixedNow, *resp.CancelledAt)
			assert.Nil(t, resp.CompletedAt)
		})
	}
}

func TestExecute_UnknownStatusRejectedWithoutMutation(t *testing.T) {
	repo := &fakeConsultationRepo{consultation: pendingConsultation()}
	uc, notifier := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		ConsultationID: "consultation-1",
		Status:         "archived",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Empty(t, repo.updates)
	assert.Zero(t, notifier.changed)
}

func TestExecute_TerminalStatusesRejectTransitions(t *testing.T) {
	for _, current := range []domain.ConsultationStatus{
		domain.StatusCompleted,
		domain.StatusCancelled,
		domain.StatusNoShow,
	} {
		t.Run(string(current), func(t *testing.T) {
			c := pendingConsultation()
			c.Status = current
			repo := &fakeConsultationRepo{consultation: c}
			uc, notifier := newTestUseCase(repo)

			_, err := uc.Execute(context.Background(), &Request{
				ConsultationID: "consultation-1",
				Status:         "confirmed",
			})
			assert.ErrorIs(t, err, ErrTerminalStatus)
			assert.Empty(t, repo.updates)
			assert.Zero(t, notifier.changed)
		})
	}
}

func TestExecute_NotFound(t *testing.T) {
	repo := &fakeConsultationRepo{getErr: consultationRepo.ErrConsultationNotFound}
	uc, _ := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		ConsultationID: "missing",
		Status:         "confirmed",
	})
	assert.ErrorIs(t, err, ErrConsultationNotFound)
}

func TestExecute_MedicalInfoMerge(t *testing.T) {
	c := pendingConsultation()
	c.MedicalInfo = domain.MedicalInfo{
		ReasonForVisit: "fever",
		Allergies:      "penicillin",
	}
	repo := &fakeConsultationRepo{consultation: c}
	uc, _ := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		ConsultationID: "consultation-1",
		Status:         "completed",
		MedicalInfo: &domain.MedicalInfo{
			Diagnosis:    "malaria",
			Prescription: "artemether 80mg",
		},
	})
	require.NoError(t, err)

	require.Len(t, repo.updates, 1)
	merged := repo.updates[0].MedicalInfo
	require.NotNil(t, merged)

	// Новые поля добавлены, существующие не затёрты
	assert.Equal(t, "malaria", merged.Diagnosis)
	assert.Equal(t, "artemether 80mg", merged.Prescription)
	assert.Equal(t, "fever", merged.ReasonForVisit)
	assert.Equal(t, "penicillin", merged.Allergies)
}

func TestExecute_StoreFailurePropagates(t *testing.T) {
	repo := &fakeConsultationRepo{
		consultation: pendingConsultation(),
		updateErr:    assert.AnError,
	}
	uc, notifier := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		ConsultationID: "consultation-1",
		Status:         "confirmed",
	})
	assert.ErrorIs(t, err, ErrInternal)
	assert.Zero(t, notifier.changed)
}
