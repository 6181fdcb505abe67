package book_consultation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medbridge-ng/consultation-service/internal/domain"
	consultationRepo "github.com/medbridge-ng/consultation-service/internal/infra/storage/consultation"
	doctorRepo "github.com/medbridge-ng/consultation-service/internal/infra/storage/doctor"
	"github.com/medbridge-ng/consultation-service/pkg/types"
)

type fakeConsultationRepo struct {
	booked    []*domain.Consultation
	createErr error
	created   []*domain.Consultation
}

func (f *fakeConsultationRepo) Create(_ context.Context, c *domain.Consultation) (*domain.Consultation, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	c.ID = "consultation-1"
	c.CreatedAt = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	f.created = append(f.created, c)
	// Созданная консультация видна следующим запросам занятости
	f.booked = append(f.booked, c)
	return c, nil
}

func (f *fakeConsultationRepo) GetBookedForDay(_ context.Context, _ string, _ time.Time) ([]*domain.Consultation, error) {
	return f.booked, nil
}

type fakeDoctorRepo struct {
	doctor *domain.Doctor
	err    error
}

func (f *fakeDoctorRepo) GetByID(_ context.Context, _ string) (*domain.Doctor, error) {
	return f.doctor, f.err
}

type fakePatientRepo struct {
	patient *domain.Patient
	err     error
}

func (f *fakePatientRepo) GetByID(_ context.Context, _ string) (*domain.Patient, error) {
	return f.patient, f.err
}

type fakeTypeRepo struct {
	ctype *domain.ConsultationType
	err   error
}

func (f *fakeTypeRepo) GetByID(_ context.Context, _ string) (*domain.ConsultationType, error) {
	return f.ctype, f.err
}

// fakeTxManager прогоняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeNotifier struct {
	booked int
}

func (f *fakeNotifier) ConsultationBooked(_ context.Context, _ *domain.Consultation) {
	f.booked++
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var thursday = time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)

func slot(start, end string) domain.TimeRange {
	return domain.TimeRange{Start: types.TimeString(start), End: types.TimeString(end)}
}

func testDoctor() *domain.Doctor {
	return &domain.Doctor{
		ID: "doc-1",
		Availability: &domain.AvailabilityTemplate{
			Days: map[string]domain.DayTemplate{
				"thursday": {
					Available: true,
					Slots: []domain.TimeRange{
						slot("09:00", "09:30"),
						slot("09:30", "10:00"),
					},
				},
			},
		},
	}
}

func validRequest() *Request {
	return &Request{
		PatientID:          "pat-1",
		DoctorID:           "doc-1",
		ConsultationTypeID: "type-1",
		Date:               thursday,
		Slot:               slot("09:00", "09:30"),
	}
}

func newTestUseCase(consultations *fakeConsultationRepo, doctor *domain.Doctor) (*UseCase, *fakeNotifier) {
	notifier := &fakeNotifier{}
	uc := NewUseCase(
		consultations,
		&fakeDoctorRepo{doctor: doctor},
		&fakePatientRepo{patient: &domain.Patient{ID: "pat-1"}},
		&fakeTypeRepo{ctype: &domain.ConsultationType{ID: "type-1"}},
		fakeTxManager{},
		notifier,
		nopLogger{},
	)
	return uc, notifier
}

func TestExecute_Success(t *testing.T) {
	consultations := &fakeConsultationRepo{}
	uc, notifier := newTestUseCase(consultations, testDoctor())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "consultation-1", resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, domain.PaymentPending, resp.PaymentStatus)
	assert.Equal(t, types.TimeString("09:00"), resp.SlotStart)
	assert.Equal(t, types.TimeString("09:30"), resp.SlotEnd)
	assert.Equal(t, 1, notifier.booked)

	// Метки времени приёма выводятся из даты и слота
	assert.Equal(t, time.Date(2026, 9, 3, 9, 0, 0, 0, time.UTC), resp.AppointmentTime)
	assert.Equal(t, time.Date(2026, 9, 3, 9, 30, 0, 0, time.UTC), resp.AppointmentEndTime)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc, _ := newTestUseCase(&fakeConsultationRepo{}, testDoctor())

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"missing patient", func(r *Request) { r.PatientID = "" }},
		{"missing doctor", func(r *Request) { r.DoctorID = "" }},
		{"missing type", func(r *Request) { r.ConsultationTypeID = "" }},
		{"missing date", func(r *Request) { r.Date = time.Time{} }},
		{"invalid slot start", func(r *Request) { r.Slot.Start = "9am" }},
		{"inverted slot", func(r *Request) { r.Slot = slot("10:00", "09:30") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_DoctorWithoutAvailability(t *testing.T) {
	doctor := &domain.Doctor{ID: "doc-1"}
	uc, _ := newTestUseCase(&fakeConsultationRepo{}, doctor)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNoAvailability)
}

func TestExecute_DoctorDayOff(t *testing.T) {
	doctor := testDoctor()
	doctor.Availability.Days["thursday"] = domain.DayTemplate{Available: false}
	uc, _ := newTestUseCase(&fakeConsultationRepo{}, doctor)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDoctorNotAvailable)
}

func TestExecute_SlotOutsideTemplate(t *testing.T) {
	uc, _ := newTestUseCase(&fakeConsultationRepo{}, testDoctor())

	req := validRequest()
	req.Slot = slot("11:00", "11:30")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotInTemplate)
}

func TestExecute_SlotAlreadyBooked(t *testing.T) {
	consultations := &fakeConsultationRepo{booked: []*domain.Consultation{
		{
			SlotStart: types.TimeString("09:00"),
			SlotEnd:   types.TimeString("09:30"),
			Status:    domain.StatusConfirmed,
		},
	}}
	uc, notifier := newTestUseCase(consultations, testDoctor())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Zero(t, notifier.booked)
}

func TestExecute_BookThenRebookSameSlot(t *testing.T) {
	consultations := &fakeConsultationRepo{}
	uc, _ := newTestUseCase(consultations, testDoctor())

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Len(t, consultations.created, 1)
}

func TestExecute_UniqueIndexRaceMapsToSlotNotAvailable(t *testing.T) {
	consultations := &fakeConsultationRepo{createErr: consultationRepo.ErrSlotTaken}
	uc, notifier := newTestUseCase(consultations, testDoctor())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Zero(t, notifier.booked)
}

func TestExecute_DoctorNotFound(t *testing.T) {
	notifier := &fakeNotifier{}
	uc := NewUseCase(
		&fakeConsultationRepo{},
		&fakeDoctorRepo{err: doctorRepo.ErrDoctorNotFound},
		&fakePatientRepo{patient: &domain.Patient{ID: "pat-1"}},
		&fakeTypeRepo{ctype: &domain.ConsultationType{ID: "type-1"}},
		fakeTxManager{},
		notifier,
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}
