package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medbridge-ng/consultation-service/internal/domain"
	getAvailableSlots "github.com/medbridge-ng/consultation-service/internal/usecase/get_available_slots"
	"github.com/medbridge-ng/consultation-service/pkg/types"
)

type fakeUseCase struct {
	resp *getAvailableSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, url string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/doctors/{doctorId}/available-slots", handler.Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		DoctorID:  "doc-1",
		Date:      time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
		Weekday:   "thursday",
		Timezone:  "UTC",
		Available: true,
		Slots: []domain.TimeRange{
			{Start: types.TimeString("09:00"), End: types.TimeString("09:30")},
		},
	}}

	rec := doRequest(t, uc, "/api/v1/doctors/doc-1/available-slots?date=2026-09-03")
	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Available)
	assert.Equal(t, "2026-09-03", body.Date)
	assert.Equal(t, "thursday", body.Weekday)
	require.Len(t, body.AvailableSlots, 1)
	assert.Equal(t, "09:00", body.AvailableSlots[0].Start)
}

func TestHandle_NoAvailabilityStillOK(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		DoctorID: "doc-1",
		Date:     time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
		Weekday:  "thursday",
		Timezone: "UTC",
		Slots:    []domain.TimeRange{},
		Message:  "Doctor has no availability set",
	}}

	rec := doRequest(t, uc, "/api/v1/doctors/doc-1/available-slots?date=2026-09-03")
	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Available)
	assert.Empty(t, body.AvailableSlots)
	assert.Equal(t, "Doctor has no availability set", body.Message)
}

func TestHandle_MissingDate(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, "/api/v1/doctors/doc-1/available-slots")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, "/api/v1/doctors/doc-1/available-slots?date=03-09-2026")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_DoctorNotFound(t *testing.T) {
	uc := &fakeUseCase{err: getAvailableSlots.ErrDoctorNotFound}

	rec := doRequest(t, uc, "/api/v1/doctors/missing/available-slots?date=2026-09-03")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: getAvailableSlots.ErrInternal}

	rec := doRequest(t, uc, "/api/v1/doctors/doc-1/available-slots?date=2026-09-03")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
