package update_consultation_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	updateStatus "github.com/medbridge-ng/consultation-service/internal/usecase/update_consultation_status"
)

type fakeUseCase struct {
	resp *updateStatus.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *updateStatus.Request) (*updateStatus.Response, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/consultations/{consultationId}/status", handler.Handle).Methods(http.MethodPatch)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/consultations/cons-1/status", strings.NewReader(body))
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	now := time.Date(2026, 9, 3, 10, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &updateStatus.Response{
		ID:          "cons-1",
		Status:      "completed",
		CompletedAt: &now,
		UpdatedAt:   now,
	}}

	rec := doRequest(t, uc, `{"status": "completed"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"completed"`)
	assert.Contains(t, rec.Body.String(), `"completedAt"`)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"status": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidStatus(t *testing.T) {
	uc := &fakeUseCase{err: updateStatus.ErrInvalidStatus}

	rec := doRequest(t, uc, `{"status": "archived"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid consultation status")
}

func TestHandle_TerminalStatusConflict(t *testing.T) {
	uc := &fakeUseCase{err: updateStatus.ErrTerminalStatus}

	rec := doRequest(t, uc, `{"status": "confirmed"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "final status")
}

func TestHandle_NotFound(t *testing.T) {
	uc := &fakeUseCase{err: updateStatus.ErrConsultationNotFound}

	rec := doRequest(t, uc, `{"status": "confirmed"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: updateStatus.ErrInternal}

	rec := doRequest(t, uc, `{"status": "confirmed"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
