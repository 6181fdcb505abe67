package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medbridge-ng/consultation-service/internal/domain"
	"github.com/medbridge-ng/consultation-service/internal/service/auth"
)

var testSecret = []byte("test-secret")

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

func signToken(t *testing.T, role, tokenType string) string {
	t.Helper()

	claims := auth.Claims{
		Role: role,
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)
	return token
}

// newTestRouter повторяет схему из main: публичное чтение справочника,
// запись только с токеном
func newTestRouter() *mux.Router {
	ok := func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/consultation-types", ok).Methods(http.MethodGet)

	protected := api.PathPrefix("").Subrouter()
	protected.Use(Auth(testSecret, nopLogger{}))
	protected.HandleFunc("/consultation-types", ok).Methods(http.MethodPost)

	doctorRoutes := protected.PathPrefix("").Subrouter()
	doctorRoutes.Use(RequireRole(domain.RoleDoctor))
	doctorRoutes.HandleFunc("/doctors/me/consultations", ok).Methods(http.MethodGet)

	return r
}

func doRequest(router *mux.Router, method, url, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuth_PublicReadProtectedWrite(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(router, http.MethodGet, "/api/v1/consultation-types", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, http.MethodPost, "/api/v1/consultation-types", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := signToken(t, domain.RolePatient, auth.TokenTypeAccess)
	rec = doRequest(router, http.MethodPost, "/api/v1/consultation-types", token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_RejectsBadTokens(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(router, http.MethodPost, "/api/v1/consultation-types", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	refresh := signToken(t, domain.RolePatient, auth.TokenTypeRefresh)
	rec = doRequest(router, http.MethodPost, "/api/v1/consultation-types", refresh)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	router := newTestRouter()

	patient := signToken(t, domain.RolePatient, auth.TokenTypeAccess)
	rec := doRequest(router, http.MethodGet, "/api/v1/doctors/me/consultations", patient)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	doctor := signToken(t, domain.RoleDoctor, auth.TokenTypeAccess)
	rec = doRequest(router, http.MethodGet, "/api/v1/doctors/me/consultations", doctor)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_ContextPropagation(t *testing.T) {
	var gotID, gotRole string

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(Auth(testSecret, nopLogger{}))
	protected.HandleFunc("/whoami", func(w http.ResponseWriter, req *http.Request) {
		gotID = GetUserID(req.Context())
		gotRole = GetUserRole(req.Context())
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	token := signToken(t, domain.RoleDoctor, auth.TokenTypeAccess)
	rec := doRequest(r, http.MethodGet, "/api/v1/whoami", token)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", gotID)
	assert.Equal(t, domain.RoleDoctor, gotRole)
}
