package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"agendavet/config"
	"agendavet/infras/otel/mocks"
	"agendavet/shared/constant"
	"agendavet/transport/http/middleware"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiddleware(configure func(cfg *config.Config)) middleware.AppMiddleware {
	cfg := &config.Config{}
	cfg.App.Name = "agenda-vet"

	if configure != nil {
		configure(cfg)
	}

	return middleware.NewAppMiddleware(mocks.NewOtel(), cfg)
}

func TestRequestID(t *testing.T) {
	m := newMiddleware(nil)

	var seen string

	handler := m.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
	}))

	t.Run("generates an id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/pets", nil))

		require.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(constant.RequestHeaderRequestID))
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/pets", nil)
		req.Header.Set(constant.RequestHeaderRequestID, "req-42")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "req-42", seen)
		assert.Equal(t, "req-42", rec.Header().Get(constant.RequestHeaderRequestID))
	})
}

func TestLogger(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	m := newMiddleware(nil)
	handler := m.Logger(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/pets/3", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Contains(t, buf.String(), `"path":"/v1/pets/3"`)
	assert.Contains(t, buf.String(), `"status":418`)
	assert.Contains(t, buf.String(), `"method":"DELETE"`)
}

func TestTracing(t *testing.T) {
	m := newMiddleware(nil)

	handler := m.Tracing(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/consultations", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("disabled", func(t *testing.T) {
		handler := newMiddleware(nil).CORS(next)

		req := httptest.NewRequest(http.MethodGet, "/v1/pets", nil)
		req.Header.Set("Origin", "http://clinic.local")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("enabled", func(t *testing.T) {
		handler := newMiddleware(func(cfg *config.Config) {
			cfg.App.CORS.Enable = true
			cfg.App.CORS.AllowedOrigins = []string{"http://clinic.local"}
			cfg.App.CORS.AllowedMethods = []string{http.MethodGet}
		}).CORS(next)

		req := httptest.NewRequest(http.MethodGet, "/v1/pets", nil)
		req.Header.Set("Origin", "http://clinic.local")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://clinic.local", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
