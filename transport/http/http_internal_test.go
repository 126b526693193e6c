package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"agendavet/config"
	"agendavet/infras/otel/mocks"
	"agendavet/transport/http/middleware"
	"agendavet/transport/http/router"

	"github.com/stretchr/testify/assert"
)

type fakeDatabase struct {
	pingErr error
	closed  bool
}

func (f *fakeDatabase) Ping(_ context.Context) error {
	return f.pingErr
}

func (f *fakeDatabase) Close() error {
	f.closed = true

	return nil
}

func newTestServer(db Database) *HTTP {
	cfg := &config.Config{}
	o := mocks.NewOtel()

	return New(cfg, router.New(router.DomainHandlers{}), middleware.NewAppMiddleware(o, cfg), db, o)
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name     string
		pingErr  error
		state    ServerState
		wantCode int
		wantBody string
	}{
		{
			name:     "ready and reachable",
			state:    ServerStateReady,
			wantCode: http.StatusOK,
			wantBody: `{"message":"OK"}`,
		},
		{
			name:     "database unreachable",
			pingErr:  errors.New("connection refused"),
			state:    ServerStateReady,
			wantCode: http.StatusServiceUnavailable,
			wantBody: `{"message":"SERVER UNHEALTHY"}`,
		},
		{
			name:     "in grace period",
			state:    ServerStateInGracePeriod,
			wantCode: http.StatusServiceUnavailable,
			wantBody: `{"message":"SERVER PREPARING TO SHUT DOWN"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(&fakeDatabase{pingErr: tt.pingErr})
			server.setup()
			server.setState(tt.state)

			rec := httptest.NewRecorder()
			server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestServeHTTP_UnknownRoute(t *testing.T) {
	server := newTestServer(&fakeDatabase{})

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/owners", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, ServerStateReady, server.State())
}

func TestRelease(t *testing.T) {
	db := &fakeDatabase{}
	server := newTestServer(db)

	server.release(context.Background())

	assert.True(t, db.closed)
}
