package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"agendavet/shared/failure"
	"agendavet/transport/http/response"

	"github.com/stretchr/testify/assert"
)

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusOK, []string{})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}

func TestWithJSONMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSONMessage(rec, http.StatusOK, "updated", map[string]int{"id": 1})

	assert.JSONEq(t, `{"data":{"id":1},"message":"updated"}`, rec.Body.String())
}

func TestWithMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithMessage(rec, http.StatusCreated, "done")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"done"}`, rec.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "not found",
			err:      failure.NotFound("pet not found"),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"pet not found","kind":"not_found"}`,
		},
		{
			name:     "empty result",
			err:      failure.EmptyResult(`no pets match "xyz"`),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"no pets match \"xyz\"","kind":"empty_result"}`,
		},
		{
			name:     "wrapped validation error keeps its message",
			err:      fmt.Errorf("create: %w", failure.BadRequestFromString("pet does not exist")),
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"pet does not exist","kind":"validation_error"}`,
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"boom","kind":"storage_failure"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWithUnhealthy(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithUnhealthy(rec)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
