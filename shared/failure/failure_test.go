package failure_test

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"agendavet/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	assert.Equal(t, "test error message", f.Error())
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		wantNil  bool
		wantMsg  string
		wantCode int
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			wantMsg:  "validation failed",
			wantCode: http.StatusBadRequest,
		},
		{
			name:    "with nil error",
			input:   nil,
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := failure.BadRequest(tt.input)
			if tt.wantNil {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantMsg)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
			assert.True(t, failure.Is(err, failure.KindValidation))
		})
	}
}

func TestKinds(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantKind string
	}{
		{
			name:     "bad request from string",
			err:      failure.BadRequestFromString("name is required"),
			wantCode: http.StatusBadRequest,
			wantKind: failure.KindValidation,
		},
		{
			name:     "not found",
			err:      failure.NotFound("pet not found"),
			wantCode: http.StatusNotFound,
			wantKind: failure.KindNotFound,
		},
		{
			name:     "empty result",
			err:      failure.EmptyResult("no pets match \"xyz\""),
			wantCode: http.StatusNotFound,
			wantKind: failure.KindEmptyResult,
		},
		{
			name:     "storage failure",
			err:      failure.StorageFailure(errors.New("connection refused")),
			wantCode: http.StatusInternalServerError,
			wantKind: failure.KindStorageFailure,
		},
		{
			name:     "plain error is a storage failure",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantKind: failure.KindStorageFailure,
		},
		{
			name:     "wrapped failure keeps its kind",
			err:      fmt.Errorf("failed to get pet: %w", failure.NotFound("pet not found")),
			wantCode: http.StatusNotFound,
			wantKind: failure.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
			assert.Equal(t, tt.wantKind, failure.GetKind(tt.err))
		})
	}
}

func TestStorageFailure(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, failure.StorageFailure(nil))
	})

	t.Run("keeps the cause reachable", func(t *testing.T) {
		err := failure.StorageFailure(fmt.Errorf("failed to get pet: %w", sql.ErrConnDone))

		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.Contains(t, err.Error(), "storage failure")
	})

	t.Run("does not rewrap an existing failure", func(t *testing.T) {
		notFound := failure.NotFound("consultation not found")

		assert.Same(t, notFound, failure.StorageFailure(notFound))
	})
}
