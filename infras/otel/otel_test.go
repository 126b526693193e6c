package otel_test

import (
	"context"
	"errors"
	"testing"

	"agendavet/infras/otel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestScope(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))
	tracer := otel.NewWithProvider(provider)

	_, scope := tracer.NewScope(context.Background(), "repository", "repository.pet.Get")
	scope.SetAttributes(map[string]any{
		"query": "SELECT 1",
		"id":    int64(7),
		"found": true,
	})
	scope.TraceIfError(nil)
	scope.TraceError(errors.New("connection reset"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	span := spans[0]
	assert.Equal(t, "repository.pet.Get", span.Name())
	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, "connection reset", span.Status().Description)
	assert.Contains(t, span.Attributes(), attribute.String("query", "SELECT 1"))
	assert.Contains(t, span.Attributes(), attribute.Int64("id", 7))
	assert.Contains(t, span.Attributes(), attribute.Bool("found", true))

	require.NoError(t, tracer.Shutdown(context.Background()))
}
