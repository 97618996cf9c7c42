package telemetry_test

import (
	"testing"

	"github.com/aaravmahajanofficial/easymenu/internal/config"
	"github.com/aaravmahajanofficial/easymenu/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestInit_WithoutExporter(t *testing.T) {
	// Arrange
	cfg := config.Otel{ServiceName: "easymenu-test", SamplerRatio: 1}

	// Act
	shutdown, err := telemetry.Init(t.Context(), cfg, "test")

	// Assert
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	_, span := otel.Tracer("test").Start(t.Context(), "probe")
	assert.True(t, span.SpanContext().IsValid(), "spans should be recorded by the installed provider")
	span.End()

	assert.NoError(t, shutdown(t.Context()))
}

func TestInit_WithExporter(t *testing.T) {
	cfg := config.Otel{ServiceName: "easymenu-test", ExporterEndpoint: "http://localhost:4318/v1/traces", SamplerRatio: 0}

	shutdown, err := telemetry.Init(t.Context(), cfg, "test")

	require.NoError(t, err)
	assert.NoError(t, shutdown(t.Context()))
}
