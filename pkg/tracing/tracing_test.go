package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestInit_WithoutEndpoint(t *testing.T) {
	ctx := context.Background()

	tp, err := Init(ctx, "partner-web", "test", "")
	require.NoError(t, err)
	defer tp.Shutdown(ctx)

	_, span := otel.Tracer("test").Start(ctx, "op")
	defer span.End()

	assert.True(t, span.SpanContext().IsValid())
}
