package observability_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/artcollab/muse/internal/observability"
)

func TestContextRoundTrip(t *testing.T) {
	ctx := context.Background()

	ctx = observability.WithTraceID(ctx, "trace-1")
	ctx = observability.WithSpanID(ctx, "span-1")
	ctx = observability.WithRequestID(ctx, "req-1")
	ctx = observability.WithStrategy(ctx, "weighted_mean")
	ctx = observability.WithArtistID(ctx, "artist-42")

	require.Equal(t, "trace-1", observability.GetTraceID(ctx))
	require.Equal(t, "span-1", observability.GetSpanID(ctx))
	require.Equal(t, "req-1", observability.GetRequestID(ctx))
	require.Equal(t, "weighted_mean", observability.GetStrategy(ctx))
	require.Equal(t, "artist-42", observability.GetArtistID(ctx))
}

func TestEmptyContextReturnsEmptyValues(t *testing.T) {
	ctx := context.Background()

	require.Empty(t, observability.GetTraceID(ctx))
	require.Empty(t, observability.GetSpanID(ctx))
	require.Empty(t, observability.GetRequestID(ctx))
	require.Empty(t, observability.GetStrategy(ctx))
	require.Empty(t, observability.GetArtistID(ctx))
}

func TestGenerateIDs(t *testing.T) {
	traceID := observability.GenerateTraceID()
	require.Len(t, traceID, 32)
	require.NotEqual(t, traceID, observability.GenerateTraceID())

	spanID := observability.GenerateSpanID()
	require.Len(t, spanID, 16)

	requestID := observability.GenerateRequestID()
	require.Len(t, requestID, 36)
}
