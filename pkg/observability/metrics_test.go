package observability_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/chime"
	"github.com/aretw0/chime/pkg/adapters/memory"
	"github.com/aretw0/chime/pkg/domain"
	"github.com/aretw0/chime/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountPlayback(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	engine, err := chime.New(memory.New(), chime.WithLifecycleHooks(metrics.Hooks()))
	require.NoError(t, err)

	tune := domain.Tune{
		domain.NewNote(domain.C5, 3, 2*time.Millisecond),
		domain.Rest(2 * time.Millisecond),
		domain.NewNote(domain.E5, 3, 2*time.Millisecond),
	}

	ctx := context.Background()
	session, err := engine.Play(ctx, tune)
	require.NoError(t, err)
	require.NoError(t, session.Wait(ctx))

	assert.Equal(t, float64(2), testutil.ToFloat64(
		metrics.NotesTotal().WithLabelValues("tone")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		metrics.NotesTotal().WithLabelValues("rest")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		metrics.SessionsTotal().WithLabelValues(domain.OutcomeCompleted)))
}
