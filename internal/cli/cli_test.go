package cli

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/chime/internal/logging"
	"github.com/aretw0/chime/pkg/adapters/memory"
	"github.com/aretw0/chime/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenTransport_DryRun(t *testing.T) {
	transport, closeBus, err := OpenTransport("", 0x34, true, logging.NewNop())
	require.NoError(t, err)
	defer closeBus()

	_, ok := transport.(*memory.Transport)
	assert.True(t, ok, "dry-run should use the in-memory transport")
	assert.NoError(t, closeBus())
}

func TestSignalContext_CancelledByParent(t *testing.T) {
	sc := NewSignalContext(context.Background())
	sc.Cancel()

	select {
	case <-sc.Done():
	case <-time.After(time.Second):
		t.Fatal("context not cancelled")
	}
	assert.Nil(t, sc.Signal())
}

func TestPlayTune_DryRun(t *testing.T) {
	tune := domain.Tune{
		domain.NewNote(domain.C5, domain.DefaultVolume, time.Millisecond),
		domain.Rest(time.Millisecond),
	}
	require.NoError(t, PlayTune(Device{DryRun: true}, tune))
}

func TestDescribeTune(t *testing.T) {
	tune := domain.Tune{
		domain.NewNote(domain.C5, domain.DefaultVolume, 100*time.Millisecond),
		domain.Rest(50 * time.Millisecond),
	}
	assert.Equal(t, "2 notes, 150ms", DescribeTune(tune))
}
