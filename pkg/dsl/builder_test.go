package dsl

import (
	"testing"
	"time"

	"github.com/aretw0/chime/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Chain(t *testing.T) {
	tune, err := New().
		Unit(200 * time.Millisecond).
		Volume(2).
		Note("C5").
		Half("E5").
		Rest().
		Double("G5").
		Build()
	require.NoError(t, err)

	want := domain.Tune{
		domain.NewNote(domain.C5, 2, 200*time.Millisecond),
		domain.NewNote(domain.E5, 2, 100*time.Millisecond),
		domain.Rest(200 * time.Millisecond),
		domain.NewNote(domain.G5, 2, 400*time.Millisecond),
	}
	assert.Equal(t, want, tune)
}

func TestBuilder_VolumeAppliesForward(t *testing.T) {
	tune, err := New().
		Note("C4").
		Volume(1).
		Note("C4").
		Build()
	require.NoError(t, err)

	require.Len(t, tune, 2)
	assert.Equal(t, domain.DefaultVolume, tune[0].Volume)
	assert.Equal(t, 1, tune[1].Volume)
}

func TestBuilder_LowercasePitch(t *testing.T) {
	tune, err := New().Note("fs3").Build()
	require.NoError(t, err)
	assert.Equal(t, int(domain.FS3), tune[0].Frequency)
}

func TestBuilder_SilentPitchBecomesRest(t *testing.T) {
	tune, err := New().Note("S").Build()
	require.NoError(t, err)
	assert.True(t, tune[0].IsRest())
}

func TestBuilder_Repeat(t *testing.T) {
	tune, err := New().
		Note("C5").
		Note("E5").
		Repeat(2).
		Build()
	require.NoError(t, err)

	require.Len(t, tune, 4)
	assert.Equal(t, tune[0], tune[2])
	assert.Equal(t, tune[1], tune[3])
}

func TestBuilder_FirstErrorWins(t *testing.T) {
	_, err := New().
		Note("H9").
		Volume(99).
		Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "H9")
}

func TestBuilder_RejectsBadUnit(t *testing.T) {
	_, err := New().Unit(0).Note("C5").Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unit")
}

func TestBuilder_RejectsBadRepeat(t *testing.T) {
	_, err := New().Note("C5").Repeat(5).Build()
	require.Error(t, err)
}

func TestBuilder_Frequency(t *testing.T) {
	tune, err := New().Frequency(1234, 50*time.Millisecond).Build()
	require.NoError(t, err)
	assert.Equal(t, 1234, tune[0].Frequency)
}
