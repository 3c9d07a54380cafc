package tunes_test

import (
	"testing"
	"time"

	"github.com/aretw0/chime/pkg/domain"
	"github.com/aretw0/chime/pkg/tunes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVictory_Shape(t *testing.T) {
	tune := tunes.Victory()

	require.Len(t, tune, 4)
	assert.Equal(t, int(domain.C5), tune[0].Frequency)
	assert.Equal(t, int(domain.E5), tune[1].Frequency)
	assert.Equal(t, int(domain.C5), tune[2].Frequency)
	assert.Equal(t, int(domain.F5), tune[3].Frequency)
	assert.Equal(t, 300*time.Millisecond, tune[3].Duration)

	for _, n := range tune {
		assert.Equal(t, domain.DefaultVolume, n.Volume)
	}
}

func TestScalingOptions(t *testing.T) {
	tune := tunes.Yes(
		tunes.WithFrequencyScale(2.0),
		tunes.WithDurationScale(0.5),
		tunes.WithVolume(1),
	)

	require.Len(t, tune, 2)
	assert.Equal(t, 2*int(domain.C5), tune[0].Frequency)
	assert.Equal(t, 75*time.Millisecond, tune[0].Duration)
	assert.Equal(t, 1, tune[0].Volume)
}

func TestByName(t *testing.T) {
	for _, name := range tunes.Names() {
		build, ok := tunes.ByName(name)
		require.True(t, ok, name)
		assert.NotEmpty(t, build(), name)
	}

	_, ok := tunes.ByName("fanfare")
	assert.False(t, ok)
}

func TestRegistry_CustomJingle(t *testing.T) {
	reg := tunes.NewRegistry()
	reg.Register("blip", func(opts ...tunes.Option) domain.Tune {
		return domain.Tune{domain.NewNote(domain.A4, domain.DefaultVolume, 50*time.Millisecond)}
	})

	build, ok := reg.Lookup("blip")
	require.True(t, ok)
	assert.Len(t, build(), 1)
	assert.Equal(t, []string{"blip"}, reg.Names())

	_, ok = reg.Lookup("bloop")
	assert.False(t, ok)
}

func TestJinglesAreValid(t *testing.T) {
	for _, name := range tunes.Names() {
		build, _ := tunes.ByName(name)
		assert.NoError(t, build().Validate(), name)
	}
}
