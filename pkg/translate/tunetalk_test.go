package translate_test

import (
	"testing"
	"time"

	"github.com/aretw0/chime/pkg/domain"
	"github.com/aretw0/chime/pkg/translate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTuneTalk_VowelIsSingleLongNote(t *testing.T) {
	unit := 100 * time.Millisecond
	tune, err := translate.TuneTalk("a", translate.WithTuneTalkUnit(unit))
	require.NoError(t, err)

	want := domain.Tune{
		domain.NewNote(domain.F4, domain.DefaultVolume, 2*unit), // long vowel
		domain.Rest(unit / 4), // letter gap
	}
	assert.Equal(t, want, tune)
}

func TestTuneTalk_ConsonantIsTwoShortNotes(t *testing.T) {
	unit := 100 * time.Millisecond
	tune, err := translate.TuneTalk("b", translate.WithTuneTalkUnit(unit))
	require.NoError(t, err)

	want := domain.Tune{
		domain.NewNote(domain.E4, domain.DefaultVolume, unit),
		domain.NewNote(domain.C4, domain.DefaultVolume, unit),
		domain.Rest(unit / 4),
	}
	assert.Equal(t, want, tune)
}

func TestTuneTalk_OctaveShift(t *testing.T) {
	low, err := translate.TuneTalk("o", translate.WithTuneTalkOctave(3))
	require.NoError(t, err)
	high, err := translate.TuneTalk("o", translate.WithTuneTalkOctave(5))
	require.NoError(t, err)

	assert.Equal(t, int(domain.E3), low[0].Frequency)
	assert.Equal(t, int(domain.E5), high[0].Frequency)
}

func TestTuneTalk_OctaveOutOfRange(t *testing.T) {
	var terr *translate.Error

	_, err := translate.TuneTalk("hi", translate.WithTuneTalkOctave(0))
	require.ErrorAs(t, err, &terr)

	_, err = translate.TuneTalk("hi", translate.WithTuneTalkOctave(8))
	require.ErrorAs(t, err, &terr)
	assert.Contains(t, terr.Reason, "octave out of range")
}

func TestTuneTalk_SkipsNonLetters(t *testing.T) {
	plain, err := translate.TuneTalk("go")
	require.NoError(t, err)
	noisy, err := translate.TuneTalk("g:o!2")
	require.NoError(t, err)

	assert.Equal(t, plain, noisy)
}

func TestTuneTalk_Deterministic(t *testing.T) {
	first, err := translate.TuneTalk("hello world")
	require.NoError(t, err)
	second, err := translate.TuneTalk("hello world")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}
