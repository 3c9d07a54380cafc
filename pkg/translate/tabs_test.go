package translate_test

import (
	"testing"
	"time"

	"github.com/aretw0/chime/pkg/domain"
	"github.com/aretw0/chime/pkg/translate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabs_LengthSuffixes(t *testing.T) {
	unit := 400 * time.Millisecond

	tests := []struct {
		token string
		want  time.Duration
	}{
		{"C5!", unit / 8},
		{"C5:", unit / 4},
		{"C5;", unit / 3},
		{"C5.", unit / 2},
		{"C5", unit},
		{"C5*", 3 * unit / 2},
		{"C5-", 2 * unit},
		{"C5~", 3 * unit},
		{"C5_", 4 * unit},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			tune, err := translate.Tabs(tt.token)
			require.NoError(t, err)
			require.Len(t, tune, 1)
			assert.Equal(t, int(domain.C5), tune[0].Frequency)
			assert.Equal(t, tt.want, tune[0].Duration)
		})
	}
}

func TestTabs_Sequence(t *testing.T) {
	tune, err := translate.Tabs("G4 D5 S: C5-", translate.WithTabUnit(100*time.Millisecond))
	require.NoError(t, err)

	want := domain.Tune{
		domain.NewNote(domain.G4, domain.DefaultVolume, 100*time.Millisecond),
		domain.NewNote(domain.D5, domain.DefaultVolume, 100*time.Millisecond),
		domain.Rest(25 * time.Millisecond),
		domain.NewNote(domain.C5, domain.DefaultVolume, 200*time.Millisecond),
	}
	assert.Equal(t, want, tune)
}

func TestTabs_CaseInsensitive(t *testing.T) {
	upper, err := translate.Tabs("C5! FS3 S.")
	require.NoError(t, err)
	lower, err := translate.Tabs("c5! fs3 s.")
	require.NoError(t, err)
	assert.Equal(t, upper, lower)
}

func TestTabs_UnknownPitch(t *testing.T) {
	_, err := translate.Tabs("C5 H7 G5")

	var terr *translate.Error
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "H7", terr.Token)
	assert.Equal(t, 1, terr.Pos)
}

func TestTabs_OutOfRangeOctave(t *testing.T) {
	// E9 is beyond the supported pitch table: must error, never guess.
	_, err := translate.Tabs("E9")

	var terr *translate.Error
	require.ErrorAs(t, err, &terr)
	assert.Contains(t, terr.Reason, "unknown pitch")
}

func TestTabs_BareSuffix(t *testing.T) {
	_, err := translate.Tabs("C5 -")

	var terr *translate.Error
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "missing pitch name", terr.Reason)
}

func TestTabs_Empty(t *testing.T) {
	tune, err := translate.Tabs("   ")
	require.NoError(t, err)
	assert.Empty(t, tune)
}

func TestTabs_RestIsQuiet(t *testing.T) {
	tune, err := translate.Tabs("S_", translate.WithTabVolume(4))
	require.NoError(t, err)

	require.Len(t, tune, 1)
	assert.True(t, tune[0].IsRest())
	assert.Equal(t, domain.MinVolume, tune[0].Volume)
}

func TestTabs_Deterministic(t *testing.T) {
	const memory = "S_ G4 D5 C5 G4 B4- B4 C5- G4 C5 G4 B4- B4 C5- G4 D5 C5 G4 B4- B4 C5- G4 C5 E5 D5- C5 D5-"

	first, err := translate.Tabs(memory)
	require.NoError(t, err)
	second, err := translate.Tabs(memory)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
