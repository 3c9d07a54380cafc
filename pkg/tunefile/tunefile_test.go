package tunefile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/chime/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Tabs(t *testing.T) {
	doc, err := Parse([]byte(`
name: fanfare
volume: 2
unit: 200ms
tabs: "c5! e5! g5-"
`))
	require.NoError(t, err)
	assert.Equal(t, "fanfare", doc.Name)

	tune, err := doc.Tune()
	require.NoError(t, err)
	require.Len(t, tune, 3)
	assert.Equal(t, int(domain.C5), tune[0].Frequency)
	assert.Equal(t, 2, tune[0].Volume)
	assert.Equal(t, 25*time.Millisecond, tune[0].Duration)
	assert.Equal(t, 400*time.Millisecond, tune[2].Duration)
}

func TestParse_Notes(t *testing.T) {
	doc, err := Parse([]byte(`
name: heartbeat
unit: 120ms
notes:
  - pitch: C4
  - rest: true
    duration: 300ms
  - pitch: C4
    volume: 1
    duration: 80
`))
	require.NoError(t, err)

	tune, err := doc.Tune()
	require.NoError(t, err)
	require.Len(t, tune, 3)

	assert.Equal(t, int(domain.C4), tune[0].Frequency)
	assert.Equal(t, domain.DefaultVolume, tune[0].Volume)
	assert.Equal(t, 120*time.Millisecond, tune[0].Duration)

	assert.True(t, tune[1].IsRest())
	assert.Equal(t, 300*time.Millisecond, tune[1].Duration)

	assert.Equal(t, 1, tune[2].Volume)
	assert.Equal(t, 80*time.Millisecond, tune[2].Duration)
}

func TestParse_FrequencyOverridesPitch(t *testing.T) {
	doc, err := Parse([]byte(`
notes:
  - frequency: 1234
    duration: 50ms
`))
	require.NoError(t, err)

	tune, err := doc.Tune()
	require.NoError(t, err)
	require.Len(t, tune, 1)
	assert.Equal(t, 1234, tune[0].Frequency)
}

func TestParse_RejectsBothTabsAndNotes(t *testing.T) {
	_, err := Parse([]byte(`
name: broken
tabs: "c4"
notes:
  - pitch: C4
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both tabs and notes")
}

func TestParse_RejectsEmptyDocument(t *testing.T) {
	_, err := Parse([]byte(`name: nothing`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neither tabs nor notes")
}

func TestTune_UnknownPitch(t *testing.T) {
	doc, err := Parse([]byte(`
notes:
  - pitch: H4
`))
	require.NoError(t, err)

	_, err = doc.Tune()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "H4")
}

func TestTune_InvalidVolume(t *testing.T) {
	doc, err := Parse([]byte(`
notes:
  - pitch: C4
    volume: 9
`))
	require.NoError(t, err)

	_, err = doc.Tune()
	require.Error(t, err)
	var noteErr *domain.InvalidNoteError
	assert.ErrorAs(t, err, &noteErr)
}

func TestParse_InvalidDuration(t *testing.T) {
	_, err := Parse([]byte(`
notes:
  - pitch: C4
    duration: fast
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid duration")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tune.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tabs: \"c4! d4!\"\n"), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)

	tune, err := doc.Tune()
	require.NoError(t, err)
	assert.Len(t, tune, 2)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
