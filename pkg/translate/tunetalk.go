package translate

import (
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/chime/pkg/domain"
)

// DefaultTuneTalkUnit is the length of an unsuffixed tunetalk note. The
// voice reads best a fair bit faster than plain tabs.
const DefaultTuneTalkUnit = 180 * time.Millisecond

// DefaultTuneTalkOctave positions the voice around middle C.
const DefaultTuneTalkOctave = 4

// tunetalkPatterns maps each letter to tab fragments within one octave.
// A fragment is a pitch letter plus an optional length suffix; the octave
// digit is inserted when the tab string is assembled. Vowels are a single
// long note, consonants two short notes.
var tunetalkPatterns = map[rune][]string{
	'a': {"F-"},
	'b': {"E", "C"},
	'c': {"A", "D"},
	'd': {"F", "D"},
	'e': {"A-"},
	'f': {"E", "A"},
	'g': {"D", "C"},
	'h': {"G", "A"},
	'i': {"B-"},
	'j': {"A", "B"},
	'k': {"A", "F"},
	'l': {"D", "F"},
	'm': {"F", "A"},
	'n': {"E", "G"},
	'o': {"E-"},
	'p': {"G", "E"},
	'q': {"A", "E"},
	'r': {"D", "G"},
	's': {"F", "B"},
	't': {"B", "G"},
	'u': {"D-"},
	'v': {"C", "E"},
	'w': {"C", "F"},
	'x': {"A", "C"},
	'y': {"G-"},
	'z': {"G", "D"},
}

type tunetalkConfig struct {
	octave int
	unit   time.Duration
	volume int
}

// TuneTalkOption customizes the text-to-tune translator.
type TuneTalkOption func(*tunetalkConfig)

// WithTuneTalkOctave shifts the voice by whole octaves. Valid range is 1..7.
func WithTuneTalkOctave(octave int) TuneTalkOption {
	return func(c *tunetalkConfig) { c.octave = octave }
}

// WithTuneTalkUnit sets the base note length.
func WithTuneTalkUnit(d time.Duration) TuneTalkOption {
	return func(c *tunetalkConfig) { c.unit = d }
}

// WithTuneTalkVolume sets the loudness level.
func WithTuneTalkVolume(v int) TuneTalkOption {
	return func(c *tunetalkConfig) { c.volume = v }
}

// TuneTalk translates text into an expressive melody. Only letters and
// spaces are voiced; everything else is skipped. The mapping is fixed and
// deterministic: the same text always produces the same Tune. It is
// illustrative, not phonetically accurate.
func TuneTalk(text string, opts ...TuneTalkOption) (domain.Tune, error) {
	cfg := tunetalkConfig{
		octave: DefaultTuneTalkOctave,
		unit:   DefaultTuneTalkUnit,
		volume: domain.DefaultVolume,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Every pitch letter exists for octaves 1 through 7 only.
	if cfg.octave < 1 || cfg.octave > 7 {
		return nil, &Error{Token: strconv.Itoa(cfg.octave), Reason: "octave out of range (1..7)"}
	}

	octave := strconv.Itoa(cfg.octave)
	var tabs strings.Builder
	for _, r := range strings.ToLower(text) {
		if r == ' ' {
			// A long rest between words, then the usual letter gap.
			tabs.WriteString("S- S: ")
			continue
		}

		pattern, ok := tunetalkPatterns[r]
		if !ok {
			continue
		}
		for _, fragment := range pattern {
			tabs.WriteString(fragment[:1])
			tabs.WriteString(octave)
			tabs.WriteString(fragment[1:])
			tabs.WriteByte(' ')
		}
		tabs.WriteString("S: ")
	}

	return Tabs(strings.TrimSpace(tabs.String()),
		WithTabUnit(cfg.unit),
		WithTabVolume(cfg.volume),
	)
}
