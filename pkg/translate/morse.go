package translate

import (
	"strings"
	"time"

	"github.com/aretw0/chime/pkg/domain"
)

// morseCodes is the ITU table for the supported alphabet. Characters outside
// it (other than space) are skipped, not emitted as silence.
var morseCodes = map[rune]string{
	'a': ".-", 'b': "-...", 'c': "-.-.", 'd': "-..", 'e': ".",
	'f': "..-.", 'g': "--.", 'h': "....", 'i': "..", 'j': ".---",
	'k': "-.-", 'l': ".-..", 'm': "--", 'n': "-.", 'o': "---",
	'p': ".--.", 'q': "--.-", 'r': ".-.", 's': "...", 't': "-",
	'u': "..-", 'v': "...-", 'w': ".--", 'x': "-..-", 'y': "-.--",
	'z': "--..",
	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",
}

// Default Morse timing and voicing, matching the reference examples.
const (
	DefaultMorseUnit  = 50 * time.Millisecond
	DefaultMorsePitch = domain.E5
)

// Standard separator lengths in units: between symbols, letters and words.
const (
	symbolSepUnits = 1
	letterSepUnits = 3
	wordSepUnits   = 7
)

type morseConfig struct {
	unit   time.Duration
	pitch  domain.Pitch
	volume int
	seps   [3]int
}

// MorseOption customizes the Morse translator.
type MorseOption func(*morseConfig)

// WithMorseUnit sets the base dot duration. A dash is three units.
func WithMorseUnit(d time.Duration) MorseOption {
	return func(c *morseConfig) { c.unit = d }
}

// WithMorsePitch sets the tone used for dots and dashes.
func WithMorsePitch(p domain.Pitch) MorseOption {
	return func(c *morseConfig) { c.pitch = p }
}

// WithMorseVolume sets the loudness level of the tones.
func WithMorseVolume(v int) MorseOption {
	return func(c *morseConfig) { c.volume = v }
}

// WithMorseSeparators overrides the silence lengths, in units, between two
// symbols, two letters and two words. The standard is 1, 3, 7.
func WithMorseSeparators(symbol, letter, word int) MorseOption {
	return func(c *morseConfig) { c.seps = [3]int{symbol, letter, word} }
}

// Morse translates text into a Tune using Morse code. Matching is
// case-insensitive; unrecognized characters are skipped and a space emits a
// word separator.
func Morse(text string, opts ...MorseOption) (domain.Tune, error) {
	cfg := morseConfig{
		unit:   DefaultMorseUnit,
		pitch:  DefaultMorsePitch,
		volume: domain.DefaultVolume,
		seps:   [3]int{symbolSepUnits, letterSepUnits, wordSepUnits},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.unit <= 0 {
		return nil, &Error{Token: cfg.unit.String(), Reason: "base unit must be positive"}
	}
	if cfg.volume < domain.MinVolume || cfg.volume > domain.MaxVolume {
		return nil, &Error{Token: "volume", Reason: "volume out of range"}
	}
	for _, s := range cfg.seps {
		if s < 0 {
			return nil, &Error{Token: "separators", Reason: "separator units must not be negative"}
		}
	}

	dot := domain.NewNote(cfg.pitch, cfg.volume, cfg.unit)
	dash := domain.NewNote(cfg.pitch, cfg.volume, 3*cfg.unit)
	symbolSep := domain.Rest(time.Duration(cfg.seps[0]) * cfg.unit)
	letterSep := domain.Rest(time.Duration(cfg.seps[1]) * cfg.unit)
	wordSep := domain.Rest(time.Duration(cfg.seps[2]) * cfg.unit)

	tune := make(domain.Tune, 0, 4*len(text))
	for _, r := range strings.ToLower(text) {
		if r == ' ' {
			tune = append(tune, wordSep)
			continue
		}

		code, ok := morseCodes[r]
		if !ok {
			continue
		}
		for i, sym := range code {
			if i > 0 {
				tune = append(tune, symbolSep)
			}
			if sym == '.' {
				tune = append(tune, dot)
			} else {
				tune = append(tune, dash)
			}
		}
		tune = append(tune, letterSep)
	}

	return tune, nil
}
