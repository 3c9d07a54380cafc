package translate

import (
	"strings"
	"time"

	"github.com/aretw0/chime/pkg/domain"
)

// DefaultTabUnit is the length of an unsuffixed tab note.
const DefaultTabUnit = 400 * time.Millisecond

// lengthSuffixes maps a trailing token rune to a duration scale expressed as
// a numerator/denominator pair over the unit length.
var lengthSuffixes = map[rune][2]int64{
	'!': {1, 8},
	':': {1, 4},
	';': {1, 3},
	'.': {1, 2},
	'*': {3, 2},
	'-': {2, 1},
	'~': {3, 1},
	'_': {4, 1},
}

type tabsConfig struct {
	unit   time.Duration
	volume int
}

// TabsOption customizes the tab translator.
type TabsOption func(*tabsConfig)

// WithTabUnit sets the length of an unsuffixed note.
func WithTabUnit(d time.Duration) TabsOption {
	return func(c *tabsConfig) { c.unit = d }
}

// WithTabVolume sets the loudness level of all notes.
func WithTabVolume(v int) TabsOption {
	return func(c *tabsConfig) { c.volume = v }
}

// Tabs translates a space-separated tab string into a Tune.
//
// Each token is a pitch name from the Pitches table ("C5", "FS3", "S" for a
// rest), matched case-insensitively, with an optional trailing length suffix
// scaling the unit length:
//
//	!  1/8    :  1/4    ;  1/3    .  1/2
//	*  3/2    -  2      ~  3      _  4
//
// Unknown pitch names and malformed tokens yield an *Error; a wrong pitch is
// never substituted.
func Tabs(tabs string, opts ...TabsOption) (domain.Tune, error) {
	cfg := tabsConfig{
		unit:   DefaultTabUnit,
		volume: domain.DefaultVolume,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.unit <= 0 {
		return nil, &Error{Token: cfg.unit.String(), Reason: "unit length must be positive"}
	}
	if cfg.volume < domain.MinVolume || cfg.volume > domain.MaxVolume {
		return nil, &Error{Token: "volume", Reason: "volume out of range"}
	}

	fields := strings.Fields(tabs)
	tune := make(domain.Tune, 0, len(fields))
	for pos, token := range fields {
		name := token
		length := cfg.unit

		runes := []rune(token)
		if scale, ok := lengthSuffixes[runes[len(runes)-1]]; ok {
			name = string(runes[:len(runes)-1])
			length = time.Duration(int64(cfg.unit) * scale[0] / scale[1])
		}

		if name == "" {
			return nil, &Error{Token: token, Pos: pos, Reason: "missing pitch name"}
		}

		pitch, ok := domain.LookupPitch(strings.ToUpper(name))
		if !ok {
			return nil, &Error{Token: token, Pos: pos, Reason: "unknown pitch name"}
		}

		volume := cfg.volume
		if pitch == domain.S {
			volume = domain.MinVolume
		}
		tune = append(tune, domain.NewNote(pitch, volume, length))
	}

	return tune, nil
}
