package domain

import "time"

// Volume bounds for the Qwiic buzzer. The peripheral understands five
// loudness levels, 0 (quiet) to 4 (loud).
const (
	MinVolume = 0
	MaxVolume = 4

	// DefaultVolume is used by translators and canned tunes when the caller
	// does not pick a level.
	DefaultVolume = 3
)

// Note is an immutable description of one sound event.
// A Frequency of 0 denotes a rest: no tone is emitted for Duration.
type Note struct {
	// Frequency of the tone in Hz. 0 means rest.
	Frequency int `json:"frequency" yaml:"frequency"`

	// Volume is the loudness level, MinVolume..MaxVolume.
	Volume int `json:"volume" yaml:"volume"`

	// Duration is how long the note sounds (or stays silent, for a rest).
	// A zero-duration Note is a no-op and is skipped without side effects.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// NewNote builds a Note at the given pitch.
func NewNote(pitch Pitch, volume int, duration time.Duration) Note {
	return Note{Frequency: int(pitch), Volume: volume, Duration: duration}
}

// Rest builds a silent Note.
func Rest(duration time.Duration) Note {
	return Note{Frequency: int(S), Volume: MinVolume, Duration: duration}
}

// IsRest reports whether the note emits no tone.
func (n Note) IsRest() bool {
	return n.Frequency == 0
}

// Validate checks the Note invariants. It returns a *InvalidNoteError
// describing the first violation, or nil.
func (n Note) Validate() error {
	switch {
	case n.Frequency < 0:
		return &InvalidNoteError{Note: n, Reason: "negative frequency"}
	case n.Duration < 0:
		return &InvalidNoteError{Note: n, Reason: "negative duration"}
	case n.Volume < MinVolume || n.Volume > MaxVolume:
		return &InvalidNoteError{Note: n, Reason: "volume out of range"}
	}
	return nil
}
