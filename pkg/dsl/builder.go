package dsl

import (
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/chime/pkg/domain"
)

// Builder manages the melody construction. Errors are collected and
// reported by Build, so calls chain without intermediate checks.
type Builder struct {
	unit   time.Duration
	volume int
	notes  domain.Tune
	err    error
}

// New creates a new melody builder with the default unit and volume.
func New() *Builder {
	return &Builder{
		unit:   400 * time.Millisecond,
		volume: domain.DefaultVolume,
	}
}

// Unit sets the base note length used by the length helpers.
func (b *Builder) Unit(d time.Duration) *Builder {
	if d <= 0 {
		b.fail(fmt.Errorf("unit must be positive, got %v", d))
		return b
	}
	b.unit = d
	return b
}

// Volume sets the loudness level for subsequent notes.
func (b *Builder) Volume(v int) *Builder {
	if v < domain.MinVolume || v > domain.MaxVolume {
		b.fail(fmt.Errorf("volume %d outside %d..%d", v, domain.MinVolume, domain.MaxVolume))
		return b
	}
	b.volume = v
	return b
}

// Note appends a unit-length note for the named pitch.
func (b *Builder) Note(pitch string) *Builder {
	return b.NoteFor(pitch, b.unit)
}

// Half appends a half-unit note.
func (b *Builder) Half(pitch string) *Builder {
	return b.NoteFor(pitch, b.unit/2)
}

// Double appends a double-unit note.
func (b *Builder) Double(pitch string) *Builder {
	return b.NoteFor(pitch, 2*b.unit)
}

// NoteFor appends a note for the named pitch with an explicit length.
func (b *Builder) NoteFor(pitch string, d time.Duration) *Builder {
	p, ok := domain.LookupPitch(strings.ToUpper(pitch))
	if !ok {
		b.fail(fmt.Errorf("unknown pitch %q", pitch))
		return b
	}
	if p == domain.S {
		return b.RestFor(d)
	}
	b.notes = append(b.notes, domain.NewNote(p, b.volume, d))
	return b
}

// Frequency appends a note at a raw frequency in Hz.
func (b *Builder) Frequency(hz int, d time.Duration) *Builder {
	b.notes = append(b.notes, domain.Note{Frequency: hz, Volume: b.volume, Duration: d})
	return b
}

// Rest appends a unit-length silence.
func (b *Builder) Rest() *Builder {
	return b.RestFor(b.unit)
}

// RestFor appends a silence with an explicit length.
func (b *Builder) RestFor(d time.Duration) *Builder {
	b.notes = append(b.notes, domain.Rest(d))
	return b
}

// Repeat re-appends the last n notes once, so a motif plays twice.
func (b *Builder) Repeat(n int) *Builder {
	if n <= 0 || n > len(b.notes) {
		b.fail(fmt.Errorf("cannot repeat last %d of %d notes", n, len(b.notes)))
		return b
	}
	b.notes = append(b.notes, b.notes[len(b.notes)-n:]...)
	return b
}

// Build validates and returns the composed tune. The first error raised
// while chaining wins.
func (b *Builder) Build() (domain.Tune, error) {
	if b.err != nil {
		return nil, b.err
	}
	tune := make(domain.Tune, len(b.notes))
	copy(tune, b.notes)
	if err := tune.Validate(); err != nil {
		return nil, err
	}
	return tune, nil
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
