/*
Package tunes ships a handful of ready-made jingles for common feedback
sounds: confirmations, refusals, celebrations and alarms.

Every constructor returns a fresh Tune and accepts options to scale pitch,
scale tempo, or change the loudness. They are handy defaults for robots and
appliances that need to "speak" without a display.
*/
package tunes

import (
	"time"

	"github.com/aretw0/chime/pkg/domain"
)

type config struct {
	freqScale float64
	durScale  float64
	volume    int
}

// Option adjusts a canned tune.
type Option func(*config)

// WithFrequencyScale multiplies every pitch. 2.0 shifts up an octave.
func WithFrequencyScale(scale float64) Option {
	return func(c *config) { c.freqScale = scale }
}

// WithDurationScale multiplies every duration. 0.5 plays twice as fast.
func WithDurationScale(scale float64) Option {
	return func(c *config) { c.durScale = scale }
}

// WithVolume sets the loudness level of every note.
func WithVolume(v int) Option {
	return func(c *config) { c.volume = v }
}

func build(base domain.Tune, opts []Option) domain.Tune {
	cfg := config{freqScale: 1.0, durScale: 1.0, volume: domain.DefaultVolume}
	for _, opt := range opts {
		opt(&cfg)
	}

	out := base.Scaled(cfg.freqScale, cfg.durScale)
	for i := range out {
		out[i].Volume = cfg.volume
	}
	return out
}

func ms(d int) time.Duration { return time.Duration(d) * time.Millisecond }

// Yes is a short rising confirmation.
func Yes(opts ...Option) domain.Tune {
	return build(domain.Tune{
		domain.NewNote(domain.C5, 0, ms(150)),
		domain.NewNote(domain.E5, 0, ms(250)),
	}, opts)
}

// No is a short falling refusal.
func No(opts ...Option) domain.Tune {
	return build(domain.Tune{
		domain.NewNote(domain.C5, 0, ms(200)),
		domain.NewNote(domain.A4, 0, ms(300)),
	}, opts)
}

// Wrong is a single low error drone.
func Wrong(opts ...Option) domain.Tune {
	return build(domain.Tune{
		domain.NewNote(domain.C3, 0, ms(800)),
	}, opts)
}

// Victory is a small fanfare.
func Victory(opts ...Option) domain.Tune {
	return build(domain.Tune{
		domain.NewNote(domain.C5, 0, ms(150)),
		domain.NewNote(domain.E5, 0, ms(150)),
		domain.NewNote(domain.C5, 0, ms(150)),
		domain.NewNote(domain.F5, 0, ms(300)),
	}, opts)
}

// Laugh alternates two close pitches, four times.
func Laugh(opts ...Option) domain.Tune {
	base := make(domain.Tune, 0, 8)
	for i := 0; i < 4; i++ {
		base = append(base,
			domain.NewNote(domain.F5, 0, ms(100)),
			domain.NewNote(domain.E5, 0, ms(200)),
		)
	}
	return build(base, opts)
}

// Sad walks down four semitones.
func Sad(opts ...Option) domain.Tune {
	return build(domain.Tune{
		domain.NewNote(domain.F4, 0, ms(400)),
		domain.NewNote(domain.E4, 0, ms(400)),
		domain.NewNote(domain.DS4, 0, ms(400)),
		domain.NewNote(domain.D4, 0, ms(400)),
	}, opts)
}

// Siren alternates a two-tone alarm, four times.
func Siren(opts ...Option) domain.Tune {
	base := make(domain.Tune, 0, 8)
	for i := 0; i < 4; i++ {
		base = append(base,
			domain.NewNote(domain.FS5, 0, ms(400)),
			domain.NewNote(domain.C5, 0, ms(400)),
		)
	}
	return build(base, opts)
}
