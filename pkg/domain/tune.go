package domain

import "time"

// Tune is an ordered sequence of Notes representing one playable piece.
// Insertion order is playback order and is significant. The engine only
// ever reads a Tune; it never mutates one.
type Tune []Note

// Duration returns the total wall-clock length of the tune.
func (t Tune) Duration() time.Duration {
	var total time.Duration
	for _, n := range t {
		total += n.Duration
	}
	return total
}

// Validate checks every note. It returns a *InvalidNoteError carrying the
// index of the first offending note, or nil.
func (t Tune) Validate() error {
	for i, n := range t {
		if err := n.Validate(); err != nil {
			inv := err.(*InvalidNoteError)
			inv.Index = i
			return inv
		}
	}
	return nil
}

// Scaled returns a copy of the tune with every frequency multiplied by
// freqScale and every duration by durScale. Used by the canned tunes to
// shift pitch or tempo.
func (t Tune) Scaled(freqScale, durScale float64) Tune {
	out := make(Tune, len(t))
	for i, n := range t {
		out[i] = Note{
			Frequency: int(freqScale * float64(n.Frequency)),
			Volume:    n.Volume,
			Duration:  time.Duration(durScale * float64(n.Duration)),
		}
	}
	return out
}
