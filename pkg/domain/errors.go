package domain

import "fmt"

// InvalidNoteError is returned when a Note violates its invariants
// (negative duration, negative frequency, volume out of range).
// Play rejects the whole Tune atomically before any transport interaction.
type InvalidNoteError struct {
	// Index of the note inside the Tune, when validated as part of one.
	Index int
	Note  Note
	// Reason is a short human-readable description of the violation.
	Reason string
}

func (e *InvalidNoteError) Error() string {
	return fmt.Sprintf("invalid note at index %d (%dHz vol=%d dur=%s): %s",
		e.Index, e.Note.Frequency, e.Note.Volume, e.Note.Duration, e.Reason)
}
