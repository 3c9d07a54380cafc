package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventSessionStart EventType = "session_start"
	EventNoteStart    EventType = "note_start"
	EventSessionEnd   EventType = "session_end"
)

// Outcome labels for a finished session.
const (
	OutcomeCompleted = "completed"
	OutcomeCancelled = "cancelled"
	OutcomeError     = "error"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`
}

// SessionEvent marks the start or end of a playback session.
type SessionEvent struct {
	EventBase
	// Notes is the number of notes queued at session start, or played at end.
	Notes int `json:"notes"`
	// Outcome is set on session end: completed, cancelled or error.
	Outcome string `json:"outcome,omitempty"`
	// Err carries the playback error when Outcome is error.
	Err error `json:"-"`
}

// NoteEvent marks the hand-off of one note to the transport.
type NoteEvent struct {
	EventBase
	Index int  `json:"index"`
	Note  Note `json:"note"`
}

// LifecycleHooks defines callbacks for engine observability.
// Hooks run synchronously on the player goroutine; keep them fast.
type LifecycleHooks struct {
	OnSessionStart func(context.Context, *SessionEvent)
	OnNoteStart    func(context.Context, *NoteEvent)
	OnSessionEnd   func(context.Context, *SessionEvent)
}
