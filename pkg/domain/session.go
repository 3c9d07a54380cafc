package domain

// SessionStatus defines the lifecycle of one playback request.
type SessionStatus string

const (
	// StatusIdle means no session is active on the engine.
	StatusIdle SessionStatus = "idle"
	// StatusPlaying means the session is advancing through its notes.
	StatusPlaying SessionStatus = "playing"
	// StatusDraining means the playlist is exhausted and the session is
	// silencing the transport before completing. No further notes are
	// accepted.
	StatusDraining SessionStatus = "draining"
	// StatusCancelling means a stop or preemption was observed and the
	// session is silencing the transport before completing.
	StatusCancelling SessionStatus = "cancelling"
	// StatusCompleted is the sink state: notes exhausted, cancelled, or failed.
	StatusCompleted SessionStatus = "completed"
)

// PlaybackStatus is a point-in-time snapshot of the engine, safe to expose
// over introspection surfaces (CLI status line, HTTP status endpoint).
type PlaybackStatus struct {
	SessionID   string        `json:"session_id,omitempty"`
	Status      SessionStatus `json:"status"`
	NotesPlayed int           `json:"notes_played"`
	NotesTotal  int           `json:"notes_total"`
}
