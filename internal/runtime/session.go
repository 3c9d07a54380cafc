package runtime

import (
	"context"
	"sync"

	"github.com/aretw0/chime/pkg/domain"
	"github.com/google/uuid"
)

// Session represents one in-flight play request. The engine owns at most one
// active Session at a time; handles remain valid after completion for
// inspection and waiting.
type Session struct {
	id string

	mu     sync.Mutex
	queue  []domain.Note
	played int
	total  int
	status domain.SessionStatus
	err    error

	cancel context.CancelFunc
	done   chan struct{}
}

func newSession(tune domain.Tune, cancel context.CancelFunc) *Session {
	return &Session{
		id:     uuid.NewString(),
		queue:  append([]domain.Note(nil), tune...),
		total:  len(tune),
		status: domain.StatusPlaying,
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

// newCompletedSession backs the empty-tune fast path: a session that is
// born finished, with no transport interaction behind it.
func newCompletedSession() *Session {
	s := &Session{
		id:     uuid.NewString(),
		status: domain.StatusCompleted,
		cancel: func() {},
		done:   make(chan struct{}),
	}
	close(s.done)
	return s
}

// ID returns the unique identifier of this playback request.
func (s *Session) ID() string {
	return s.id
}

// Status returns the current lifecycle state.
func (s *Session) Status() domain.SessionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Err returns the playback error, if the session failed.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Progress reports how many notes have been handed to the transport and how
// many were queued in total.
func (s *Session) Progress() (played, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.played, s.total
}

// Done returns a channel closed once the session reaches Completed.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Wait blocks until the session completes or ctx is cancelled. It returns
// the session's playback error, if any. Waiting on an already-completed
// session returns immediately.
func (s *Session) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		return s.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// next pops the next note. It returns false once the queue is exhausted or
// the session left the Playing state. Exhaustion moves the session to
// Draining under the same lock, so an Append racing the trailing silence
// cannot slip notes into a queue the player will never read again.
func (s *Session) next() (domain.Note, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != domain.StatusPlaying {
		return domain.Note{}, 0, false
	}
	if len(s.queue) == 0 {
		s.status = domain.StatusDraining
		return domain.Note{}, 0, false
	}
	note := s.queue[0]
	s.queue = s.queue[1:]
	index := s.played
	s.played++
	return note, index, true
}

// extend appends notes to a still-playing session. It reports false when
// the session is no longer accepting notes.
func (s *Session) extend(tune domain.Tune) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != domain.StatusPlaying {
		return false
	}
	s.queue = append(s.queue, tune...)
	s.total += len(tune)
	return true
}

func (s *Session) setStatus(status domain.SessionStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

// finish moves the session to its sink state. The done channel is closed by
// the scheduler after the session is detached, so waiters observe the final
// state.
func (s *Session) finish(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = domain.StatusCompleted
	s.err = err
}
