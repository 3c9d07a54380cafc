// Package runtime implements the playback core: a non-blocking scheduler
// that drives a single buzzer transport through Tunes, note by note, with
// explicit preemption semantics.
package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/aretw0/chime/pkg/domain"
	"github.com/aretw0/chime/pkg/ports"
	"github.com/benbjohnson/clock"
)

// Scheduler plays Tunes on a Transport without blocking the caller. It owns
// the transport exclusively and enforces the single-active-session rule:
// a new Play preempts whatever is sounding, last request wins, and the
// transport is quiescent before the next session's first note.
type Scheduler struct {
	transport ports.Transport
	clock     clock.Clock
	logger    *slog.Logger
	hooks     domain.LifecycleHooks

	// opMu serializes Play/Append/Stop so preemption hand-offs are atomic.
	opMu sync.Mutex
	// mu guards the active session pointer.
	mu     sync.Mutex
	active *Session
}

// Option configures the Scheduler.
type Option func(*Scheduler)

// WithLogger sets a structured logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability callbacks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Scheduler) { s.hooks = hooks }
}

// WithClock injects the time source. Tests use a mock clock to play long
// tunes instantly.
func WithClock(c clock.Clock) Option {
	return func(s *Scheduler) {
		if c != nil {
			s.clock = c
		}
	}
}

// NewScheduler creates a Scheduler owning the given transport.
func NewScheduler(transport ports.Transport, opts ...Option) *Scheduler {
	s := &Scheduler{
		transport: transport,
		clock:     clock.New(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Play starts playback of tune and returns immediately with a session
// handle. An invalid tune is rejected atomically before any transport
// interaction and before any preemption. An active session is cancelled and
// silenced first; an empty tune yields an already-completed session.
//
// ctx bounds the hand-off (validation and preemption), not the playback
// itself: use Stop or a new Play to end playback early.
func (s *Scheduler) Play(ctx context.Context, tune domain.Tune) (*Session, error) {
	if err := tune.Validate(); err != nil {
		return nil, err
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := s.preempt(ctx); err != nil {
		return nil, err
	}
	if len(tune) == 0 {
		return newCompletedSession(), nil
	}
	return s.start(tune), nil
}

// Append extends the active session's playlist, or starts a new session
// when the scheduler is idle. Unlike Play it never interrupts a sounding
// note.
func (s *Scheduler) Append(ctx context.Context, tune domain.Tune) (*Session, error) {
	if err := tune.Validate(); err != nil {
		return nil, err
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.Lock()
	active := s.active
	s.mu.Unlock()

	if active != nil {
		if active.extend(tune) {
			s.logger.Debug("session extended", "session", active.ID(), "notes", len(tune))
			return active, nil
		}
		// The active session stopped accepting notes but may still be
		// silencing the transport. Wait it out so the fresh session starts
		// against a quiescent device.
		if err := s.preempt(ctx); err != nil {
			return nil, err
		}
	}
	if len(tune) == 0 {
		return newCompletedSession(), nil
	}
	return s.start(tune), nil
}

// Stop silences the transport and completes any active session. It is
// idempotent: stopping an idle scheduler is a no-op and touches nothing.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	return s.preempt(ctx)
}

// IsPlaying reports whether a session is currently advancing. It has no
// side effects.
func (s *Scheduler) IsPlaying() bool {
	s.mu.Lock()
	active := s.active
	s.mu.Unlock()
	return active != nil && active.Status() == domain.StatusPlaying
}

// Status returns a point-in-time snapshot of the scheduler.
func (s *Scheduler) Status() domain.PlaybackStatus {
	s.mu.Lock()
	active := s.active
	s.mu.Unlock()

	if active == nil {
		return domain.PlaybackStatus{Status: domain.StatusIdle}
	}
	played, total := active.Progress()
	return domain.PlaybackStatus{
		SessionID:   active.ID(),
		Status:      active.Status(),
		NotesPlayed: played,
		NotesTotal:  total,
	}
}

// preempt cancels the active session and waits for it to silence the
// transport and finish, guaranteeing quiescence. Callers hold opMu. A dead
// ctx fails the call before any playback state is touched.
func (s *Scheduler) preempt(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	prev := s.active
	s.mu.Unlock()
	if prev == nil {
		return nil
	}

	prev.cancel()
	select {
	case <-prev.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// start spawns the player goroutine for a fresh session. Callers hold opMu
// and have established quiescence.
func (s *Scheduler) start(tune domain.Tune) *Session {
	playCtx, cancel := context.WithCancel(context.Background())
	sess := newSession(tune, cancel)

	s.mu.Lock()
	s.active = sess
	s.mu.Unlock()

	s.emitSessionStart(playCtx, sess)
	s.logger.Debug("session started", "session", sess.ID(), "notes", sess.total)

	go s.run(playCtx, sess)
	return sess
}

// run is the player loop. It advances the session note by note, waiting the
// note's duration between transport commands, and observes cancellation at
// every wait.
func (s *Scheduler) run(ctx context.Context, sess *Session) {
	var playErr error
	outcome := domain.OutcomeCompleted
	touched := false

loop:
	for {
		note, index, ok := sess.next()
		if !ok {
			break
		}

		// Zero-duration notes are skipped without touching the transport.
		if note.Duration == 0 {
			continue
		}

		s.emitNoteStart(ctx, sess, index, note)

		touched = true

		var cmdErr error
		if note.IsRest() {
			cmdErr = s.transport.Silence(ctx)
		} else {
			// Send the tone for 99% of the duration so the buzzer's own
			// note timer never races the playlist timing.
			cmdErr = s.transport.SetTone(ctx, note.Frequency, note.Volume, note.Duration*99/100)
		}
		if cmdErr != nil {
			playErr = fmt.Errorf("note %d: %w", index, cmdErr)
			outcome = domain.OutcomeError
			sess.setStatus(domain.StatusDraining)
			break
		}

		timer := s.clock.Timer(note.Duration)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			sess.setStatus(domain.StatusCancelling)
			outcome = domain.OutcomeCancelled
			break loop
		}
	}

	// Never leave the device sounding, whatever ended the session. A tune
	// that issued no commands has nothing to silence.
	if touched {
		if err := s.transport.Silence(context.WithoutCancel(ctx)); err != nil && playErr == nil {
			playErr = err
			if outcome == domain.OutcomeCompleted {
				outcome = domain.OutcomeError
			}
		}
	}

	sess.finish(playErr)

	s.mu.Lock()
	if s.active == sess {
		s.active = nil
	}
	s.mu.Unlock()

	s.emitSessionEnd(ctx, sess, outcome, playErr)
	if playErr != nil {
		s.logger.Warn("session failed", "session", sess.ID(), "error", playErr)
	} else {
		s.logger.Debug("session finished", "session", sess.ID(), "outcome", outcome)
	}

	close(sess.done)
}

func (s *Scheduler) emitSessionStart(ctx context.Context, sess *Session) {
	if s.hooks.OnSessionStart == nil {
		return
	}
	s.hooks.OnSessionStart(ctx, &domain.SessionEvent{
		EventBase: domain.EventBase{
			Timestamp: s.clock.Now(),
			Type:      domain.EventSessionStart,
			SessionID: sess.ID(),
		},
		Notes: sess.total,
	})
}

func (s *Scheduler) emitNoteStart(ctx context.Context, sess *Session, index int, note domain.Note) {
	if s.hooks.OnNoteStart == nil {
		return
	}
	s.hooks.OnNoteStart(ctx, &domain.NoteEvent{
		EventBase: domain.EventBase{
			Timestamp: s.clock.Now(),
			Type:      domain.EventNoteStart,
			SessionID: sess.ID(),
		},
		Index: index,
		Note:  note,
	})
}

func (s *Scheduler) emitSessionEnd(ctx context.Context, sess *Session, outcome string, err error) {
	if s.hooks.OnSessionEnd == nil {
		return
	}
	played, _ := sess.Progress()
	s.hooks.OnSessionEnd(ctx, &domain.SessionEvent{
		EventBase: domain.EventBase{
			Timestamp: s.clock.Now(),
			Type:      domain.EventSessionEnd,
			SessionID: sess.ID(),
		},
		Notes:   played,
		Outcome: outcome,
		Err:     err,
	})
}
