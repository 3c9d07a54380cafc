package chime

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/chime/internal/logging"
	"github.com/aretw0/chime/internal/runtime"
	"github.com/aretw0/chime/pkg/domain"
	"github.com/aretw0/chime/pkg/ports"
	"github.com/benbjohnson/clock"
)

// Version of the chime library.
var Version = "0.3.0"

// Session is a handle to one in-flight or completed play request.
type Session = runtime.Session

// Engine is the high-level entry point for the chime library.
// It wraps the internal scheduler and provides a simplified API for
// consumers. One Engine exclusively owns one Transport; create exactly one
// Engine per physical device.
type Engine struct {
	scheduler *runtime.Scheduler
	logger    *slog.Logger
	hooks     domain.LifecycleHooks
	clock     clock.Clock
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithClock injects a custom time source, typically a mock clock in tests.
func WithClock(c clock.Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// New initializes a new chime Engine owning the given transport.
func New(transport ports.Transport, opts ...Option) (*Engine, error) {
	if transport == nil {
		return nil, fmt.Errorf("transport is required")
	}

	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = logging.NewNop()
	}
	if e.clock == nil {
		e.clock = clock.New()
	}

	e.scheduler = runtime.NewScheduler(transport,
		runtime.WithLogger(e.logger),
		runtime.WithLifecycleHooks(e.hooks),
		runtime.WithClock(e.clock),
	)

	return e, nil
}

// Play starts playback of tune and returns immediately with a session
// handle. Any active session is preempted first: the transport is silenced
// before the new tune's first note, so two tunes never overlap. An empty
// tune completes immediately; an invalid tune is rejected atomically,
// leaving prior playback untouched.
func (e *Engine) Play(ctx context.Context, tune domain.Tune) (*Session, error) {
	return e.scheduler.Play(ctx, tune)
}

// Append adds notes to the end of the active session's playlist, or starts
// a new session when idle. Unlike Play it never cuts off a sounding note.
func (e *Engine) Append(ctx context.Context, tune domain.Tune) (*Session, error) {
	return e.scheduler.Append(ctx, tune)
}

// Stop silences the transport and completes any active session.
// It is idempotent; stopping an idle engine is a no-op.
func (e *Engine) Stop(ctx context.Context) error {
	return e.scheduler.Stop(ctx)
}

// IsPlaying reports whether a session is currently advancing, without side
// effects.
func (e *Engine) IsPlaying() bool {
	return e.scheduler.IsPlaying()
}

// Status returns a point-in-time snapshot of playback for introspection
// surfaces (status lines, HTTP endpoints).
func (e *Engine) Status() domain.PlaybackStatus {
	return e.scheduler.Status()
}
