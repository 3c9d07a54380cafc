package ports

import (
	"context"
	"fmt"
	"time"
)

// Transport is the peripheral-bus driver abstraction that actually emits or
// silences a tone. The engine owns its Transport exclusively for the life of
// the device: no other component may issue commands on it.
//
// Implementations must be safe for use from a single goroutine at a time;
// the engine never issues overlapping calls.
type Transport interface {
	// SetTone commands the peripheral to sound freq Hz at the given volume.
	// The duration is advisory for devices with their own note timer (the
	// Qwiic buzzer stops on its own after d); the engine still owns pacing.
	SetTone(ctx context.Context, freq, volume int, d time.Duration) error

	// Silence stops any sounding tone. It must be safe to call when the
	// device is already quiet.
	Silence(ctx context.Context) error
}

// TransportError wraps a bus communication failure. The engine surfaces it
// through the in-flight session and never retries; retry policy belongs to
// the bus driver underneath.
type TransportError struct {
	// Op names the failed operation: "set_tone" or "silence".
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
