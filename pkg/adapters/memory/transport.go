// Package memory provides an in-memory Transport that records every command
// it receives. It backs the engine's tests and the CLI's dry-run mode, and
// doubles as a reference implementation of the Transport contract.
package memory

import (
	"context"
	"sync"
	"time"
)

// CommandKind discriminates recorded transport commands.
type CommandKind string

const (
	CommandSetTone CommandKind = "set_tone"
	CommandSilence CommandKind = "silence"
)

// Command is one recorded transport interaction.
type Command struct {
	Kind      CommandKind
	Frequency int
	Volume    int
	Duration  time.Duration
}

// Transport records commands instead of driving hardware. It is safe for
// concurrent use.
type Transport struct {
	mu       sync.Mutex
	commands []Command
	err      error
}

// New creates an empty recording transport.
func New() *Transport {
	return &Transport{}
}

// SetTone records a tone command.
func (t *Transport) SetTone(_ context.Context, freq, volume int, d time.Duration) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.err != nil {
		return t.err
	}
	t.commands = append(t.commands, Command{
		Kind:      CommandSetTone,
		Frequency: freq,
		Volume:    volume,
		Duration:  d,
	})
	return nil
}

// Silence records a silence command.
func (t *Transport) Silence(_ context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.err != nil {
		return t.err
	}
	t.commands = append(t.commands, Command{Kind: CommandSilence})
	return nil
}

// FailWith makes every subsequent command return err. Pass nil to heal the
// transport again.
func (t *Transport) FailWith(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.err = err
}

// Commands returns a copy of everything recorded so far, in order.
func (t *Transport) Commands() []Command {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Command(nil), t.commands...)
}

// ToneCalls counts recorded set_tone commands.
func (t *Transport) ToneCalls() int {
	return t.count(CommandSetTone)
}

// SilenceCalls counts recorded silence commands.
func (t *Transport) SilenceCalls() int {
	return t.count(CommandSilence)
}

func (t *Transport) count(kind CommandKind) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, c := range t.commands {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// IsSilent reports whether the device would be quiet right now: nothing was
// ever commanded, or the last command was a silence.
func (t *Transport) IsSilent() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.commands) == 0 {
		return true
	}
	return t.commands[len(t.commands)-1].Kind == CommandSilence
}

// Reset forgets all recorded commands and clears any injected error.
func (t *Transport) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.commands = nil
	t.err = nil
}
