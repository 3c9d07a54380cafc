// Package qwiic drives SparkFun's Qwiic Buzzer over I2C using periph.io.
//
// The device exposes a small register file; one multi-byte write starting at
// the tone register sets frequency, volume and duration and latches the
// active flag in a single bus transaction, which keeps note hand-off cheap.
package qwiic

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/aretw0/chime/pkg/ports"
	"periph.io/x/conn/v3/i2c"
)

// DefaultAddr is the factory I2C address of the Qwiic Buzzer (decimal 52).
const DefaultAddr uint16 = 0x34

// toneRegister is the first register of the frequency/volume/duration/active
// block.
const toneRegister byte = 0x03

// maxFrequency is the largest pitch the 16-bit frequency register can hold.
const maxFrequency = 0xFFFF

// maxDurationMs is the largest value the 16-bit duration register can hold.
const maxDurationMs = 0xFFFF

var _ ports.Transport = (*Transport)(nil)

// Transport implements ports.Transport against a Qwiic Buzzer device.
type Transport struct {
	dev i2c.Dev
}

// New wires a Transport to the buzzer at addr on the given bus.
// Pass DefaultAddr unless the device address jumper was changed.
func New(bus i2c.Bus, addr uint16) (*Transport, error) {
	if bus == nil {
		return nil, fmt.Errorf("i2c bus is required")
	}
	return &Transport{dev: i2c.Dev{Bus: bus, Addr: addr}}, nil
}

// SetTone commands freq Hz at the given volume for d. The device's own note
// timer stops the tone after d even if the host goes away.
func (t *Transport) SetTone(ctx context.Context, freq, volume int, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return &ports.TransportError{Op: "set_tone", Err: err}
	}
	if freq < 0 || freq > maxFrequency {
		return &ports.TransportError{Op: "set_tone", Err: fmt.Errorf("frequency %d outside 0..%d", freq, maxFrequency)}
	}

	if err := t.dev.Tx(encodeTone(freq, volume, d, true), nil); err != nil {
		return &ports.TransportError{Op: "set_tone", Err: err}
	}
	return nil
}

// Silence clears the active flag, stopping any sounding tone.
func (t *Transport) Silence(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return &ports.TransportError{Op: "silence", Err: err}
	}
	if err := t.dev.Tx(encodeTone(0, 0, 0, false), nil); err != nil {
		return &ports.TransportError{Op: "silence", Err: err}
	}
	return nil
}

// encodeTone builds the register write: destination register, then
// frequency (big-endian uint16), volume, duration in milliseconds
// (big-endian uint16, saturated) and the active flag.
func encodeTone(freq, volume int, d time.Duration, active bool) []byte {
	ms := d.Milliseconds()
	if ms > maxDurationMs {
		ms = maxDurationMs
	}

	buf := make([]byte, 7)
	buf[0] = toneRegister
	binary.BigEndian.PutUint16(buf[1:3], uint16(freq))
	buf[3] = byte(volume)
	binary.BigEndian.PutUint16(buf[4:6], uint16(ms))
	if active {
		buf[6] = 0x01
	}
	return buf
}
