package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/chime/pkg/adapters/memory"
	"github.com/aretw0/chime/pkg/adapters/qwiic"
	"github.com/aretw0/chime/pkg/ports"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// OpenTransport opens the buzzer transport selected by the CLI flags.
// With dryRun it returns an in-memory transport so every command works
// without hardware attached. Otherwise it initializes the host drivers and
// opens the named I2C bus; an empty busName picks the platform default.
// The returned closer releases the bus and is a no-op for dry runs.
func OpenTransport(busName string, addr uint16, dryRun bool, logger *slog.Logger) (ports.Transport, func() error, error) {
	if dryRun {
		logger.Debug("Using in-memory transport", "reason", "dry-run")
		return memory.New(), func() error { return nil }, nil
	}

	if _, err := host.Init(); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize host drivers: %w", err)
	}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open I2C bus %q: %w", busName, err)
	}

	transport, err := qwiic.New(bus, addr)
	if err != nil {
		bus.Close()
		return nil, nil, err
	}

	logger.Debug("Opened buzzer device", "bus", bus.String(), "address", addr)
	return transport, bus.Close, nil
}
