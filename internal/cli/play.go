package cli

import (
	"context"
	"errors"
	"time"

	"github.com/aretw0/chime"
	"github.com/aretw0/chime/internal/logging"
	"github.com/aretw0/chime/pkg/domain"
)

// Device carries the transport flags shared by every playback command.
type Device struct {
	Bus     string
	Address uint16
	DryRun  bool
	Verbose bool
}

// PlayTune opens the device, plays tune to completion and silences the
// buzzer. Ctrl-C interrupts playback cleanly instead of leaving a tone
// stuck on.
func PlayTune(dev Device, tune domain.Tune) error {
	logger := logging.FromVerbosity(dev.Verbose)

	transport, closeBus, err := OpenTransport(dev.Bus, dev.Address, dev.DryRun, logger)
	if err != nil {
		return err
	}
	defer closeBus()

	engine, err := chime.New(transport, chime.WithLogger(logger))
	if err != nil {
		return err
	}

	sc := NewSignalContext(context.Background())
	defer sc.Cancel()

	session, err := engine.Play(context.Background(), tune)
	if err != nil {
		return err
	}
	Notef("Playing %s", DescribeTune(tune))

	if err := session.Wait(sc); err != nil {
		stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if stopErr := engine.Stop(stopCtx); stopErr != nil {
			return stopErr
		}
		if sig := sc.Signal(); sig != nil {
			Failf("Interrupted by %v", sig)
			return nil
		}
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	Successf("Done")
	return nil
}
