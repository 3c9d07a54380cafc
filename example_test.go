package chime_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/chime"
	"github.com/aretw0/chime/pkg/adapters/memory"
	"github.com/aretw0/chime/pkg/translate"
)

// ExampleNew_memory demonstrates driving the engine against the in-memory
// transport. This is useful for tests, simulations, or when hardware is not
// attached; swap in the qwiic adapter for a real buzzer.
func ExampleNew_memory() {
	transport := memory.New()
	engine, err := chime.New(transport)
	if err != nil {
		log.Fatal(err)
	}

	// Translate a tab string into a Tune and play it.
	tune, err := translate.Tabs("C5! E5! G5!")
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	session, err := engine.Play(ctx, tune)
	if err != nil {
		log.Fatal(err)
	}

	// Play returns immediately; join the session when the caller is ready.
	if err := session.Wait(ctx); err != nil {
		log.Fatal(err)
	}

	fmt.Println("tones:", transport.ToneCalls())
	fmt.Println("quiet:", transport.IsSilent())
	// Output:
	// tones: 3
	// quiet: true
}
