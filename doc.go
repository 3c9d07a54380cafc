/*
Package chime is a non-blocking playback engine for I2C piezo buzzer
peripherals, such as SparkFun's Qwiic Buzzer.

It separates playback timing (the Engine) from the peripheral bus (the
Transport port) and from melody construction (the translate and tunes
packages). This Hexagonal Architecture lets the same engine drive real
hardware, a recording fake in tests, or any future tone-capable device.

# Concept

A Tune is an ordered list of Notes. Handing a Tune to Play starts a
background session that paces the transport note by note and returns
immediately, so the caller's control loop keeps running while the buzzer
sounds. A new Play preempts whatever is sounding ("last request wins"); the
transport is always silenced between sessions, so two tunes never overlap.

# Key Features

  - Non-blocking: Play returns at once; Wait joins a session when needed.
  - Deterministic preemption: one active session, silence between sessions.
  - Cancellable timing: Stop interrupts a note mid-wait, not at note end.
  - Translators: Morse code, tab notation and an expressive text-to-tune
    voice, all pure and deterministic.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/chime"
		"github.com/aretw0/chime/pkg/adapters/memory"
		"github.com/aretw0/chime/pkg/translate"
	)

	func main() {
		// A recording transport; swap in qwiic.New(...) for real hardware.
		engine, err := chime.New(memory.New())
		if err != nil {
			log.Fatal(err)
		}

		tune, err := translate.Morse("hello world")
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()
		session, err := engine.Play(ctx, tune)
		if err != nil {
			log.Fatal(err)
		}

		// ... do other work while the buzzer sounds ...

		if err := session.Wait(ctx); err != nil {
			log.Fatal(err)
		}
	}
*/
package chime
