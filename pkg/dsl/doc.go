/*
Package dsl provides a fluent builder for programmatically composing melodies.

It lets developers write tunes as type-safe Go code instead of tab strings or
YAML tune files, which is handy for generated melodies, unit tests and IDE
autocompletion.

Example usage:

	package main

	import (
		"time"

		"github.com/aretw0/chime/pkg/dsl"
	)

	func main() {
		tune, err := dsl.New().
			Unit(200 * time.Millisecond).
			Volume(2).
			Note("C5").
			Note("E5").
			Rest().
			Half("G5").
			Build()
		if err != nil {
			// ...
		}
		// ... pass tune to chime.Engine.Play(...)
		_ = tune
	}
*/
package dsl
