/*
Package domain contains the core domain models for the Chime engine.

It defines the fundamental entities of buzzer playback, such as Notes, Tunes,
and the Session state machine. This package is kept pure and free of external
dependencies like I/O or the peripheral bus, following Hexagonal Architecture
principles.

# Key Entities

  - Note: An atomic sound event (frequency, volume, duration), or a rest.
  - Tune: An ordered sequence of Notes; insertion order is playback order.
  - SessionStatus: The lifecycle of one playback request.
  - LifecycleHooks: Callbacks for observing playback (logging, metrics).
*/
package domain
