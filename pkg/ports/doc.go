/*
Package ports defines the driven ports (interfaces) for the Chime engine.

These interfaces decouple the playback core from the peripheral bus, allowing
the engine to drive a real Qwiic buzzer, a recording fake, or any future
tone-capable device.

# Key Interfaces

  - Transport: The buzzer driver surface (set a tone, silence the device).
*/
package ports
