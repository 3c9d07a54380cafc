/*
Package translate converts human-readable input into playable Tunes.

Every translator is a pure function: the same input and options always yield
the same Tune, and no state is kept between calls. Malformed input is
reported through *Error before any Tune is produced; a translator never
emits a partially-wrong sequence.

# Translators

  - Morse: text to dot/dash tones with standard 1/3/7 silence separators.
  - Tabs: a compact space-separated tab notation ("C5 E5- G5_") to notes.
  - TuneTalk: an expressive letters-to-melody mapping (vowels long,
    consonants two short notes). Illustrative, not phonetic.
*/
package translate
