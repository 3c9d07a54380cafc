// Package tunefile loads melodies from YAML documents.
//
// A tune file names a melody and describes it either as a tab string or as
// an explicit note list:
//
//	name: fanfare
//	volume: 3
//	tabs: "c5! e5! g5! c6-"
//
//	name: heartbeat
//	unit: 120ms
//	notes:
//	  - pitch: C4
//	  - rest: true
//	    duration: 300ms
//
// Durations accept Go duration strings ("150ms") or bare integers, read as
// milliseconds.
package tunefile
