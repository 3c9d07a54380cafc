package cli

import (
	"fmt"
	"time"

	"github.com/aretw0/chime/pkg/domain"
	"github.com/muesli/termenv"
)

var profile = termenv.ColorProfile()

// Notef prints a system message to stdout.
func Notef(format string, args ...any) {
	msg := termenv.String(fmt.Sprintf(format, args...)).Foreground(profile.Color("#818cf8"))
	fmt.Printf(">>> %s\n", msg)
}

// Successf prints a completion message to stdout.
func Successf(format string, args ...any) {
	msg := termenv.String(fmt.Sprintf(format, args...)).Foreground(profile.Color("#34d399"))
	fmt.Printf(">>> %s\n", msg)
}

// Failf prints an error message to stdout.
func Failf(format string, args ...any) {
	msg := termenv.String(fmt.Sprintf(format, args...)).Foreground(profile.Color("#fb7185"))
	fmt.Printf(">>> %s\n", msg)
}

// DescribeTune summarizes a tune for the playback status line.
func DescribeTune(tune domain.Tune) string {
	return fmt.Sprintf("%d notes, %s", len(tune), tune.Duration().Round(time.Millisecond))
}
