package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/chime/internal/cli"
	"github.com/aretw0/chime/pkg/domain"
	"github.com/aretw0/chime/pkg/translate"
	"github.com/spf13/cobra"
)

var morseCmd = &cobra.Command{
	Use:   "morse <text...>",
	Short: "Beep text as morse code",
	Example: `  chime morse sos
  chime morse --wpm 25 "hello world"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wpm, _ := cmd.Flags().GetInt("wpm")
		volume, _ := cmd.Flags().GetInt("volume")
		pitch, _ := cmd.Flags().GetString("pitch")

		var opts []translate.MorseOption
		if wpm > 0 {
			// PARIS timing: one word per minute is 50 units.
			opts = append(opts, translate.WithMorseUnit(time.Minute/time.Duration(50*wpm)))
		}
		if volume > 0 {
			opts = append(opts, translate.WithMorseVolume(volume))
		}
		if pitch != "" {
			p, ok := domain.LookupPitch(strings.ToUpper(pitch))
			if !ok {
				return fmt.Errorf("unknown pitch %q", pitch)
			}
			opts = append(opts, translate.WithMorsePitch(p))
		}

		tune, err := translate.Morse(strings.Join(args, " "), opts...)
		if err != nil {
			return err
		}
		return cli.PlayTune(deviceFromFlags(cmd), tune)
	},
}

func init() {
	rootCmd.AddCommand(morseCmd)
	morseCmd.Flags().Int("wpm", 0, "Words per minute (PARIS timing)")
	morseCmd.Flags().Int("volume", 0, "Loudness level 0-4")
	morseCmd.Flags().String("pitch", "", "Tone pitch name (default E5)")
}
