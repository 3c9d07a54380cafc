package main

import (
	"strings"
	"time"

	"github.com/aretw0/chime/internal/cli"
	"github.com/aretw0/chime/pkg/translate"
	"github.com/spf13/cobra"
)

var sayCmd = &cobra.Command{
	Use:   "say <text...>",
	Short: "Speak text as R2-D2 style chirps",
	Long: `Translates letters into short melodic chirps: vowels become one long
note, consonants two short ones. It sounds like speech if you squint.`,
	Example: `  chime say hello there
  chime say --octave 6 beep boop`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		octave, _ := cmd.Flags().GetInt("octave")
		unitMs, _ := cmd.Flags().GetInt("unit")
		volume, _ := cmd.Flags().GetInt("volume")

		var opts []translate.TuneTalkOption
		if octave > 0 {
			opts = append(opts, translate.WithTuneTalkOctave(octave))
		}
		if unitMs > 0 {
			opts = append(opts, translate.WithTuneTalkUnit(time.Duration(unitMs)*time.Millisecond))
		}
		if volume > 0 {
			opts = append(opts, translate.WithTuneTalkVolume(volume))
		}

		tune, err := translate.TuneTalk(strings.Join(args, " "), opts...)
		if err != nil {
			return err
		}
		return cli.PlayTune(deviceFromFlags(cmd), tune)
	},
}

func init() {
	rootCmd.AddCommand(sayCmd)
	sayCmd.Flags().Int("octave", 0, "Voice octave 1-7 (default 4)")
	sayCmd.Flags().Int("unit", 0, "Syllable length in milliseconds")
	sayCmd.Flags().Int("volume", 0, "Loudness level 0-4")
}
