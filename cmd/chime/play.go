package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/chime/internal/cli"
	"github.com/aretw0/chime/pkg/domain"
	"github.com/aretw0/chime/pkg/translate"
	"github.com/aretw0/chime/pkg/tunefile"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [tabs...]",
	Short: "Play a tab string or a tune file",
	Long: `Plays a melody written as tab notation ("c5! e5! g5-") or loaded
from a YAML tune file via --file.`,
	Example: `  chime play c5 e5 g5 c6-
  chime play --unit 200 "g4! g4! a4: g4:"
  chime play --file fanfare.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		unitMs, _ := cmd.Flags().GetInt("unit")
		volume, _ := cmd.Flags().GetInt("volume")

		var tune domain.Tune
		var err error
		switch {
		case file != "":
			if len(args) > 0 {
				return fmt.Errorf("pass either tabs or --file, not both")
			}
			var doc *tunefile.Document
			doc, err = tunefile.Load(file)
			if err != nil {
				return err
			}
			tune, err = doc.Tune()
		case len(args) > 0:
			var opts []translate.TabsOption
			if unitMs > 0 {
				opts = append(opts, translate.WithTabUnit(time.Duration(unitMs)*time.Millisecond))
			}
			if volume > 0 {
				opts = append(opts, translate.WithTabVolume(volume))
			}
			tune, err = translate.Tabs(strings.Join(args, " "), opts...)
		default:
			return fmt.Errorf("nothing to play: pass tabs or --file")
		}
		if err != nil {
			return err
		}

		return cli.PlayTune(deviceFromFlags(cmd), tune)
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().StringP("file", "f", "", "YAML tune file to play")
	playCmd.Flags().Int("unit", 0, "Unsuffixed note length in milliseconds")
	playCmd.Flags().Int("volume", 0, "Loudness level 0-4")
}
