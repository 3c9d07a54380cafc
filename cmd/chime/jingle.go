package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/chime/internal/cli"
	"github.com/aretw0/chime/pkg/tunes"
	"github.com/spf13/cobra"
)

var jingleCmd = &cobra.Command{
	Use:       "jingle <name>",
	Short:     "Play a built-in jingle",
	Long:      "Plays one of the built-in jingles: " + strings.Join(tunes.Names(), ", ") + ".",
	Example:   `  chime jingle victory`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: tunes.Names(),
	RunE: func(cmd *cobra.Command, args []string) error {
		volume, _ := cmd.Flags().GetInt("volume")

		build, ok := tunes.ByName(args[0])
		if !ok {
			return fmt.Errorf("unknown jingle %q, try one of: %s", args[0], strings.Join(tunes.Names(), ", "))
		}

		var opts []tunes.Option
		if volume > 0 {
			opts = append(opts, tunes.WithVolume(volume))
		}
		return cli.PlayTune(deviceFromFlags(cmd), build(opts...))
	},
}

func init() {
	rootCmd.AddCommand(jingleCmd)
	jingleCmd.Flags().Int("volume", 0, "Loudness level 0-4")
}
