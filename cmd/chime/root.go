package main

import (
	"fmt"
	"os"

	"github.com/aretw0/chime/internal/cli"
	"github.com/aretw0/chime/pkg/adapters/qwiic"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chime",
	Short: "Chime plays melodies on a Qwiic buzzer",
	Long:  `Chime drives an I2C piezo buzzer: play tab strings, beep morse code, speak in tunetalk or trigger canned jingles, locally or over HTTP.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("bus", "", "I2C bus name (empty picks the platform default)")
	rootCmd.PersistentFlags().Uint16("address", qwiic.DefaultAddr, "I2C address of the buzzer")
	rootCmd.PersistentFlags().Bool("dry-run", false, "Use an in-memory transport instead of hardware")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

func deviceFromFlags(cmd *cobra.Command) cli.Device {
	bus, _ := cmd.Flags().GetString("bus")
	addr, _ := cmd.Flags().GetUint16("address")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")
	return cli.Device{
		Bus:     bus,
		Address: addr,
		DryRun:  dryRun,
		Verbose: verbose,
	}
}
