package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/chime"
	"github.com/aretw0/chime/internal/cli"
	"github.com/aretw0/chime/internal/logging"
	mcpAdapter "github.com/aretw0/chime/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the chime engine as an MCP Server.
This lets agents play tunes, queue notes and query playback as tools.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dev := deviceFromFlags(cmd)
		transportName, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		// Logs must stay off Stdout so they never corrupt JSON-RPC.
		logger := logging.FromVerbosity(dev.Verbose)
		log.SetOutput(os.Stderr)

		transport, closeBus, err := cli.OpenTransport(dev.Bus, dev.Address, dev.DryRun, logger)
		if err != nil {
			return err
		}
		defer closeBus()

		engine, err := chime.New(transport, chime.WithLogger(logger))
		if err != nil {
			return err
		}
		defer engine.Stop(context.Background())

		srv := mcpAdapter.NewServer(engine)

		switch transportName {
		case "stdio":
			logger.Info("Starting Chime MCP Server (Stdio)...")
			if err := srv.ServeStdio(); err != nil {
				return err
			}
		case "sse":
			logger.Info("Starting Chime MCP Server (SSE)", "port", port)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.ServeSSE(ctx, port); err != nil {
				if err != http.ErrServerClosed {
					return err
				}
			}
			logger.Info("MCP Server stopped gracefully")
		default:
			return fmt.Errorf("unknown transport: %s (supported: stdio, sse)", transportName)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8081, "Port to listen on (only for SSE)")
}
