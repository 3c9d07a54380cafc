package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/chime"
	"github.com/aretw0/chime/internal/cli"
	"github.com/aretw0/chime/internal/logging"
	httpAdapter "github.com/aretw0/chime/pkg/adapters/http"
	"github.com/aretw0/chime/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the buzzer HTTP server",
	Long:  `Exposes the buzzer over a JSON API: POST /play, POST /append, POST /stop, GET /status, plus Prometheus metrics on /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dev := deviceFromFlags(cmd)
		port, _ := cmd.Flags().GetString("port")

		logger := logging.FromVerbosity(dev.Verbose)

		transport, closeBus, err := cli.OpenTransport(dev.Bus, dev.Address, dev.DryRun, logger)
		if err != nil {
			return err
		}
		defer closeBus()

		registry := prometheus.NewRegistry()
		metrics := observability.NewMetrics(registry)

		engine, err := chime.New(transport,
			chime.WithLogger(logger),
			chime.WithLifecycleHooks(metrics.Hooks()),
		)
		if err != nil {
			return err
		}

		handler := httpAdapter.NewHandler(engine, httpAdapter.WithMetrics(registry))

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Chime Server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}

			// Leave the buzzer quiet on the way out.
			if err := engine.Stop(context.Background()); err != nil {
				fmt.Printf("Error silencing buzzer: %v\n", err)
			}
			fmt.Println("Chime Server stopped gracefully")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}
