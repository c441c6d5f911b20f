package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ecoleta/registrar/internal/handlers"
	"github.com/ecoleta/registrar/internal/metrics"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP form API",
		Long: `Starts the registration form API on the specified port.

Each POST /api/forms opens a form session that loads categories, states and
a default map center. The server's locator resolves the server's own
position, so browsers should report theirs with PUT /api/forms/{id}/center.
The session is then edited field by field and submitted to the registry. Prometheus metrics are served on /metrics.`,
		Example: `  # Start server on default port 8888
  registrar serve

  # Start server on custom port
  registrar serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			c := newClients(cfg)
			handler := handlers.New(c.service(logNavigator{}, logNotifier{}), c.previews, c.fetcher)

			// Set up routes
			mux := http.NewServeMux()
			handler.Register(mux)
			mux.Handle("/metrics", metrics.Handler())
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Registrar form API available", "addr", addr, "url", "http://localhost"+addr, "registry", cfg.RegistryURL)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8888", "Port to listen on")

	return cmd
}
