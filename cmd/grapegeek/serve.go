package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSite(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer s.close()

		// Explicit timeouts prevent slowloris and resource exhaustion attacks.
		srv := &http.Server{
			Addr:         cfg.Addr(),
			Handler:      s.router,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		}
		logger.Info("site ready", "default_locale", s.tr.Default(), "locales", s.tr.Locales())
		return serve(srv)
	},
}

// serve runs srv until SIGINT or SIGTERM, then gives in-flight requests
// up to 15 seconds to complete before forcefully closing.
func serve(srv *http.Server) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	errc := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", srv.Addr, "site_url", cfg.SiteURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return err
	case <-stop:
	}
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	slog.Info("server stopped")
	return nil
}
