package main

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/banshee-data/adcp-config/internal/adcp"
	"github.com/banshee-data/adcp-config/internal/monitoring"
	"github.com/banshee-data/adcp-config/internal/serialmux"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var listen string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the debug console: serial terminal, CSHOW capture and snapshot browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Listen = &listen
			}

			d, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer d.Close()

			var mux serialmux.Mux
			if cfg.GetPort() == "" {
				monitoring.Logf("no serial port configured, console is read-only")
				mux = serialmux.NewDisabledSerialMux()
			} else {
				mux, err = serialmux.Open(openPort, cfg.GetPort(), cfg.GetPortOptions())
				if err != nil {
					return err
				}
			}
			defer mux.Close()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			var wg sync.WaitGroup

			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := mux.Monitor(ctx); err != nil && !errors.Is(err, context.Canceled) {
					monitoring.Logf("failed to monitor serial port: %v", err)
				}
				monitoring.Logf("monitor routine terminated")
			}()

			session := newSession(mux, cfg)
			source := cfg.GetPort()
			session.OnCapture = func(raw string, decoded *adcp.AdcpConfiguration) {
				snap, err := d.RecordSnapshot(context.Background(), raw, source, decoded)
				if err != nil {
					monitoring.Logf("failed to record snapshot: %v", err)
					return
				}
				monitoring.Logf("recorded snapshot %s", snap.ID)
			}

			httpMux := http.NewServeMux()
			mux.AttachAdminRoutes(httpMux)
			session.AttachAdminRoutes(httpMux, cfg.GetSerialNumber())
			if err := d.AttachAdminRoutes(httpMux); err != nil {
				return err
			}
			httpMux.Handle("/", http.RedirectHandler("/debug/", http.StatusFound))

			server := &http.Server{
				Addr:    cfg.GetListen(),
				Handler: httpMux,
			}
			serveErr := make(chan error, 1)
			go func() {
				monitoring.Logf("serving debug console on http://%s/debug/", cfg.GetListen())
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serveErr <- err
				}
				close(serveErr)
			}()

			select {
			case err = <-serveErr:
			case <-ctx.Done():
			}
			monitoring.Logf("shutting down HTTP server...")
			shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 1*time.Second)
			defer cancelShutdown()
			if err := server.Shutdown(shutdownCtx); err != nil {
				monitoring.Logf("HTTP server shutdown error: %v", err)
				server.Close()
			}

			cancel()
			wg.Wait()
			return err
		},
	}
	cmd.Flags().StringVarP(&listen, "listen", "l", "", "Listen address (default localhost:8080)")
	return cmd
}
