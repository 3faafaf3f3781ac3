package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/digdirlab/atlasdcat/config"
	"github.com/digdirlab/atlasdcat/graph"
	"github.com/digdirlab/atlasdcat/server"
)

func serveCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog over HTTP",
		Long: `Serve exposes the catalog endpoints:

  GET  /catalog  - fetch the glossary and return the catalog as Turtle
  POST /catalog  - import a Turtle catalog into the glossary
  GET  /healthz  - liveness probe
  GET  /metrics  - Prometheus metrics

When started with --config, the file is watched and the mapper is rebuilt
on change without restarting.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), *configPath)
		},
	}

	return cmd
}

func serve(ctx context.Context, configPath string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	m, err := buildMapper(cfg)
	if err != nil {
		return err
	}

	js, nc, err := graph.Connect(cfg.NATS.URL)
	if err != nil {
		slog.Warn("NATS unavailable, catalog publishing disabled", "error", err)
	}
	if nc != nil {
		defer nc.Close()
	}

	srv := server.New(m,
		server.WithLogger(slog.Default()),
		server.WithPublisher(js, cfg.NATS.Subject),
	)

	if configPath != "" {
		if err := watchConfig(ctx, configPath, srv); err != nil {
			slog.Warn("Config watching disabled", "error", err)
		}
	}

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server started", "addr", cfg.HTTP.Addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}

	return nil
}

// watchConfig rebuilds the server's mapper when the config file changes.
func watchConfig(ctx context.Context, configPath string, srv *server.Server) error {
	watcher, err := config.NewWatcher(config.WatcherConfig{
		Path:   configPath,
		Logger: slog.Default(),
	})
	if err != nil {
		return err
	}
	if err := watcher.Start(ctx); err != nil {
		return err
	}

	go func() {
		for event := range watcher.Events() {
			if event.Error != nil {
				continue
			}
			m, err := buildMapper(event.Config)
			if err != nil {
				slog.Warn("Reloaded config rejected", "error", err)
				continue
			}
			srv.SetMapper(m)
			slog.Info("Mapper rebuilt from reloaded config")
		}
	}()

	return nil
}
