package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/desertthunder/drills/internal/server"
	"github.com/desertthunder/drills/internal/shared"
	"github.com/urfave/cli/v3"
)

// Serve starts the HTTP server and blocks until SIGINT or SIGTERM.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	cfg := r.config.Server
	if cmd.IsSet("host") {
		cfg.Host = cmd.String("host")
	}
	if cmd.IsSet("port") {
		cfg.Port = cmd.Int("port")
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", shared.ErrInvalidFlag, cfg.Port)
	}

	opts := server.AppOptions{
		Logger:    r.logger,
		Drawer:    r.drawer,
		RateLimit: cfg.RateLimit,
		Burst:     cfg.Burst,
		StartedAt: time.Now(),
	}

	if r.config.Database.Enabled() {
		draws, db, err := r.openDraws()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		opts.Draws = draws
		r.logger.Info("saving draws", "database", r.config.Database.Path)
	}

	app := server.NewApp(opts)
	for _, route := range app.Routes() {
		r.logger.Debug("route registered", "route", route)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.NewServer(cfg.Addr(), app, r.logger).Run(ctx)
}

// Routes prints the routes the server registers.
func (r *Runner) Routes(ctx context.Context, cmd *cli.Command) error {
	app := server.NewApp(server.AppOptions{Logger: r.logger, Drawer: r.drawer})
	for _, route := range app.Routes() {
		if err := r.writePlain("%s\n", route); err != nil {
			return err
		}
	}
	return nil
}
