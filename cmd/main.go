package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/drills/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)
	app := newApp(NewRunner(RunnerOpts{Logger: logger}))

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrInvalidArgument) {
			logger.Error(err)
			os.Exit(2)
		}
		logger.Fatalf("application error: %v", err)
	}
}

// newApp builds the root command around runner.
func newApp(runner *Runner) *cli.Command {
	return &cli.Command{
		Name:    "drills",
		Usage:   "Serve and run the drills demo endpoints",
		Version: shared.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Override the configured log level (debug, info, warn, error)",
			},
		},
		Before:   runner.Configure,
		Commands: runner.register(),
	}
}
