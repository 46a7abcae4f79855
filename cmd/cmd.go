// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// serveCommand runs the HTTP server.
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the HTTP server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "Interface to bind (overrides server.host)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to listen on (overrides server.port)",
			},
		},
		Action: r.Serve,
	}
}

// routesCommand lists the served routes.
func routesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "routes",
		Usage:  "List the routes the server registers",
		Action: r.Routes,
	}
}

// cipherCommand runs the shift transform locally.
func cipherCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "cipher",
		Usage:     "Shift the letters of TEXT through the alphabet",
		ArgsUsage: "TEXT...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "shift",
				Aliases:  []string{"s"},
				Usage:    "Number of places to shift (negative shifts backwards)",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output JSON",
			},
		},
		Action: r.Cipher,
	}
}

// lottoCommand handles lottery operations.
func lottoCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "lotto",
		Usage: "Six-number lottery",
		Commands: []*cli.Command{
			{
				Name:      "play",
				Usage:     "Play a ticket of six numbers between 1 and 20",
				ArgsUsage: "N N N N N N",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output JSON",
					},
				},
				Action: r.LottoPlay,
			},
			{
				Name:  "history",
				Usage: "List saved draws, newest first",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of draws to show (0 for all)",
						Value: 20,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print JSON output",
					},
				},
				Action: r.LottoHistory,
			},
			{
				Name:  "export",
				Usage: "Export saved draws to CSV, Markdown or plain text",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format (csv, markdown, text)",
						Value:   "csv",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file (default: draws.{ext})",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of draws to export (0 for all)",
					},
				},
				Action: r.LottoExport,
			},
		},
	}
}

// setupCommand handles setup operations for configuration and database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Write the example configuration file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "path",
						Usage: "Where to write the file (defaults to --config)",
					},
				},
				Action: r.SetupConfig,
			},
			{
				Name:   "database",
				Usage:  "Initialize database and run migrations",
				Action: r.SetupDatabase,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for the interactive cipher playground.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive cipher playground",
		Action:  r.TUI,
	}
}
