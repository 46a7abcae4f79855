package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/desertthunder/drills/internal/formatter"
	"github.com/desertthunder/drills/internal/lotto"
	"github.com/desertthunder/drills/internal/models"
	"github.com/desertthunder/drills/internal/shared"
	"github.com/urfave/cli/v3"
)

// LottoPlay scores the six positional numbers against a fresh draw, saving it when a database is configured.
func (r *Runner) LottoPlay(ctx context.Context, cmd *cli.Command) error {
	ticket, err := lotto.ParseTicket(cmd.Args().Slice())
	if err != nil {
		return fmt.Errorf("lotto: %w", err)
	}

	draw := models.NewDraw(r.drawer.Play(ticket))

	if r.config.Database.Enabled() {
		draws, db, err := r.openDraws()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		if err := draws.Create(draw); err != nil {
			return fmt.Errorf("failed to save draw: %w", err)
		}
		r.logger.Debug("draw saved", "id", draw.ID(), "sequence", draw.Sequence())
	}

	if cmd.Bool("json") {
		return r.writeJSON(draw.View(), false)
	}

	r.writePlain("Your numbers:    %s\n", draw.Ticket())
	r.writePlain("Winning numbers: %s\n", lotto.Ticket(draw.Winning()))
	r.writePlain("Matches:         %d\n", draw.Matches())
	return r.writePlain("%s\n", draw.Outcome())
}

// LottoHistory lists saved draws.
func (r *Runner) LottoHistory(ctx context.Context, cmd *cli.Command) error {
	draws, db, err := r.openDraws()
	if errors.Is(err, shared.ErrNoDatabase) {
		return fmt.Errorf("%w: set database.path in %s", err, r.configPath)
	}
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	list, err := draws.List(cmd.Int("limit"))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		views := make([]models.DrawView, len(list))
		for i, d := range list {
			views[i] = d.View()
		}
		return r.writeJSON(views, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Draws (%d)", len(list)))
	for _, d := range list {
		r.writePlain("#%-4d %s  ticket %-20s winning %-20s %d  %s\n",
			d.Sequence(), d.CreatedAt().Local().Format("2006-01-02 15:04:05"),
			d.Ticket(), lotto.Ticket(d.Winning()), d.Matches(), d.Outcome())
	}
	return nil
}

// LottoExport writes saved draws to a file in the requested format.
func (r *Runner) LottoExport(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	draws, db, err := r.openDraws()
	if errors.Is(err, shared.ErrNoDatabase) {
		return fmt.Errorf("%w: set database.path in %s", err, r.configPath)
	}
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	list, err := draws.List(cmd.Int("limit"))
	if err != nil {
		return err
	}

	path, err := formatter.WriteExport(format, list, cmd.String("output"))
	if err != nil {
		return err
	}

	r.logger.Info("draws exported", "format", format, "count", len(list), "path", path)
	return r.writePlain("✓ Exported %d draws to %s\n", len(list), path)
}
