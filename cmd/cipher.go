package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/drills/internal/cipher"
	"github.com/urfave/cli/v3"
)

// CipherResult is the JSON output of the cipher command.
type CipherResult struct {
	Text   string  `json:"text"`
	Shift  float64 `json:"shift"`
	Result string  `json:"result"`
}

// Cipher shifts the joined positional arguments by --shift.
func (r *Runner) Cipher(ctx context.Context, cmd *cli.Command) error {
	text := strings.Join(cmd.Args().Slice(), " ")

	out, err := cipher.ShiftParams(text, cmd.String("shift"))
	if err != nil {
		return fmt.Errorf("cipher: %w", err)
	}

	if cmd.Bool("json") {
		amount, _ := cipher.ParseShift(cmd.String("shift"))
		return r.writeJSON(CipherResult{Text: text, Shift: amount, Result: out}, false)
	}

	return r.writePlain("%s\n", out)
}
