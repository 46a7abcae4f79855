// package formatter exports saved lotto draws to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/desertthunder/drills/internal/lotto"
	"github.com/desertthunder/drills/internal/models"
	"github.com/desertthunder/drills/internal/shared"
)

// Format names an export format.
type Format string

const (
	CSV      Format = "csv"
	Markdown Format = "markdown"
	Text     Format = "text"
)

const timeLayout = "2006-01-02 15:04:05"

// ParseFormat maps a --format value to a [Format].
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case CSV, Markdown, Text:
		return Format(s), nil
	case "md":
		return Markdown, nil
	case "txt":
		return Text, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q (csv, markdown, text)", shared.ErrInvalidFlag, s)
	}
}

// Ext is the file extension used when no output path is given.
func (f Format) Ext() string {
	switch f {
	case Markdown:
		return ".md"
	case Text:
		return ".txt"
	default:
		return ".csv"
	}
}

// Export renders draws in format f.
func Export(f Format, draws []*models.Draw) ([]byte, error) {
	switch f {
	case CSV:
		return ExportToCSV(draws)
	case Markdown:
		return ExportToMarkdown(draws)
	case Text:
		return ExportToText(draws)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, f)
	}
}

// ExportToCSV converts draws to CSV with columns: ID, Sequence, Ticket, Winning, Matches, Outcome, Created
func ExportToCSV(draws []*models.Draw) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Sequence", "Ticket", "Winning", "Matches", "Outcome", "Created"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, d := range draws {
		record := []string{
			d.ID(),
			strconv.Itoa(d.Sequence()),
			d.Ticket().String(),
			lotto.Ticket(d.Winning()).String(),
			strconv.Itoa(d.Matches()),
			d.Outcome(),
			d.CreatedAt().UTC().Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts draws to a Markdown table headed by a win summary.
func ExportToMarkdown(draws []*models.Draw) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Lotto draws\n\n")
	buf.WriteString(fmt.Sprintf("**Draws**: %d\n", len(draws)))
	buf.WriteString(fmt.Sprintf("**Wins**: %d\n\n", wins(draws)))

	if len(draws) == 0 {
		return buf.Bytes(), nil
	}

	buf.WriteString("| # | Ticket | Winning | Matches | Outcome | Played |\n")
	buf.WriteString("|---|--------|---------|---------|---------|--------|\n")
	for _, d := range draws {
		buf.WriteString(fmt.Sprintf("| %d | %s | %s | %d | %s | %s |\n",
			d.Sequence(), d.Ticket(), lotto.Ticket(d.Winning()), d.Matches(), d.Outcome(),
			d.CreatedAt().UTC().Format(timeLayout)))
	}

	return buf.Bytes(), nil
}

// ExportToText converts draws to plain text format
func ExportToText(draws []*models.Draw) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Draws: %d\n", len(draws)))
	buf.WriteString(fmt.Sprintf("Wins: %d\n\n", wins(draws)))

	for _, d := range draws {
		buf.WriteString(fmt.Sprintf("%d. %s vs %s - %s\n",
			d.Sequence(), d.Ticket(), lotto.Ticket(d.Winning()), d.Outcome()))
	}

	return buf.Bytes(), nil
}

// WriteExport renders draws in format f and writes them to path.
//
// Defaults to draws{ext} in the working directory.
func WriteExport(f Format, draws []*models.Draw, path string) (string, error) {
	if path == "" {
		path = "draws" + f.Ext()
	}

	data, err := Export(f, draws)
	if err != nil {
		return "", fmt.Errorf("failed to generate %s: %w", f, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s file: %w", f, err)
	}

	return path, nil
}

func wins(draws []*models.Draw) int {
	n := 0
	for _, d := range draws {
		if d.Matches() >= 4 {
			n++
		}
	}
	return n
}
