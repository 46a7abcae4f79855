package models

import (
	"fmt"
	"time"

	"github.com/desertthunder/drills/internal/lotto"
)

// Draw is a persisted lottery play.
type Draw struct {
	id        string
	sequence  int
	ticket    lotto.Ticket
	winning   []int
	matches   int
	outcome   string
	createdAt time.Time
}

var _ Model = (*Draw)(nil)

// NewDraw creates an unsaved [Draw] from a scored [lotto.Result].
func NewDraw(r lotto.Result) *Draw {
	return &Draw{
		ticket:    r.Ticket,
		winning:   r.Winning,
		matches:   r.Matches,
		outcome:   r.Outcome,
		createdAt: time.Now().UTC(),
	}
}

// RestoreDraw rebuilds a [Draw] read back from storage.
func RestoreDraw(id string, sequence int, r lotto.Result, createdAt time.Time) *Draw {
	d := NewDraw(r)
	d.id = id
	d.sequence = sequence
	d.createdAt = createdAt
	return d
}

func (d *Draw) ID() string           { return d.id }
func (d *Draw) Sequence() int        { return d.sequence }
func (d *Draw) Ticket() lotto.Ticket { return d.ticket }
func (d *Draw) Winning() []int       { return d.winning }
func (d *Draw) Matches() int         { return d.matches }
func (d *Draw) Outcome() string      { return d.outcome }
func (d *Draw) CreatedAt() time.Time { return d.createdAt }

func (d *Draw) SetID(id string)     { d.id = id }
func (d *Draw) SetSequence(seq int) { d.sequence = seq }

// Result returns the draw as a [lotto.Result].
func (d *Draw) Result() lotto.Result {
	return lotto.Result{Ticket: d.ticket, Winning: d.winning, Matches: d.matches, Outcome: d.outcome}
}

// Validate checks the draw carries a full ticket, a full winning set and a consistent score.
func (d *Draw) Validate() error {
	if d.id == "" {
		return fmt.Errorf("draw id is required")
	}
	if len(d.ticket) != lotto.Picks {
		return fmt.Errorf("ticket must have %d numbers, got %d", lotto.Picks, len(d.ticket))
	}
	if len(d.winning) != lotto.Picks {
		return fmt.Errorf("winning set must have %d numbers, got %d", lotto.Picks, len(d.winning))
	}
	if d.matches < 0 || d.matches > lotto.Picks {
		return fmt.Errorf("matches out of range: %d", d.matches)
	}
	if d.outcome != lotto.OutcomeFor(d.matches) {
		return fmt.Errorf("outcome %q does not match %d matches", d.outcome, d.matches)
	}
	return nil
}

// DrawView is the JSON shape of a [Draw].
type DrawView struct {
	ID        string    `json:"id"`
	Sequence  int       `json:"sequence"`
	Ticket    []int     `json:"ticket"`
	Winning   []int     `json:"winning"`
	Matches   int       `json:"matches"`
	Outcome   string    `json:"outcome"`
	CreatedAt time.Time `json:"created_at"`
}

// View returns the exported form of the draw for encoding.
func (d *Draw) View() DrawView {
	return DrawView{
		ID:        d.id,
		Sequence:  d.sequence,
		Ticket:    d.ticket,
		Winning:   d.winning,
		Matches:   d.matches,
		Outcome:   d.outcome,
		CreatedAt: d.createdAt,
	}
}
