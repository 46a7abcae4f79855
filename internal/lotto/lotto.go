// Package lotto plays the toy six-number lottery served on /lotto.
//
// A [Ticket] holds exactly [Picks] numbers in [Min]..[Max]. [Drawer] picks the
// winning numbers without replacement and [Play] scores a ticket against them.
package lotto

import (
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/desertthunder/drills/internal/shared"
)

const (
	Picks = 6
	Min   = 1
	Max   = 20
)

var (
	ErrTicketSize  = shared.NewArgumentError("arr", "Please enter exactly 6 numbers.")
	ErrTicketRange = shared.NewArgumentError("arr", "Numbers must be between 1 and 20.")
)

// Outcome messages keyed by the number of matches; anything else loses.
const (
	OutcomeLose    = "Sorry, you lose."
	OutcomeFree    = "Congratulations, you win a free ticket!"
	OutcomeHundred = "Congratulations! You win $100!"
	OutcomeJackpot = "Wow! Unbelievable! You could have won the mega millions!"
)

// Ticket is the player's pick.
type Ticket []int

// String renders the numbers comma-separated.
func (t Ticket) String() string {
	parts := make([]string, len(t))
	for i, n := range t {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

// ParseTicket validates raw values into a [Ticket].
//
// Values are trimmed; anything that is not an integer in [Min, Max] fails with [ErrTicketRange].
func ParseTicket(values []string) (Ticket, error) {
	if len(values) != Picks {
		return nil, ErrTicketSize
	}

	ticket := make(Ticket, 0, Picks)
	for _, v := range values {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < Min || n > Max {
			return nil, ErrTicketRange
		}
		ticket = append(ticket, n)
	}
	return ticket, nil
}

// Result is a scored ticket.
type Result struct {
	Ticket  Ticket
	Winning []int
	Matches int
	Outcome string
}

// Drawer draws winning numbers from its random source. It is safe for concurrent use.
type Drawer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewDrawer creates a [Drawer]. A nil source draws from the runtime's seeded generator.
func NewDrawer(src rand.Source) *Drawer {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Drawer{rng: rand.New(src)}
}

// Draw returns [Picks] distinct numbers in [Min, Max], sorted ascending.
func (d *Drawer) Draw() []int {
	d.mu.Lock()
	perm := d.rng.Perm(Max - Min + 1)[:Picks]
	d.mu.Unlock()


	winning := make([]int, Picks)
	for i, p := range perm {
		winning[i] = p + Min
	}
	slices.Sort(winning)
	return winning
}

// Play draws a winning set and scores ticket against it.
func (d *Drawer) Play(ticket Ticket) Result {
	return Score(ticket, d.Draw())
}

// Score counts the ticket entries found in winning and picks the outcome.
func Score(ticket Ticket, winning []int) Result {
	matches := 0
	for _, n := range ticket {
		if slices.Contains(winning, n) {
			matches++
		}
	}
	return Result{Ticket: ticket, Winning: winning, Matches: matches, Outcome: OutcomeFor(matches)}
}

// OutcomeFor returns the message for a match count.
func OutcomeFor(matches int) string {
	switch matches {
	case 4:
		return OutcomeFree
	case 5:
		return OutcomeHundred
	case 6:
		return OutcomeJackpot
	default:
		return OutcomeLose
	}
}
