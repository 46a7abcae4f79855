package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/desertthunder/drills/internal/lotto"
	"github.com/desertthunder/drills/internal/models"
	"github.com/desertthunder/drills/internal/shared"
)

// DrawRepository implements [models.Repository] for [models.Draw] persistence.
type DrawRepository struct {
	db *sql.DB
}

var _ models.Repository[*models.Draw] = (*DrawRepository)(nil)

// NewDrawRepository creates a new [DrawRepository] with the given database connection
func NewDrawRepository(db *sql.DB) *DrawRepository {
	return &DrawRepository{db: db}
}

// Create inserts a new draw into the database with generated ID and sequence
func (r *DrawRepository) Create(draw *models.Draw) error {
	draw.SetID(shared.GenerateID())
	if err := draw.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	sequence, err := NextSequence(r.db, "draws")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}
	draw.SetSequence(sequence)

	query := `
		INSERT INTO draws (id, sequence, ticket, winning, matches, outcome, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		draw.ID(), sequence, joinNumbers(draw.Ticket()), joinNumbers(draw.Winning()),
		draw.Matches(), draw.Outcome(), draw.CreatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert draw: %w", err)
	}

	return nil
}

// Get retrieves a draw by ID
func (r *DrawRepository) Get(id string) (*models.Draw, error) {
	query := `
		SELECT id, sequence, ticket, winning, matches, outcome, created_at
		FROM draws
		WHERE id = ?
	`

	draw, err := scanDraw(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: draw %s", shared.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query draw: %w", err)
	}
	return draw, nil
}

// List returns up to limit draws, newest first. A non-positive limit returns every draw.
func (r *DrawRepository) List(limit int) ([]*models.Draw, error) {
	if limit <= 0 {
		limit = -1
	}

	query := `
		SELECT id, sequence, ticket, winning, matches, outcome, created_at
		FROM draws
		ORDER BY sequence DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query draws: %w", err)
	}
	defer rows.Close()

	var draws []*models.Draw
	for rows.Next() {
		draw, err := scanDraw(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan draw: %w", err)
		}
		draws = append(draws, draw)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating draws: %w", err)
	}

	return draws, nil
}

// Count returns the number of stored draws.
func (r *DrawRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM draws").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count draws: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDraw(row scanner) (*models.Draw, error) {
	var (
		id        string
		sequence  int
		ticket    string
		winning   string
		matches   int
		outcome   string
		createdAt time.Time
	)

	if err := row.Scan(&id, &sequence, &ticket, &winning, &matches, &outcome, &createdAt); err != nil {
		return nil, err
	}

	t, err := splitNumbers(ticket)
	if err != nil {
		return nil, fmt.Errorf("corrupt ticket for draw %s: %w", id, err)
	}
	w, err := splitNumbers(winning)
	if err != nil {
		return nil, fmt.Errorf("corrupt winning set for draw %s: %w", id, err)
	}

	result := lotto.Result{Ticket: t, Winning: w, Matches: matches, Outcome: outcome}
	return models.RestoreDraw(id, sequence, result, createdAt), nil
}

func joinNumbers(ns []int) string {
	return lotto.Ticket(ns).String()
}

func splitNumbers(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ns := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		ns[i] = n
	}
	return ns, nil
}
