// internal/store/memory.go
//
// In-memory record of finished rounds for the current session.
// Used to print a summary when the player stops playing.
//
// Characteristics:
//   - Rounds are kept in the order they finished.
//   - State is lost when the process exits; nothing is written to disk.
//   - Single-threaded use only (one console session owns the store).

package store

import (
	"context"
	"errors"
	"time"

	"github.com/robalobadob/hangman/internal/game"
)

// ErrNotFinished is returned when recording a round without an outcome.
var ErrNotFinished = errors.New("store: round not finished")

// Round is the record of one finished round.
type Round struct {
	Word       string       // The secret word (uppercase).
	Outcome    game.Outcome // Win or loss.
	TriesLeft  int          // Remaining tries at the end of the round.
	Guesses    int          // Distinct guesses made (letters + words).
	FinishedAt time.Time    // When the round ended.
}

// Store defines the persistence interface for finished rounds.
type Store interface {
	// Record appends a finished round.
	Record(ctx context.Context, r Round) error

	// Rounds returns all recorded rounds, oldest first.
	Rounds(ctx context.Context) ([]Round, error)
}

// memory is a slice-backed Store implementation.
type memory struct {
	rounds []Round
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{}
}

// Record appends r. Rounds without an outcome are rejected.
func (m *memory) Record(ctx context.Context, r Round) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.Outcome != game.OutcomeWin && r.Outcome != game.OutcomeLoss {
		return ErrNotFinished
	}
	if r.FinishedAt.IsZero() {
		r.FinishedAt = time.Now().UTC()
	}
	m.rounds = append(m.rounds, r)
	return nil
}

// Rounds returns a copy of the recorded rounds.
func (m *memory) Rounds(ctx context.Context) ([]Round, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Round, len(m.rounds))
	copy(out, m.rounds)
	return out, nil
}

// RoundFromState builds a Round from a terminal game state.
func RoundFromState(s game.State, at time.Time) (Round, error) {
	o, ok := s.Outcome()
	if !ok {
		return Round{}, ErrNotFinished
	}
	return Round{
		Word:       s.Word(),
		Outcome:    o,
		TriesLeft:  s.RemainingTries(),
		Guesses:    s.Guesses(),
		FinishedAt: at,
	}, nil
}
