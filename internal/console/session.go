// internal/console/session.go
//
// The console loop: picks a word, feeds input lines to the state machine
// until the round is over, records the result and offers a replay.
//
// The loop is the only place that reads input or writes output; the
// state machine in internal/game stays pure. Input lines are scanned by a
// single background reader so a cancelled context (Ctrl-C) interrupts a
// pending prompt.

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/words"
)

// Session drives rounds over one input stream.
type Session struct {
	in     *bufio.Scanner
	lines  chan inputLine // fed by the reader goroutine, started on first read
	r      *Renderer
	pick   Picker
	store  store.Store
	replay bool
	now    func() time.Time
}

// NewSession wires a session. replay enables the "Play Again?" prompt.
func NewSession(in io.Reader, r *Renderer, pick Picker, st store.Store, replay bool) *Session {
	return &Session{
		in:     bufio.NewScanner(in),
		r:      r,
		pick:   pick,
		store:  st,
		replay: replay,
		now:    time.Now,
	}
}

// inputLine is one scanned line, or the error that ended scanning.
type inputLine struct {
	text string
	err  error
}

// Run greets the player, plays rounds until they decline a replay, input
// ends or ctx is cancelled, then prints the session summary. A word source
// failure stops the session with an error.
func (s *Session) Run(ctx context.Context) error {
	s.r.Println("Let's play Hangman!")

	for {
		if _, err := s.PlayRound(ctx); err != nil {
			if stopped(err) {
				break
			}
			return err
		}
		if !s.replay {
			break
		}
		s.r.Prompt("Play Again? (Y/N): ")
		answer, err := s.readLine(ctx)
		if err != nil {
			if stopped(err) {
				break
			}
			return err
		}
		if strings.ToUpper(strings.TrimSpace(answer)) != "Y" {
			break
		}
	}

	// the summary is still printed after Ctrl-C
	return s.summary(context.WithoutCancel(ctx))
}

// stopped reports whether err means the player left rather than a failure.
func stopped(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, context.Canceled)
}

// PlayRound plays one round to its end and returns the terminal state.
// It returns io.EOF if input ends first, ctx.Err() if ctx is cancelled
// while waiting for a guess, and an error wrapping
// words.ErrSourceUnavailable if no word could be chosen.
func (s *Session) PlayRound(ctx context.Context) (game.State, error) {
	word, err := s.pick(ctx)
	if err != nil {
		log.Error().Err(err).Msg("no word for new round")
		return game.State{}, fmt.Errorf("start round: %w", err)
	}
	st, err := game.New(word)
	if err != nil {
		log.Error().Err(err).Msg("unusable word for new round")
		return game.State{}, fmt.Errorf("start round: %w: %w", words.ErrSourceUnavailable, err)
	}
	log.Debug().Int("length", len(st.Word())).Msg("round started")

	for !st.IsTerminal() {
		if err := ctx.Err(); err != nil {
			return st, err
		}

		s.r.Board(st)
		s.r.Prompt("Please guess a letter or the word: ")
		line, err := s.readLine(ctx)
		if err != nil {
			return st, err
		}

		next, err := st.ApplyGuess(line)
		if err != nil {
			log.Debug().Str("guess", line).Msg("rejected guess")
			s.r.Invalid()
			continue
		}
		st = next
		s.r.Feedback(st)
	}

	s.r.Println()
	s.r.Println(Spaced(st.Pattern()))
	s.r.Result(st)

	o, _ := st.Outcome()
	log.Debug().Str("outcome", string(o)).Int("tries_left", st.RemainingTries()).Msg("round finished")

	round, err := store.RoundFromState(st, s.now().UTC())
	if err == nil {
		err = s.store.Record(ctx, round)
	}
	if err != nil {
		log.Warn().Err(err).Msg("record round")
	}
	return st, nil
}

func (s *Session) summary(ctx context.Context) error {
	rounds, err := s.store.Rounds(ctx)
	if err != nil {
		return err
	}
	sum := store.Summarize(rounds)
	if sum.Played == 0 {
		return nil
	}
	s.r.Println()
	s.r.Println(fmt.Sprintf("Rounds played: %d, won: %d, lost: %d", sum.Played, sum.Won, sum.Lost))
	return nil
}

// readLine waits for the next input line or for ctx to be done.
// A line that arrives after cancellation stays queued and is never applied.
func (s *Session) readLine(ctx context.Context) (string, error) {
	if s.lines == nil {
		s.lines = make(chan inputLine, 1)
		go s.scan()
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

// scan feeds s.lines until input ends, then reports the end and closes it.
func (s *Session) scan() {
	defer close(s.lines)
	for s.in.Scan() {
		s.lines <- inputLine{text: s.in.Text()}
	}
	err := s.in.Err()
	if err == nil {
		err = io.EOF
	}
	s.lines <- inputLine{err: err}
}
