// internal/game/engine.go
//
// Core engine for a single Hangman round.
// Responsibilities:
//   - Create a fresh round for a chosen word (all placeholders, 6 tries).
//   - Validate and apply guesses (letter or whole word).
//   - Report terminal state and outcome (win/loss).
//
// Notes:
//   - Guesses are trimmed and folded to uppercase here, so callers may pass
//     raw input lines.
//   - Transitions are pure: no I/O, and the input State is never mutated.
package game

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MaxTries is the number of incorrect guesses a round starts with.
	MaxTries = 6

	// Placeholder marks a letter that has not been revealed yet.
	Placeholder = '_'
)

var (
	// ErrInvalidGuess is returned for empty, non-alphabetic or wrong-length input.
	ErrInvalidGuess = errors.New("invalid guess")

	// ErrInvalidWord is returned by New when the secret word is unusable.
	ErrInvalidWord = errors.New("invalid word")
)

// New constructs the initial state of a round for word.
// The word is trimmed and uppercased; it must be non-empty ASCII letters.
func New(word string) (State, error) {
	w := strings.TrimSpace(word)
	if w == "" || !isLetters(w) {
		return State{}, fmt.Errorf("%w: %q", ErrInvalidWord, word)
	}
	w = strings.ToUpper(w)
	return State{
		word:    w,
		pattern: strings.Repeat(string(Placeholder), len(w)),
		letters: map[byte]struct{}{},
		words:   map[string]struct{}{},
		tries:   MaxTries,
	}, nil
}

// ApplyGuess validates raw and returns the state after the guess.
//
// Validation rules:
//   - Guess must be non-empty and consist of ASCII letters only, checked
//     before case folding so letters like 'ı' or 'ſ' never fold into A–Z.
//   - A single letter is a letter guess.
//   - A guess as long as the word is a word guess.
//   - Anything else is rejected.
//
// Wrong and repeated guesses are successful transitions; only malformed
// input returns ErrInvalidGuess, together with s unchanged.
func (s State) ApplyGuess(raw string) (State, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || !isLetters(trimmed) {
		return s, ErrInvalidGuess
	}
	guess := strings.ToUpper(trimmed)
	switch {
	case len(guess) == 1:
		return s.guessLetter(guess[0]), nil
	case len(guess) == len(s.word):
		return s.guessWord(guess), nil
	default:
		return s, ErrInvalidGuess
	}
}

// IsTerminal reports whether the round is over (word revealed or no tries left).
func (s State) IsTerminal() bool {
	return s.won() || s.tries <= 0
}

// Outcome reports how a terminal round ended. ok is false while the round
// is still in progress.
func (s State) Outcome() (o Outcome, ok bool) {
	switch {
	case s.won():
		return OutcomeWin, true
	case s.tries <= 0:
		return OutcomeLoss, true
	default:
		return "", false
	}
}

func (s State) won() bool {
	return s.word != "" && s.pattern == s.word
}

func (s State) guessLetter(c byte) State {
	next := s
	letter := string(c)

	if _, seen := s.letters[c]; seen {
		next.message = fmt.Sprintf("You already guessed the letter %s", letter)
		next.feedback = FeedbackRepeatLetter
		return next
	}

	next.letters = withLetter(s.letters, c)
	if strings.IndexByte(s.word, c) < 0 {
		next.tries = decrement(s.tries)
		next.message = fmt.Sprintf("%s is not in the word.", letter)
		next.feedback = FeedbackLetterAbsent
		return next
	}

	next.pattern = reveal(s.word, s.pattern, c)
	next.message = fmt.Sprintf("Good job, %s is in the word!", letter)
	next.feedback = FeedbackLetterPresent
	return next
}

func (s State) guessWord(w string) State {
	next := s

	if _, seen := s.words[w]; seen {
		next.message = fmt.Sprintf("You already guessed the word %s", w)
		next.feedback = FeedbackRepeatWord
		return next
	}

	next.words = withWord(s.words, w)
	if w != s.word {
		next.tries = decrement(s.tries)
		next.message = fmt.Sprintf("%s is not the word.", w)
		next.feedback = FeedbackWrongWord
		return next
	}

	next.pattern = s.word
	next.message = fmt.Sprintf("Good job, %s is the word!", w)
	next.feedback = FeedbackWordGuessed
	return next
}

// reveal uncovers every position of word equal to c.
func reveal(word, pattern string, c byte) string {
	b := []byte(pattern)
	for i := 0; i < len(word); i++ {
		if word[i] == c {
			b[i] = c
		}
	}
	return string(b)
}

func withLetter(set map[byte]struct{}, c byte) map[byte]struct{} {
	out := make(map[byte]struct{}, len(set)+1)
	for k := range set {
		out[k] = struct{}{}
	}
	out[c] = struct{}{}
	return out
}

func withWord(set map[string]struct{}, w string) map[string]struct{} {
	out := make(map[string]struct{}, len(set)+1)
	for k := range set {
		out[k] = struct{}{}
	}
	out[w] = struct{}{}
	return out
}

func decrement(tries int) int {
	if tries <= 0 {
		return 0
	}
	return tries - 1
}

// isLetters reports whether s is all ASCII letters, either case.
func isLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}
