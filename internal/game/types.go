// internal/game/types.go
//
// Core type definitions for the Hangman state machine.
// Defines:
//   - Outcome:  how a finished round ended (win/loss).
//   - Feedback: machine-readable kind of the last guess result.
//   - State:    immutable snapshot of a single round.

package game

import "sort"

// Outcome is the result of a terminal round.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
)

// Feedback classifies the most recent guess. It mirrors State.Message and is
// never consulted by a transition.
type Feedback string

const (
	FeedbackNone          Feedback = ""
	FeedbackRepeatLetter  Feedback = "repeat_letter"
	FeedbackLetterAbsent  Feedback = "letter_absent"
	FeedbackLetterPresent Feedback = "letter_present"
	FeedbackRepeatWord    Feedback = "repeat_word"
	FeedbackWrongWord     Feedback = "wrong_word"
	FeedbackWordGuessed   Feedback = "word_guessed"
)

// State holds one round of Hangman. Values are never modified in place:
// every transition returns a fresh State and the guessed sets of the old
// one stay as they were.
type State struct {
	word     string              // secret word, uppercase A–Z
	pattern  string              // revealed letters or Placeholder, len == len(word)
	letters  map[byte]struct{}   // single letters already tried
	words    map[string]struct{} // full-word guesses already tried
	tries    int                 // remaining incorrect guesses
	message  string              // display text for the last guess
	feedback Feedback            // kind of the last guess
}

// Word returns the secret word.
func (s State) Word() string { return s.word }

// Pattern returns the revealed pattern, e.g. "C_T".
func (s State) Pattern() string { return s.pattern }

// RemainingTries returns how many incorrect guesses are still allowed.
func (s State) RemainingTries() int { return s.tries }

// Message returns the human-readable result of the last guess.
func (s State) Message() string { return s.message }

// Feedback returns the kind of the last guess.
func (s State) Feedback() Feedback { return s.feedback }

// GuessedLetters returns the letters tried so far in alphabetical order.
func (s State) GuessedLetters() []string {
	out := make([]string, 0, len(s.letters))
	for c := range s.letters {
		out = append(out, string(c))
	}
	sort.Strings(out)
	return out
}

// GuessedWords returns the word guesses tried so far in alphabetical order.
func (s State) GuessedWords() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Guesses counts distinct guesses (letters and words).
func (s State) Guesses() int { return len(s.letters) + len(s.words) }
