// internal/console/render.go
//
// Console rendering for a Hangman round.
// Draws the gallows for the remaining tries, the revealed pattern and the
// result of the last guess. Colour is applied through termenv; with the
// Ascii profile all styling is dropped, so output is plain text.

package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/robalobadob/hangman/internal/game"
)

// Renderer writes game output to a terminal or any io.Writer.
type Renderer struct {
	out *termenv.Output
}

// NewRenderer returns a Renderer writing to w. color selects ANSI styling.
func NewRenderer(w io.Writer, color bool) *Renderer {
	profile := termenv.Ascii
	if color {
		profile = termenv.ANSI
	}
	return &Renderer{out: termenv.NewOutput(w, termenv.WithProfile(profile))}
}

const (
	colorGood = "2" // green
	colorBad  = "1" // red
	colorWarn = "3" // yellow
)

// Stage returns the gallows drawing for the given number of remaining tries.
// Body parts appear in order: head, torso, left arm, right arm, left leg,
// right leg.
func Stage(tries int) string {
	misses := game.MaxTries - tries
	if misses < 0 {
		misses = 0
	}
	if misses > game.MaxTries {
		misses = game.MaxTries
	}
	part := func(n int, s string) string {
		if misses >= n {
			return s
		}
		return " "
	}

	rows := []string{
		"  +------+",
		"  |      |",
		"  |      " + part(1, "O"),
		"  |     " + part(3, `\`) + part(2, "|") + part(4, "/"),
		"  |      " + part(2, "|"),
		"  |     " + part(5, "/") + " " + part(6, `\`),
		"  |",
		"=====",
	}
	for i, r := range rows {
		rows[i] = strings.TrimRight(r, " ")
	}
	return strings.Join(rows, "\n")
}

// Spaced separates pattern letters for readability: "C_T" → "C _ T".
func Spaced(pattern string) string {
	return strings.Join(strings.Split(pattern, ""), " ")
}

// Board draws the current round.
func (r *Renderer) Board(s game.State) {
	fmt.Fprintln(r.out, Stage(s.RemainingTries()))
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, Spaced(s.Pattern()))
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "Length of the word: %d\n", len(s.Word()))
	if g := s.GuessedLetters(); len(g) > 0 {
		fmt.Fprintf(r.out, "Guessed letters: %s\n", strings.Join(g, " "))
	}
	fmt.Fprintf(r.out, "Tries left: %d\n", s.RemainingTries())
	fmt.Fprintln(r.out)
}

// Feedback prints the last guess message, coloured by its kind.
func (r *Renderer) Feedback(s game.State) {
	if s.Message() == "" {
		return
	}
	c := colorWarn
	switch s.Feedback() {
	case game.FeedbackLetterPresent, game.FeedbackWordGuessed:
		c = colorGood
	case game.FeedbackLetterAbsent, game.FeedbackWrongWord:
		c = colorBad
	}
	r.line(s.Message(), c)
}

// Invalid reports a rejected guess.
func (r *Renderer) Invalid() {
	r.line("Not a valid guess.", colorBad)
}

// Result prints the end-of-round message for a terminal state.
func (r *Renderer) Result(s game.State) {
	o, ok := s.Outcome()
	if !ok {
		return
	}
	if o == game.OutcomeWin {
		r.line("Congrats, you guessed the word! You win!", colorGood)
		return
	}
	r.line(fmt.Sprintf("Sorry, you ran out of tries. The word was %s. Maybe next time!", s.Word()), colorBad)
}

// Println writes a plain line.
func (r *Renderer) Println(a ...any) {
	fmt.Fprintln(r.out, a...)
}

// Prompt writes text without a trailing newline.
func (r *Renderer) Prompt(text string) {
	fmt.Fprint(r.out, text)
}

func (r *Renderer) line(text, color string) {
	fmt.Fprintln(r.out, r.out.String(text).Foreground(r.out.Color(color)).String())
}
